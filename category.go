package wiredoc

import "strings"

// Category groups documentation topics for storage and listing.
type Category string

// Topic categories, declared in canonical probe order.
const (
	CategoryGettingStarted Category = "getting-started"
	CategoryEssentials     Category = "essentials"
	CategoryFeatures       Category = "features"
	CategoryAdvanced       Category = "advanced"
)

// DefaultCategory is assigned to slugs that match no entry of the topic table.
const DefaultCategory = CategoryFeatures

// Categories returns all topic categories in canonical order.
// Lookups that do not name a category probe them in this order.
func Categories() []Category {
	return []Category{
		CategoryGettingStarted,
		CategoryEssentials,
		CategoryFeatures,
		CategoryAdvanced,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Topic pairs a documentation slug with its category.
type Topic struct {
	Slug     string
	Category Category
}

// topics is the fixed slug table. Order matters for substring matching in
// CategoryFor and is the default crawl order for updates.
var topics = []Topic{
	{"quickstart", CategoryGettingStarted},
	{"installation", CategoryGettingStarted},
	{"upgrading", CategoryGettingStarted},

	{"components", CategoryEssentials},
	{"properties", CategoryEssentials},
	{"actions", CategoryEssentials},
	{"forms", CategoryEssentials},
	{"events", CategoryEssentials},
	{"lifecycle-hooks", CategoryEssentials},
	{"nesting", CategoryEssentials},
	{"testing", CategoryEssentials},

	{"alpine", CategoryFeatures},
	{"navigate", CategoryFeatures},
	{"lazy", CategoryFeatures},
	{"validation", CategoryFeatures},
	{"file-uploads", CategoryFeatures},
	{"pagination", CategoryFeatures},
	{"url", CategoryFeatures},
	{"computed-properties", CategoryFeatures},
	{"session-properties", CategoryFeatures},
	{"redirecting", CategoryFeatures},
	{"file-downloads", CategoryFeatures},
	{"locked", CategoryFeatures},
	{"teleport", CategoryFeatures},
	{"polling", CategoryFeatures},
	{"offline", CategoryFeatures},

	{"troubleshooting", CategoryAdvanced},
	{"security", CategoryAdvanced},
	{"javascript", CategoryAdvanced},
	{"synthesizers", CategoryAdvanced},
	{"morphing", CategoryAdvanced},
	{"hydration", CategoryAdvanced},
	{"contribution-guide", CategoryAdvanced},
}

// Topics returns a copy of the fixed topic table in declaration order.
func Topics() []Topic {
	return append([]Topic(nil), topics...)
}

// CategoryFor returns the category for a slug. An exact table match wins,
// then the first table slug contained in the given slug, then DefaultCategory.
func CategoryFor(slug string) Category {
	for _, t := range topics {
		if t.Slug == slug {
			return t.Category
		}
	}
	for _, t := range topics {
		if strings.Contains(slug, t.Slug) {
			return t.Category
		}
	}
	return DefaultCategory
}
