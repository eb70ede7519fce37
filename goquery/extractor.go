// Package goquery extracts structured documentation records from HTML
// using CSS selectors.
package goquery

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wiredoc"
	"golang.org/x/net/html/atom"
)

// Extraction limits.
const (
	// minDescriptionLength is the number of characters a description
	// candidate must exceed to be accepted.
	minDescriptionLength = 20
	// maxRelated caps the related links collected per page.
	maxRelated = 10
)

// descriptionSelectors are tried in order; the first long enough match wins.
var descriptionSelectors = []string{
	".docs-content > p",
	"main article > p",
	"main p",
	"h1 + p",
}

// functionalMarkers identify examples written against the functional API.
var functionalMarkers = []string{
	`use function Livewire\Volt\`,
	"state(",
	"computed(",
	"mount(fn",
}

// directiveRe matches a prefixed directive with optional modifiers.
var directiveRe = regexp.MustCompile(`wire:[A-Za-z0-9_.-]+`)

var _ wiredoc.Extractor = (*Extractor)(nil)

// Extractor parses Livewire documentation pages.
type Extractor struct {
	// BaseURL is prepended to the versioned docs path to form Document.URL.
	BaseURL string

	// Version is the docs version segment used for URLs and related links.
	Version string

	// Now returns the scrape timestamp. Defaults to time.Now.
	Now func() time.Time

	relatedRe *regexp.Regexp
}

// NewExtractor creates a new Extractor for the given site and docs version.
func NewExtractor(baseURL, version string) *Extractor {
	return &Extractor{
		BaseURL:   strings.TrimSuffix(baseURL, "/"),
		Version:   version,
		Now:       time.Now,
		relatedRe: regexp.MustCompile(`^/docs/` + regexp.QuoteMeta(version) + `/([a-z0-9][a-z0-9-]*)/?$`),
	}
}

// Extract parses a topic page. It never fails; missing markup leaves the
// corresponding fields empty.
func (e *Extractor) Extract(html string, slug string) *wiredoc.Document {
	d := &wiredoc.Document{
		Slug:      slug,
		Category:  wiredoc.CategoryFor(slug),
		URL:       e.BaseURL + wiredoc.DocsPath(e.Version, slug),
		ScrapedAt: e.now(),
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		d.Normalize()
		return d
	}

	d.Title = headingText(doc.Find("h1").First())
	d.Description = extractDescription(doc)
	d.Sections = extractSections(doc)
	d.DirectivesUsed = ExtractDirectives(d.Sections)
	d.Related = e.extractRelated(doc, slug)
	d.Normalize()
	return d
}

// ExtractDirective parses a directive reference page. Variants come from
// table rows whose first cell starts with the directive name; examples come
// from every code block on the page.
func (e *Extractor) ExtractDirective(html string, name string) *wiredoc.Directive {
	canonical := wiredoc.CanonicalName(name)
	d := &wiredoc.Directive{Name: canonical}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		d.Normalize()
		return d
	}

	d.Description = extractDescription(doc)

	seenSyntax := make(map[string]bool)
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return
		}
		syntax := strings.TrimSpace(cells.First().Text())
		if !strings.HasPrefix(syntax, canonical) || seenSyntax[syntax] {
			return
		}
		seenSyntax[syntax] = true
		d.Variants = append(d.Variants, wiredoc.Variant{
			Syntax:      syntax,
			Description: strings.TrimSpace(cells.Eq(1).Text()),
		})
	})

	seenCode := make(map[string]bool)
	doc.Find("pre").Each(func(_ int, pre *goquery.Selection) {
		code := strings.TrimSpace(pre.Text())
		if code == "" || seenCode[code] {
			return
		}
		seenCode[code] = true
		d.Examples = append(d.Examples, code)
	})

	d.Normalize()
	return d
}

func (e *Extractor) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// extractDescription returns the first candidate paragraph long enough to
// describe the page, or "".
func extractDescription(doc *goquery.Document) string {
	for _, selector := range descriptionSelectors {
		var found string
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			text := strings.TrimSpace(sel.Text())
			if utf8.RuneCountInString(text) > minDescriptionLength {
				found = text
				return false
			}
			return true
		})
		if found != "" {
			return found
		}
	}
	return ""
}

// headingText returns the heading's text without in-page permalink anchors.
func headingText(heading *goquery.Selection) string {
	return strings.TrimSpace(heading.Clone().Find(`a[href^="#"]`).Remove().End().Text())
}

// extractSections splits the page at every h2. A section collects the
// siblings that follow its heading up to the next h2.
func extractSections(doc *goquery.Document) []wiredoc.Section {
	var sections []wiredoc.Section

	doc.Find("h2").Each(func(_ int, heading *goquery.Selection) {
		section := wiredoc.Section{Title: headingText(heading)}
		seen := make(map[string]bool)
		var content strings.Builder

		addExample := func(_ int, pre *goquery.Selection) {
			code := strings.TrimSpace(pre.Text())
			if code == "" || seen[code] {
				return
			}
			seen[code] = true
			section.Examples = append(section.Examples, wiredoc.Example{
				Code: code,
				Type: classifyExample(code),
			})
		}

		heading.NextUntil("h2").Each(func(_ int, sib *goquery.Selection) {
			switch sib.Get(0).DataAtom {
			case atom.P, atom.Ul, atom.Ol, atom.Blockquote:
				if text := strings.TrimSpace(sib.Text()); text != "" {
					content.WriteString(text)
					content.WriteString("\n")
				}
			case atom.Pre:
				addExample(0, sib)
			default:
				// Code blocks are often wrapped in a container element.
				sib.Find("pre").Each(addExample)
			}
		})

		section.Content = strings.TrimSpace(content.String())
		if section.IsEmpty() {
			return
		}
		sections = append(sections, section)
	})

	return sections
}

// classifyExample tags code that uses the functional component API.
func classifyExample(code string) wiredoc.ExampleType {
	for _, marker := range functionalMarkers {
		if strings.Contains(code, marker) {
			return wiredoc.ExampleFunctional
		}
	}
	return wiredoc.ExampleClass
}

// ExtractDirectives scans example code for directive usages and returns the
// sorted, deduplicated base directives ("wire:model.live" → "wire:model").
func ExtractDirectives(sections []wiredoc.Section) []string {
	seen := make(map[string]bool)
	directives := []string{}

	for _, s := range sections {
		for _, ex := range s.Examples {
			for _, match := range directiveRe.FindAllString(ex.Code, -1) {
				base := wiredoc.StripModifiers(match)
				if base == wiredoc.DirectivePrefix || seen[base] {
					continue
				}
				seen[base] = true
				directives = append(directives, base)
			}
		}
	}

	sort.Strings(directives)
	return directives
}

// extractRelated collects slugs of other pages in the same docs version,
// in first-seen order, capped at maxRelated.
func (e *Extractor) extractRelated(doc *goquery.Document, slug string) []string {
	re := e.relatedRe
	if re == nil {
		re = regexp.MustCompile(`^/docs/` + regexp.QuoteMeta(e.Version) + `/([a-z0-9][a-z0-9-]*)/?$`)
	}

	seen := map[string]bool{slug: true}
	var related []string

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		u, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return true
		}
		m := re.FindStringSubmatch(u.Path)
		if m == nil || seen[m[1]] {
			return true
		}
		seen[m[1]] = true
		related = append(related, m[1])
		return len(related) < maxRelated
	})

	return related
}
