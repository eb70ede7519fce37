package wiredoc

// ResultKind distinguishes topic results from directive results.
type ResultKind string

// Result kinds.
const (
	KindTopic     ResultKind = "topic"
	KindDirective ResultKind = "directive"
)

// MatchSource names the first scoring rule an entry satisfied.
type MatchSource string

// Match sources.
const (
	MatchSlug        MatchSource = "slug"
	MatchTitle       MatchSource = "title"
	MatchDescription MatchSource = "description"
	MatchKeyword     MatchSource = "keyword"
	MatchFuzzy       MatchSource = "fuzzy"
	MatchName        MatchSource = "name"
	MatchVariant     MatchSource = "variant"
)

// SearchResult is a scored index entry.
// Key holds the topic slug or the directive name.
type SearchResult struct {
	Kind        ResultKind  `json:"type"`
	Key         string      `json:"key"`
	Title       string      `json:"title,omitempty"`
	Description string      `json:"description"`
	Category    Category    `json:"category,omitempty"`
	Score       int         `json:"score"`
	MatchedOn   MatchSource `json:"matched_on"`
}

// Searcher ranks index entries against a query.
type Searcher interface {
	// Search returns at most limit results ordered by descending score.
	// A limit of zero or less returns every match.
	Search(query string, limit int) []SearchResult
}
