package search

import (
	"sort"
	"strings"

	"github.com/fwojciec/wiredoc"
	"github.com/fwojciec/wiredoc/levenshtein"
)

// Topic scores.
const (
	scoreSlugExact       = 100
	scoreTitleExact      = 95
	scoreSlugPrefix      = 80
	scoreSlugContains    = 60
	scoreTitlePrefix     = 50
	scoreTitleContains   = 40
	scoreDescription     = 20
	scoreKeywordExact    = 15
	scoreKeywordContains = 10
	scoreFuzzyBase       = 25
	scoreFuzzyPenalty    = 10
	maxFuzzyDistance     = 2
)

// Directive scores.
const (
	scoreNameExact       = 100
	scoreVariantExact    = 95
	scoreNameContains    = 70
	scoreVariantContains = 50
)

var _ wiredoc.Searcher = (*Engine)(nil)

// Engine answers queries against a loaded index. It never touches the
// corpus files.
type Engine struct {
	index *wiredoc.Index
}

// NewEngine creates a new Engine over idx. A nil index matches nothing.
func NewEngine(idx *wiredoc.Index) *Engine {
	if idx == nil {
		idx = &wiredoc.Index{}
	}
	return &Engine{index: idx}
}

// Search scores every topic and directive entry against query. Topics are
// listed before directives and the sort is stable, so equal scores keep
// index order. Entries scoring zero are dropped. A limit of zero or less
// returns every match.
func (e *Engine) Search(query string, limit int) []wiredoc.SearchResult {
	results := []wiredoc.SearchResult{}
	if strings.TrimSpace(query) == "" {
		return results
	}

	for _, t := range e.index.Topics {
		score, source := ScoreTopic(t, query)
		if score <= 0 {
			continue
		}
		results = append(results, wiredoc.SearchResult{
			Kind:        wiredoc.KindTopic,
			Key:         t.Slug,
			Title:       t.Title,
			Description: t.Description,
			Category:    t.Category,
			Score:       score,
			MatchedOn:   source,
		})
	}

	for _, d := range e.index.Directives {
		score, source := ScoreDirective(d, query)
		if score <= 0 {
			continue
		}
		results = append(results, wiredoc.SearchResult{
			Kind:        wiredoc.KindDirective,
			Key:         d.Name,
			Description: d.Description,
			Score:       score,
			MatchedOn:   source,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// ScoreTopic returns the relevance of a topic entry for query and the first
// rule that matched. Comparison is case-insensitive. An exact slug or title
// match is terminal; the remaining rules accumulate.
func ScoreTopic(t wiredoc.TopicEntry, query string) (int, wiredoc.MatchSource) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0, ""
	}

	slug := strings.ToLower(t.Slug)
	title := strings.ToLower(t.Title)

	if slug == q {
		return scoreSlugExact, wiredoc.MatchSlug
	}
	if title == q {
		return scoreTitleExact, wiredoc.MatchTitle
	}

	var m match
	switch {
	case strings.HasPrefix(slug, q):
		m.add(scoreSlugPrefix, wiredoc.MatchSlug)
	case strings.Contains(slug, q):
		m.add(scoreSlugContains, wiredoc.MatchSlug)
	}

	switch {
	case strings.HasPrefix(title, q):
		m.add(scoreTitlePrefix, wiredoc.MatchTitle)
	case strings.Contains(title, q):
		m.add(scoreTitleContains, wiredoc.MatchTitle)
	}

	if strings.Contains(strings.ToLower(t.Description), q) {
		m.add(scoreDescription, wiredoc.MatchDescription)
	}

	for _, kw := range t.Keywords {
		kw = strings.ToLower(kw)
		switch {
		case kw == q:
			m.add(scoreKeywordExact, wiredoc.MatchKeyword)
		case strings.Contains(kw, q):
			m.add(scoreKeywordContains, wiredoc.MatchKeyword)
		}
	}

	if m.score == 0 {
		if d := levenshtein.Distance(q, slug); d >= 1 && d <= maxFuzzyDistance {
			m.add(max(0, scoreFuzzyBase-scoreFuzzyPenalty*d), wiredoc.MatchFuzzy)
		}
	}

	return m.score, m.source
}

// ScoreDirective returns the relevance of a directive entry for query and
// the first rule that matched. Query and name are compared both as given
// and with the namespace prefix stripped.
func ScoreDirective(d wiredoc.DirectiveEntry, query string) (int, wiredoc.MatchSource) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0, ""
	}
	nq := wiredoc.StripPrefix(q)

	name := strings.ToLower(d.Name)
	nname := wiredoc.StripPrefix(name)

	if name == q || name == wiredoc.DirectivePrefix+q || nname == nq {
		return scoreNameExact, wiredoc.MatchName
	}

	variants := make([]string, len(d.Variants))
	for i, v := range d.Variants {
		variants[i] = strings.ToLower(v)
	}

	for _, v := range variants {
		if v == q || wiredoc.StripPrefix(v) == nq {
			return scoreVariantExact, wiredoc.MatchVariant
		}
	}

	var m match
	if strings.Contains(name, q) || (nq != "" && strings.Contains(nname, nq)) {
		m.add(scoreNameContains, wiredoc.MatchName)
	}

	for _, v := range variants {
		if strings.Contains(v, q) || (nq != "" && strings.Contains(wiredoc.StripPrefix(v), nq)) {
			m.add(scoreVariantContains, wiredoc.MatchVariant)
			break
		}
	}

	if strings.Contains(strings.ToLower(d.Description), q) {
		m.add(scoreDescription, wiredoc.MatchDescription)
	}

	return m.score, m.source
}

// match accumulates a score and remembers the first source that added to it.
type match struct {
	score  int
	source wiredoc.MatchSource
}

func (m *match) add(points int, source wiredoc.MatchSource) {
	if points <= 0 {
		return
	}
	m.score += points
	if m.source == "" {
		m.source = source
	}
}
