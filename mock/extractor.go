package mock

import "github.com/fwojciec/wiredoc"

var _ wiredoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wiredoc.Extractor.
type Extractor struct {
	ExtractFn          func(html string, slug string) *wiredoc.Document
	ExtractDirectiveFn func(html string, name string) *wiredoc.Directive
}

func (e *Extractor) Extract(html string, slug string) *wiredoc.Document {
	return e.ExtractFn(html, slug)
}

func (e *Extractor) ExtractDirective(html string, name string) *wiredoc.Directive {
	return e.ExtractDirectiveFn(html, name)
}
