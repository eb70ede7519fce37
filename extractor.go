package wiredoc

// Extractor turns raw documentation markup into corpus records.
// Extraction never fails: missing structure degrades to empty fields.
type Extractor interface {
	// Extract parses a topic page into a Document for the given slug.
	Extract(html string, slug string) *Document

	// ExtractDirective parses a directive reference page.
	ExtractDirective(html string, name string) *Directive
}
