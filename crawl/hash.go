package crawl

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wiredoc"
)

// ContentHash fingerprints the extracted content of a document. The scrape
// timestamp and related links are excluded since links grow during
// normalization.
func ContentHash(doc *wiredoc.Document) string {
	h := xxhash.New()
	write := func(s string) {
		_, _ = h.WriteString(s)
		_, _ = h.Write([]byte{0})
	}

	write(doc.Slug)
	write(doc.Title)
	write(doc.Description)
	write(string(doc.Category))
	write(doc.URL)
	for _, s := range doc.Sections {
		write(s.Title)
		write(s.Content)
		for _, ex := range s.Examples {
			write(ex.Code)
			write(string(ex.Type))
		}
	}
	write(strings.Join(doc.DirectivesUsed, ","))

	return fmt.Sprintf("%x", h.Sum64())
}

// sameContent reports whether fresh carries the same extracted content as
// prev. Related links are not compared.
func sameContent(prev, fresh *wiredoc.Document) bool {
	return prev != nil && ContentHash(prev) == ContentHash(fresh)
}
