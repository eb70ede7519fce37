package main

import (
	"fmt"

	"github.com/fwojciec/wiredoc"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	var filter wiredoc.DocumentFilter
	if c.Category != "" {
		category := wiredoc.Category(c.Category)
		filter.Category = &category
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wiredoc.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return printJSON(deps.Stdout, docs)
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No topics found. Use 'wiredoc update' to fetch the documentation.")
		return nil
	}

	var current wiredoc.Category
	for _, doc := range docs {
		if doc.Category != current {
			if current != "" {
				fmt.Fprintln(deps.Stdout)
			}
			current = doc.Category
			fmt.Fprintf(deps.Stdout, "%s:\n", current)
		}
		fmt.Fprintf(deps.Stdout, "  %-22s %s\n", doc.Slug, doc.Title)
	}

	return nil
}
