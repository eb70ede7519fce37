package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/wiredoc"
)

// suggestionLimit is the number of slugs offered when a topic is unknown.
const suggestionLimit = 3

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	doc, err := deps.Documents.FindDocument(deps.Ctx, c.Slug, wiredoc.Category(c.Category))
	if wiredoc.IsNotFound(err) {
		fmt.Fprintf(deps.Stderr, "error: topic %q not found\n", c.Slug)
		if suggestions, serr := deps.Documents.Suggest(deps.Ctx, c.Slug, suggestionLimit); serr == nil && len(suggestions) > 0 {
			fmt.Fprintf(deps.Stderr, "Did you mean: %s?\n", strings.Join(suggestions, ", "))
		}
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wiredoc.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return printJSON(deps.Stdout, doc)
	}

	w := deps.Stdout
	fmt.Fprintf(w, "# %s\n", doc.Title)
	fmt.Fprintf(w, "%s · %s\n", doc.Category, doc.URL)
	if doc.Description != "" {
		fmt.Fprintf(w, "\n%s\n", doc.Description)
	}

	for _, s := range doc.Sections {
		fmt.Fprintf(w, "\n## %s\n", s.Title)
		if s.Content != "" {
			fmt.Fprintf(w, "\n%s\n", s.Content)
		}
		for _, ex := range s.Examples {
			fmt.Fprintf(w, "\n```%s\n%s\n```\n", ex.Type, ex.Code)
		}
	}

	if len(doc.DirectivesUsed) > 0 {
		fmt.Fprintf(w, "\nDirectives: %s\n", strings.Join(doc.DirectivesUsed, ", "))
	}
	if len(doc.Related) > 0 {
		fmt.Fprintf(w, "Related: %s\n", strings.Join(doc.Related, ", "))
	}

	return nil
}
