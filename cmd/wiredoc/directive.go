package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/wiredoc"
)

// Run executes the directive command.
func (c *DirectiveCmd) Run(deps *Dependencies) error {
	d, err := deps.Directives.FindDirective(deps.Ctx, c.Name)
	if wiredoc.IsNotFound(err) {
		fmt.Fprintf(deps.Stderr, "error: directive %q not found. Use 'wiredoc update' to fetch directive references.\n", c.Name)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wiredoc.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return printJSON(deps.Stdout, d)
	}

	w := deps.Stdout
	fmt.Fprintf(w, "# %s\n", d.Name)
	if d.Description != "" {
		fmt.Fprintf(w, "\n%s\n", d.Description)
	}

	if len(d.Variants) > 0 {
		fmt.Fprintln(w, "\nVariants:")
		for _, v := range d.Variants {
			fmt.Fprintf(w, "  %-32s %s\n", v.Syntax, v.Description)
		}
	}

	for _, ex := range d.Examples {
		fmt.Fprintf(w, "\n```\n%s\n```\n", ex)
	}

	if len(d.RelatedTopics) > 0 {
		fmt.Fprintf(w, "\nRelated: %s\n", strings.Join(d.RelatedTopics, ", "))
	}

	return nil
}
