package main

import (
	"fmt"

	"github.com/fwojciec/wiredoc"
	"github.com/fwojciec/wiredoc/search"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	idx, err := deps.Indexes.ReadIndex(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wiredoc.ErrorMessage(err))
		return err
	}

	results := search.NewEngine(idx).Search(c.Query, c.Limit)

	if c.JSON {
		return printJSON(deps.Stdout, results)
	}

	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q.\n", c.Query)
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "%4d  %-9s %-22s %s\n", r.Score, r.Kind, r.Key, r.Description)
	}

	return nil
}
