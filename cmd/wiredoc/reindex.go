package main

import (
	"fmt"

	"github.com/fwojciec/wiredoc"
)

// Run executes the reindex command.
func (c *ReindexCmd) Run(deps *Dependencies) error {
	idx, err := deps.Indexer.Rebuild(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wiredoc.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return printJSON(deps.Stdout, idx)
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d topics and %d directives.\n", len(idx.Topics), len(idx.Directives))
	return nil
}
