package main

import (
	"fmt"

	"github.com/fwojciec/wiredoc"
)

// Run executes the links command.
func (c *LinksCmd) Run(deps *Dependencies) error {
	writes, err := deps.Documents.EnsureBidirectionalLinks(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wiredoc.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return printJSON(deps.Stdout, struct {
			LinksAdded int `json:"links_added"`
		}{writes})
	}

	fmt.Fprintf(deps.Stdout, "Added %d links.\n", writes)
	return nil
}
