package main

import (
	"fmt"

	"github.com/fwojciec/wiredoc"
	"github.com/fwojciec/wiredoc/crawl"
)

// Run executes the update command.
func (c *UpdateCmd) Run(deps *Dependencies) error {
	progress := func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "Updating %d topics...\n", e.Total)
		case crawl.ProgressSaved:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s\n", e.Completed, e.Total, e.Slug)
		case crawl.ProgressUnchanged:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s (unchanged)\n", e.Completed, e.Total, e.Slug)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s failed: %v\n", e.Completed, e.Total, e.Slug, e.Error)
		}
	}

	result, err := deps.Updater.Update(deps.Ctx, c.Slugs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wiredoc.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return printJSON(deps.Stdout, result)
	}

	fmt.Fprintf(deps.Stdout, "Saved %d, unchanged %d, failed %d.\n", result.Saved, result.Unchanged, result.Failed)
	fmt.Fprintf(deps.Stdout, "Directives: %d, failed %d. Links added: %d.\n", result.Directives, result.DirectivesFailed, result.LinksAdded)
	fmt.Fprintf(deps.Stdout, "Indexed %d topics and %d directives.\n", result.IndexedTopics, result.IndexedDirectives)
	return nil
}
