package main

import (
	"fmt"

	"github.com/fwojciec/unifero"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	resp, err := deps.Service.Search(deps.Ctx, &unifero.SearchRequest{
		Query:      c.Query,
		Limit:      c.Limit,
		SnippetLen: c.SnippetLen,
		ContentLen: c.ContentLen,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", unifero.ErrorMessage(err))
		return err
	}

	return writeResult(deps, resp, c.Output, c.Compact)
}
