package main

import (
	"fmt"

	"github.com/fwojciec/unifero"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	resp, err := deps.Service.Docs(deps.Ctx, &unifero.DocsRequest{
		URL:            c.URL,
		Limit:          c.Limit,
		IncludeContent: !c.NoContent,
		ContentLen:     c.ContentLen,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", unifero.ErrorMessage(err))
		return err
	}

	return writeResult(deps, resp, c.Output, c.Compact)
}
