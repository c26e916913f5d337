package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/unifero"
)

// legacyEnvelope is the pre-subcommand request shape: a single JSON object
// selecting the mode and its parameters.
type legacyEnvelope struct {
	Mode           string `json:"mode"`
	Query          string `json:"query"`
	URL            string `json:"url"`
	Limit          int    `json:"limit"`
	SnippetLen     int    `json:"snippet_len"`
	ContentLen     int    `json:"content_len"`
	IncludeContent *bool  `json:"include_content"`
	ContentLimit   int    `json:"content_limit"`
}

// runLegacy executes a legacy JSON request and prints the compact envelope.
func runLegacy(deps *Dependencies, raw string) error {
	var env legacyEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return unifero.Errorf(unifero.EINVALID, "invalid JSON request: %v", err)
	}
	if env.Mode == "" {
		env.Mode = "search"
	}

	switch env.Mode {
	case "search":
		resp, err := deps.Service.Search(deps.Ctx, &unifero.SearchRequest{
			Query:      env.Query,
			Limit:      env.Limit,
			SnippetLen: env.SnippetLen,
			ContentLen: env.ContentLen,
		})
		if err != nil {
			return err
		}
		return printCompact(deps, resp)

	case "docs":
		includeContent := true
		if env.IncludeContent != nil {
			includeContent = *env.IncludeContent
		}
		contentLen := env.ContentLimit
		if contentLen == 0 {
			contentLen = env.ContentLen
		}
		resp, err := deps.Service.Docs(deps.Ctx, &unifero.DocsRequest{
			URL:            env.URL,
			Limit:          env.Limit,
			IncludeContent: includeContent,
			ContentLen:     contentLen,
		})
		if err != nil {
			return err
		}
		return printCompact(deps, resp)

	default:
		return unifero.Errorf(unifero.EINVALID, "invalid mode %q, use 'search' or 'docs'", env.Mode)
	}
}

func printCompact(deps *Dependencies, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}
	fmt.Fprintln(deps.Stdout, string(data))
	return nil
}
