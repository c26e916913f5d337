package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/unifero"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Service unifero.Service
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Search SearchCmd `cmd:"" help:"Search the web and extract page content"`
	Docs   DocsCmd   `cmd:"" help:"Crawl a documentation site starting from a URL"`
	Serve  ServeCmd  `cmd:"" help:"Run the HTTP API server"`

	Verbose bool `short:"v" help:"Enable debug logging"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query      string `arg:"" help:"Search query"`
	Limit      int    `short:"l" default:"5" help:"Maximum number of results (1-10)"`
	SnippetLen int    `name:"snippet-len" default:"300" help:"Snippet length cap in characters"`
	ContentLen int    `name:"content-len" default:"2000" help:"Content length cap in characters"`
	Output     string `short:"o" help:"Write JSON to a file instead of stdout"`
	Compact    bool   `help:"Emit single-line JSON"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	URL        string `arg:"" help:"Base documentation URL"`
	Limit      int    `short:"l" default:"5" help:"Maximum number of pages (1-10)"`
	NoContent  bool   `name:"no-content" help:"List crawled URLs without extracting content"`
	ContentLen int    `name:"content-len" default:"2000" help:"Content length cap in characters"`
	Output     string `short:"o" help:"Write JSON to a file instead of stdout"`
	Compact    bool   `help:"Emit single-line JSON"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" env:"UNIFERO_ADDR" help:"Bind address"`
}
