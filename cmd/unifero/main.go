package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/unifero"
	"github.com/fwojciec/unifero/crawl"
	"github.com/fwojciec/unifero/duckduckgo"
	"github.com/fwojciec/unifero/goquery"
	"github.com/fwojciec/unifero/htmltomarkdown"
	unihttp "github.com/fwojciec/unifero/http"
	unislog "github.com/fwojciec/unifero/slog"
	"github.com/fwojciec/unifero/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Service handles search and docs requests. Overridable for
	// end-to-end testing; wired from real collaborators when nil.
	Service unifero.Service

	// Fetcher used by the wired engine. Closed when Run returns.
	fetcher unifero.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close releases resources held by the program.
func (m *Main) Close() error {
	if m.fetcher != nil {
		return m.fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("unifero"),
		kong.Description("Web search and documentation crawling with Markdown extraction."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Legacy invocation: a single JSON envelope as the sole positional
	// argument (or via UNIFERO_JSON) runs a request and prints compact
	// JSON, for callers built against the pre-subcommand interface.
	if raw, ok := legacyPayload(args); ok {
		deps.Service = m.service(newLogger(stderr, false))
		defer m.Close()
		return runLegacy(deps, raw)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'unifero --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)
	deps.Logger = logger
	deps.Service = m.service(logger)
	defer m.Close()

	return kongCtx.Run(deps)
}

// service returns the configured Service, wiring the real engine when no
// override was injected.
func (m *Main) service(logger *slog.Logger) unifero.Service {
	if m.Service != nil {
		return m.Service
	}

	fetcher := unislog.NewLoggingFetcher(unihttp.NewFetcher(), logger)
	m.fetcher = fetcher

	return &crawl.Engine{
		Fetcher:   fetcher,
		Extractor: goquery.NewExtractor(),
		Fallback:  trafilatura.NewExtractor(),
		Converter: htmltomarkdown.NewConverter(),
		Links:     goquery.NewLinkExtractor(),
		Searcher:  unislog.NewLoggingSearcher(duckduckgo.NewSearcher(), logger),
		Sitemaps:  unislog.NewLoggingSitemapService(unihttp.NewSitemapService(nil), logger),
		Limiter:   crawl.NewDomainLimiter(defaultDomainRPS),
	}
}

// defaultDomainRPS paces requests against a single host.
const defaultDomainRPS = 2.0

// newLogger builds the CLI logger: warnings only unless verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// legacyPayload reports whether args carry a legacy JSON envelope, either
// inline as the only positional argument or via the UNIFERO_JSON variable.
func legacyPayload(args []string) (string, bool) {
	if len(args) == 1 && strings.HasPrefix(strings.TrimSpace(args[0]), "{") {
		return args[0], true
	}
	if len(args) == 0 {
		if raw := os.Getenv("UNIFERO_JSON"); raw != "" {
			return raw, true
		}
	}
	return "", false
}
