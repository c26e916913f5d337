package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	unihttp "github.com/fwojciec/unifero/http"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Request logs are machine-read in server deployments.
	logger := slog.New(slog.NewJSONHandler(deps.Stderr, nil))

	server := unihttp.NewServer(deps.Service, logger)
	server.Addr = c.Addr

	if err := server.Open(); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.Addr, err)
	}
	fmt.Fprintf(deps.Stderr, "listening on %s\n", server.URL())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		return server.Close()
	})

	return g.Wait()
}
