// ABOUTME: Serve command starting the HTTP API server
// ABOUTME: Wires fetcher, aggregator, store and language service; shuts down gracefully

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/newswave/newswave/internal/aggregate"
	"github.com/newswave/newswave/internal/feeds"
	"github.com/newswave/newswave/internal/lang"
	"github.com/newswave/newswave/internal/server"
	"github.com/newswave/newswave/internal/store"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the news API server",
	Long: `Start the HTTP server exposing the aggregated news listing, category
endpoints, news submission, videos, translations and the HLS proxy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		langSvc := lang.Default()
		if cfg.Lang.Path != "" {
			var err error
			langSvc, err = lang.Load(cfg.Lang.Path)
			if err != nil {
				return fmt.Errorf("failed to load language file: %w", err)
			}
		}

		fetcher := feeds.New(cfg.Aggregation.FetchTimeout.Std())
		submissions := store.New()
		agg := aggregate.New(fetcher, submissions, logger)
		srv := server.New(cfg, agg, submissions, langSvc, logger)

		errCh := make(chan error, 1)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case sig := <-stop:
			logger.Info("shutting down", "signal", sig.String())
		}

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
