package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xltables/internal/config"
	"github.com/ukaji3/xltables/internal/server"
	"github.com/ukaji3/xltables/pkg/xltables"
	"github.com/ukaji3/xltables/pkg/xltables/cache"
	"github.com/ukaji3/xltables/pkg/xltables/query"
)

var addr string

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve table queries over HTTP",
		Long: `serve extracts all tables once at startup and then answers
/list_tables, /get_table_details and /row_sum requests. Send SIGHUP to
re-read the spreadsheet; a failed reload keeps the tables already loaded.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, closeFn, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	store, err := loadStore(cfg, logger)
	if err != nil {
		logger.Error("failed to load spreadsheet", "path", cfg.ExcelPath, "error", err)
		return err
	}
	svc := query.NewService(store, extractionOptions(cfg, logger).Resolver())

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.New(svc, logger).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-hup:
				reload(cfg, store, logger)
			}
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Addr, "tables", store.Load().Len())
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// loadStore extracts the configured spreadsheet into a new Store.
func loadStore(cfg config.Config, logger *slog.Logger) (*cache.Store, error) {
	c, err := xltables.Extract(cfg.ExcelPath, extractionOptions(cfg, logger))
	if err != nil {
		return nil, err
	}
	return cache.NewStore(c), nil
}

// reload re-extracts the spreadsheet and publishes the result. On failure
// the current cache stays in place.
func reload(cfg config.Config, store *cache.Store, logger *slog.Logger) {
	c, err := xltables.Extract(cfg.ExcelPath, extractionOptions(cfg, logger))
	if err != nil {
		logger.Error("reload failed, keeping current tables", "path", cfg.ExcelPath, "error", err)
		return
	}
	old := store.Swap(c)
	logger.Info("tables reloaded", "before", old.Len(), "after", c.Len())
}
