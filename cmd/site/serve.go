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
	"go.uber.org/zap"

	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/config"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/features"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/hover"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/httpserver"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/observability"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Address = addr
			}

			logger, err := observability.NewLogger(cfg.Log.Level)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(observability.WithLogger(ctx, logger), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides SITE_HTTP_ADDR)")
	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	logger := observability.Logger(ctx)
	views := hover.NewRegistry(hover.WithTTL(cfg.Views.TTL))

	srv, err := httpserver.New(httpserver.Config{
		Address:          cfg.Server.Address,
		Site:             cfg.Site,
		Features:         features.List(),
		HTMXSrc:          cfg.Assets.HTMXSrc,
		Logger:           logger,
		Views:            views,
		CSRFCookieSecure: cfg.Server.CSRFCookieSecure || cfg.IsProduction(),
	})
	if err != nil {
		return err
	}

	go views.Run(ctx, cfg.Views.SweepInterval, func(removed int) {
		logger.Debug("idle page views swept", zap.Int("removed", removed))
	})

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	logger.Info("site server listening",
		zap.String("addr", cfg.Server.Address),
		zap.String("env", cfg.Server.Environment),
		zap.String("version", version),
	)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("site server stopped")
	return nil
}
