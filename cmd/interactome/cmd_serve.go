package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/GiulianoDami/MCL1-Regulator/internal/api"
	"github.com/GiulianoDami/MCL1-Regulator/internal/config"
	"github.com/GiulianoDami/MCL1-Regulator/internal/service"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd() *cobra.Command {
	var input, attributes string

	cmd := &cobra.Command{
		Use:   "serve --input <file>",
		Short: "Serve read-only graph queries over HTTP",
		Long: `Load a network once and serve it read-only over a JSON API under /api/v1,
with Prometheus metrics on /metrics. Listen address, CORS origins and analysis
defaults come from PORT, LISTEN_HOST, CORS_ORIGINS, MIN_CONFIDENCE and TOP_HUBS.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			net, err := loadNetwork(input, attributes)
			if err != nil {
				return err
			}

			gin.SetMode(gin.ReleaseMode)

			handler := api.NewRouter(&api.RouterDeps{
				Log:           logger,
				Graph:         service.NewGraphService(net, logger),
				Analysis:      service.NewAnalysisService(net, scoringCfg, logger),
				CORSOrigins:   cfg.CORSOrigins,
				Version:       config.Version,
				MinConfidence: cfg.MinConfidence,
				TopHubs:       cfg.TopHubs,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg.Addr(), handler)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Interaction file (CSV or XLSX)")
	cmd.Flags().StringVar(&attributes, "attributes", "", "Node attribute CSV (node,key,value)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// serve runs an HTTP server on addr until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.WithField("addr", addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listening on %s: %w", addr, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("server shutdown")
			return err
		}

		logger.WithFields(logrus.Fields{"addr": addr}).Info("server stopped")
		return nil
	})

	return g.Wait()
}
