package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpDelivery "github.com/seeker/backend/internal/delivery/http"
	"github.com/seeker/backend/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service",
	Long: `Run the HTTP service with the built-in training examples loaded.

The form page is served at / and the JSON API under /api/v1.

Examples:
  # Start on the default port
  SEEKER_SEARCH_API_KEY=... seeker serve

  # Start on another port
  SEEKER_SERVER_PORT=9090 seeker serve`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp(usecase.DefaultExamples())
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handler := httpDelivery.NewHandler(a.classifier, a.logger)
	router := httpDelivery.SetupRouter(a.cfg, handler, a.logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", a.cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	a.logger.Info("starting seeker",
		zap.String("version", version),
		zap.String("environment", a.cfg.Server.Environment),
		zap.String("addr", srv.Addr),
		zap.Int("examples", len(a.classifier.Examples())))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	a.logger.Info("server shutdown complete")
	return nil
}
