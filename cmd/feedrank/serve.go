package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gcbaptista/feedrank/api"
	"github.com/gcbaptista/feedrank/internal/metrics"
)

const shutdownTimeout = 10 * time.Second

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the feed page and JSON API",
		Example: `  feedrank serve                 # Start server on default port 8080
  feedrank serve --port 9000     # Start server on port 9000
  FEEDRANK_CLASSIFY_SEED=7 feedrank serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.newService(nil, metrics.Default())
			if err != nil {
				return err
			}

			router := api.NewRouter(svc, a.cfg.Server, a.logger.Named("http"))
			srv := &http.Server{
				Addr:              ":" + a.cfg.Server.Port,
				Handler:           router,
				ReadHeaderTimeout: 5 * time.Second,
			}

			return runServer(cmd.Context(), srv, a.logger)
		},
	}

	cmd.Flags().String("port", "8080", "Port to run the server on")
	_ = a.v.BindPFlag("server.port", cmd.Flags().Lookup("port"))

	return cmd
}

// runServer serves until ctx is cancelled, then shuts down gracefully.
func runServer(ctx context.Context, srv *http.Server, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
