package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"leaguemotd/internal/interfaces/cli/app"
	httpRouter "leaguemotd/internal/interfaces/http"
	"leaguemotd/internal/shared/goroutine"
)

func NewCommand(newApp app.Factory) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve MOTD lists over HTTP",
		Long:  `Start a read-only HTTP server answering GET /motds/:lang for the game client.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return run(ctx, newApp, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: server.host:server.port from config)")

	return cmd
}

func run(ctx context.Context, newApp app.Factory, addr string) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	gin.SetMode(mapModeToGin(a.Config.Server.Mode))

	if addr == "" {
		addr = a.Config.Server.GetAddr()
	}

	router := httpRouter.NewRouter(a.ListMOTDs, a.Logger.Named("http"))
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         addr,
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.Logger.Infow("server starting", "address", addr)
	serveErr := goroutine.SafeGo(a.Logger, "http-server", func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.Logger.Infow("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.Logger.Errorw("server forced to shutdown", "error", err)
		return err
	}

	a.Logger.Infow("server exited gracefully")
	return nil
}

func mapModeToGin(mode string) string {
	switch mode {
	case "development", "dev", "debug":
		return gin.DebugMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.ReleaseMode
	}
}
