package cmd

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

	"github.com/saulo-duarte/lifeboard/internal/config"
	"github.com/saulo-duarte/lifeboard/internal/router"
)

var port int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if app.Settings.Auth.JWTSecret == "" {
			return errors.New("auth.jwt_secret (JWT_SECRET) must be set to serve")
		}

		listen := app.Settings.HTTP.Port
		if cmd.Flags().Changed("port") {
			listen = port
		}

		srv := &http.Server{
			Addr: fmt.Sprintf(":%d", listen),
			Handler: router.New(router.RouterConfig{
				AllowedOrigins: app.Settings.HTTP.AllowedOrigins,
				GoalHandler:    app.GoalContainer.Handler,
				ReviewHandler:  app.ReviewContainer.Handler,
			}),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			config.Logger.WithField("addr", srv.Addr).Info("HTTP server listening")
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

		config.Logger.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&port, "port", "p", 8080, "port to listen on (overrides http.port)")
}
