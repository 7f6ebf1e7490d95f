package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/as3d12/instaboard/internal/config"
	"github.com/as3d12/instaboard/internal/httpapi"
	"github.com/as3d12/instaboard/presentation"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				cfg.HTTPAddr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := config.NewLogger(os.Stderr, "instaboard")

			// Fetches outlive request contexts; only Close cancels them.
			board, release, err := newBoard(context.Background(), cfg, logger)
			if err != nil {
				return err
			}
			defer release()

			ln, err := net.Listen("tcp", cfg.HTTPAddr)
			if err != nil {
				return err
			}
			logger.Info().Str("addr", ln.Addr().String()).Str("endpoint", cfg.Endpoint).Msg("HTTP server starting")
			return runServe(ctx, board, ln, logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from INSTABOARD_HTTP_ADDR)")
	return cmd
}

// runServe serves board on ln until ctx is done, then shuts down gracefully.
func runServe(ctx context.Context, board *presentation.Board, ln net.Listener, logger zerolog.Logger) error {
	server := &http.Server{
		Handler:      httpapi.NewRouter(board),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("Shutting down server…")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info().Msg("Server exited")
	return nil
}
