package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/as3d12/instaboard/directory"
	"github.com/as3d12/instaboard/presentation"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var (
		query string
		pages int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Load the directory and print it once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			board, release, err := newBoard(ctx, cfg, log.Logger)
			if err != nil {
				return err
			}
			defer release()
			return runList(ctx, board, query, pages, cfg.FetchTimeout+cfg.HTTPTimeout, os.Stdout)
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "Only show users whose name contains this text")
	cmd.Flags().IntVarP(&pages, "pages", "p", 0, "Extra batches to load after the first")
	return cmd
}

// runList waits for the initial load, appends up to pages more batches and
// prints the board. A failed fetch stops paging; the board still prints.
func runList(ctx context.Context, board *presentation.Board, query string, pages int, wait time.Duration, out io.Writer) error {
	v, err := settle(ctx, board, wait)
	if err != nil {
		return err
	}
	for i := 0; i < pages && v.Phase == directory.Ready; i++ {
		if !board.Dir.LoadMore() {
			break
		}
		if v, err = settle(ctx, board, wait); err != nil {
			return err
		}
	}
	if query != "" {
		board.Dir.SetQuery(query)
		v = board.View()
	}
	if err := board.Render(out, v); err != nil {
		return err
	}
	if v.Phase == directory.Error {
		return errors.New(v.ErrorMessage)
	}
	return nil
}
