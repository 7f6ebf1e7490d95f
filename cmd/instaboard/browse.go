package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/as3d12/instaboard/presentation"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const browseHelp = `Commands:
  /text      search by name (a lone "/" clears the search)
  more       load the next batch
  retry      retry after a failed fetch
  like N     like card N
  email N    show or hide the email of card N
  dark       toggle dark mode
  show       print the board
  quit       exit`

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the directory interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			board, release, err := newBoard(ctx, cfg, log.Logger)
			if err != nil {
				return err
			}
			defer release()
			return runBrowse(ctx, board, cfg.FetchTimeout+cfg.HTTPTimeout, os.Stdin, os.Stdout)
		},
	}
}

// runBrowse reads one command per line from in until quit or EOF.
func runBrowse(ctx context.Context, board *presentation.Board, wait time.Duration, in io.Reader, out io.Writer) error {
	show := func() error {
		v, err := settle(ctx, board, wait)
		if err != nil {
			return err
		}
		return board.Render(out, v)
	}

	if err := show(); err != nil {
		return err
	}
	fmt.Fprintln(out, browseHelp)

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "/") {
			board.Dir.SetQuery(strings.TrimPrefix(line, "/"))
			if err := show(); err != nil {
				return err
			}
			continue
		}

		cmd, arg, _ := strings.Cut(line, " ")
		cmd = strings.ToLower(cmd)
		switch cmd {
		case "quit", "exit", "q":
			return nil
		case "show":
		case "more":
			if !board.Dir.LoadMore() {
				fmt.Fprintln(out, "load more is not available right now")
				continue
			}
		case "retry":
			if !board.Dir.Retry() {
				fmt.Fprintln(out, "nothing to retry")
				continue
			}
		case "dark":
			board.Mode.Toggle()
		case "like", "email":
			id, err := strconv.Atoi(strings.TrimSpace(arg))
			if err != nil {
				fmt.Fprintf(out, "usage: %s N\n", cmd)
				continue
			}
			if cmd == "like" {
				_, err = board.Like(id)
			} else {
				_, err = board.ToggleEmail(id)
			}
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
		case "help", "?":
			fmt.Fprintln(out, browseHelp)
			continue
		default:
			fmt.Fprintf(out, "unknown command %q\n", cmd)
			continue
		}
		if err := show(); err != nil {
			return err
		}
	}
	return sc.Err()
}
