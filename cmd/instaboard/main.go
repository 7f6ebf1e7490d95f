package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/as3d12/instaboard/client"
	"github.com/as3d12/instaboard/directory"
	"github.com/as3d12/instaboard/internal/config"
	"github.com/as3d12/instaboard/internal/jobqueue"
	"github.com/as3d12/instaboard/presentation"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	endpointFlag string
	debugFlag    bool
	levelFlag    string
	darkFlag     bool

	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:           "instaboard",
		Short:         "Browse a directory of user profiles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.InitLogger(os.Stderr)
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			config.SetLogLevel(c.Level())
			cfg = c
			return nil
		},
	}
)

func main() {
	addRootFlags(rootCmd)
	rootCmd.AddCommand(newListCmd(), newBrowseCmd(), newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&endpointFlag, "endpoint", "e", client.DefaultEndpoint, "Directory endpoint URL")
	cmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Log HTTP traffic and debug events")
	cmd.PersistentFlags().StringVar(&levelFlag, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&darkFlag, "dark", false, "Start in dark mode")
}

// loadConfig reads the environment, applies explicitly set flags on top and
// validates the result once.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	c, err := config.Load()
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		c.Endpoint = endpointFlag
	}
	if flags.Changed("debug") {
		c.Debug = debugFlag
	}
	if flags.Changed("log-level") {
		c.LogLevel = levelFlag
	}
	if flags.Changed("dark") {
		c.DarkMode = darkFlag
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// newBoard builds the fetcher, directory and board from the loaded config.
// The returned func releases all of them.
func newBoard(ctx context.Context, c *config.Config, logger zerolog.Logger) (*presentation.Board, func(), error) {
	qcfg, err := jobqueue.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("queue config: %w", err)
	}
	fetcher := client.New(c.Endpoint, c.ClientOptions()...)
	dir := directory.New(fetcher,
		directory.WithContext(ctx),
		directory.WithFetchTimeout(c.FetchTimeout),
		directory.WithQueueConfig(qcfg),
		directory.WithLogger(logger),
	)
	board := presentation.NewBoard(dir, presentation.NewDisplayMode(c.DarkMode), presentation.NewCards())
	release := func() {
		_ = dir.Close()
		_ = fetcher.Close()
	}
	return board, release, nil
}

// settle waits for the in-flight fetch, if any, and returns the resulting view.
func settle(ctx context.Context, board *presentation.Board, timeout time.Duration) (directory.View, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := board.Dir.AwaitIdle(ctx); err != nil {
		return directory.View{}, err
	}
	return board.View(), nil
}
