// ABOUTME: Root command wiring: config, logging, and client construction.
// ABOUTME: Shared package globals are initialized once before any subcommand.

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/harper/presskit/internal/config"
	"github.com/harper/presskit/internal/media"
	"github.com/harper/presskit/internal/publisher"
	"github.com/harper/presskit/internal/store"
	"github.com/harper/presskit/internal/wp"
)

var (
	cfg       *config.Config
	logger    *log.Logger
	wpClient  *wp.Client
	ingester  *media.Ingester
	pub       *publisher.Publisher
	draftsDir *store.Store
)

var rootCmd = &cobra.Command{
	Use:   "presskit",
	Short: "WordPress publishing toolkit",
	Long: `presskit publishes blog posts to WordPress: markdown rendering,
image optimization, taxonomy reconciliation, and SEO plugin metadata.
Run as an MCP server for AI agents or drive it directly from the CLI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = log.InfoLevel
		}
		// Logs go to stderr; stdout is reserved for command output and,
		// under the mcp command, the protocol stream.
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Level:           level,
			ReportTimestamp: true,
		})

		wpClient = wp.New(cfg, logger)
		ingester = media.NewIngester(cfg.TinyPNGKey, logger)
		pub = publisher.New(wpClient, cfg, ingester, logger)
		draftsDir = store.New(cfg.StorageDir)
		return nil
	},
}

func Execute() error {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
