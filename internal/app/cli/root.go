// Package cli contains the cobra command tree for the appraisal binary.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"appraisal/internal/app/server"
	"appraisal/internal/platform/config"
)

type cli struct {
	cfgFile string
	verbose bool
	asJSON  bool

	out  io.Writer
	now  func() time.Time
	load func(path string) (config.Config, error)
	open func(ctx context.Context, cfg config.Config) (*server.Stores, error)
}

func newCLI(out io.Writer) *cli {
	return &cli{
		out:  out,
		now:  time.Now,
		load: config.Load,
		open: server.OpenStores,
	}
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "appraisal",
		Short: "Goal appraisal scoring, team rankings and notification feeds",
		Long: `appraisal serves and inspects employee goal performance: per-period
metrics and scores, manager team rankings with monthly snapshots, and the
per-user notification feed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
	}
	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "Config file path (YAML)")
	root.PersistentFlags().BoolVar(&c.verbose, "verbose", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&c.asJSON, "json", false, "Output as JSON")

	root.AddCommand(
		c.serveCmd(),
		c.migrateCmd(),
		c.rankingsCmd(),
		c.notificationsCmd(),
		c.trendCmd(),
	)
	return root
}

func (c *cli) config() (config.Config, error) {
	cfg, err := c.load(c.cfgFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// withStores loads config, opens the stores and closes them after fn.
func (c *cli) withStores(ctx context.Context, fn func(cfg config.Config, stores *server.Stores) error) error {
	cfg, err := c.config()
	if err != nil {
		return err
	}
	stores, err := c.open(ctx, cfg)
	if err != nil {
		return err
	}
	defer stores.Close()
	return fn(cfg, stores)
}

// Execute is the entry point called from main.
func Execute() error {
	return newCLI(os.Stdout).rootCmd().Execute()
}
