package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gcbaptista/feedrank/config"
	"github.com/gcbaptista/feedrank/internal/classify"
	"github.com/gcbaptista/feedrank/internal/feed"
	"github.com/gcbaptista/feedrank/internal/logging"
	"github.com/gcbaptista/feedrank/internal/metrics"
	"github.com/gcbaptista/feedrank/model"
	"github.com/gcbaptista/feedrank/services"
)

var version = "dev"

// app carries what PersistentPreRunE loads for the subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.AppConfig
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "feedrank",
		Short: "Rerank short texts by content-moderation category",
		Long: `feedrank labels a handful of text snippets with a moderation category,
reorders them by a fixed category priority and reports how much of the feed
is hateful. It runs as a web page/JSON service or straight from the terminal.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./feedrank.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "json", "log format (console, json)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "seed for random category assignment (0 = time based)")

	// Bind flags to viper
	_ = a.v.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = a.v.BindPFlag("classify.seed", rootCmd.PersistentFlags().Lookup("seed"))

	rootCmd.AddCommand(a.serveCmd())
	rootCmd.AddCommand(a.rankCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) initConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

// newService builds the feed pipeline. A non-empty pinned list replaces the
// random category source.
func (a *app) newService(pinned []model.Category, m *metrics.Metrics) (*feed.Service, error) {
	var source services.CategorySource
	if len(pinned) > 0 {
		source = classify.NewFixedSource(pinned...)
	} else {
		source = classify.NewRandomSource(a.cfg.Feed.PriorityOrder, a.cfg.Classify.Seed)
	}

	opts := []feed.Option{
		feed.WithLogger(a.logger.Named("feed")),
		feed.WithChartRadius(a.cfg.Chart.Radius),
	}
	if m != nil {
		opts = append(opts, feed.WithMetrics(m))
	}
	return feed.NewService(a.cfg.Feed, source, opts...)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "feedrank %s\n", version)
		},
	}
}
