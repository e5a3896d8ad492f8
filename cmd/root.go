// Package cmd implements the CLI commands for recipepipe using Cobra.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/recipepipe/config"
	"github.com/gaurav-prasanna/recipepipe/logger"
)

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string
	// flagDebug forces debug-level development logging.
	flagDebug bool

	v   = viper.New()
	cfg *config.Config
	log = zap.NewNop()

	rootCmd = &cobra.Command{
		Use:   "recipepipe",
		Short: "recipepipe — extract schema.org recipes from recipe websites",
		Long: `recipepipe classifies a recipe page URL, fetches the page, locates its
JSON-LD structured data and decodes the schema.org Recipe it describes.
The recipe is rendered as JSON, Markdown or PDF.

Usage:
  recipepipe scrape <url> [flags]
  recipepipe websites`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = log.Sync()
		},
	}
)

// configFlags maps configuration keys to the command-line flags that
// override them. Flags absent from the running command are skipped.
var configFlags = map[string]string{
	"fetch.timeout":      "timeout",
	"fetch.fixtures_dir": "fixtures",
	"crawl.max_pages":    "max_pages",
	"crawl.concurrency":  "concurrency",
	"output.dir":         "output_dir",
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() {
	// .env is optional.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is ./config.yaml or ./config/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(scrapeCmd, websitesCmd, versionCmd)
}

// setup loads the configuration and builds the logger for the command
// about to run.
func setup(cmd *cobra.Command, _ []string) error {
	for key, name := range configFlags {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind %s flag: %w", name, err)
		}
	}

	loaded, err := config.Load(v, cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if flagDebug {
		loaded.Logger.Level = "debug"
		loaded.Logger.Development = true
	}

	l, err := logger.New(loaded.Logger)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	cfg, log = loaded, l
	log.Debug("configuration loaded",
		zap.String("config_file", v.ConfigFileUsed()),
		zap.String("log_level", cfg.Logger.Level))
	return nil
}
