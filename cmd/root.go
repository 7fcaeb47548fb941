// Package cmd implements the adspend CLI commands.
package cmd

import (
	"fmt"
	"os"

	"adspend/internal/config"

	"github.com/spf13/cobra"
)

var (
	flagSeed    uint64
	flagSamples int
	flagMonths  int
)

var rootCmd = &cobra.Command{
	Use:   "adspend [budget]",
	Short: "Marketing budget allocation CLI",
	Long: "Split a marketing budget across campaigns for maximum projected return,\n" +
		"with an A/B significance check and a revenue forecast.",
	Args: cobra.MaximumNArgs(1),
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.RunE = runOptimize
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "Override the sample generator seed")
	rootCmd.PersistentFlags().IntVarP(&flagSamples, "samples", "n", 0, "Override the sample count per campaign")
	rootCmd.PersistentFlags().IntVar(&flagMonths, "months", 0, "Override the forecast horizon in months")
}

// loadConfig is the shared config loading path used by all commands.
// Flag overrides are applied on top of file values.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}

	flags := rootCmd.PersistentFlags()
	if flags.Changed("seed") {
		cfg.Samples.Seed = flagSeed
	}
	if flags.Changed("samples") {
		cfg.Samples.Count = flagSamples
	}
	if flags.Changed("months") {
		cfg.Forecast.HorizonMonths = flagMonths
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
