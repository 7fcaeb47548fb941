package cmd

import (
	"fmt"

	"adspend/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to disk",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Campaigns]")
	for _, c := range cfg.Campaigns {
		fmt.Printf("    %-12s ceiling $%.0f, rate %g, mean daily return %.2f ± %.2f\n",
			c.Name, c.Scale, c.Rate, c.MeanDailyReturn, c.ReturnStdDev)
	}
	fmt.Println()

	fmt.Println("  [Samples]")
	fmt.Printf("    Count: %d\n", cfg.Samples.Count)
	fmt.Printf("    Seed:  %d\n", cfg.Samples.Seed)
	fmt.Println()

	fmt.Println("  [Forecast]")
	fmt.Printf("    Horizon: %d months\n", cfg.Forecast.HorizonMonths)
	fmt.Println()

	fmt.Println("  [Output]")
	fmt.Printf("    Significance alpha: %g\n", cfg.Output.SignificanceAlpha)
	fmt.Println()

	fmt.Println("  Run `adspend config init` to write a config file to edit.")
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	if config.Exists() {
		return fmt.Errorf("config file already exists at %s", config.Path())
	}
	if err := config.Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("  Wrote defaults to %s\n", config.Path())
	return nil
}
