package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"adspend/internal/cli"
	"adspend/internal/forecast"
	"adspend/internal/pipeline"

	"github.com/spf13/cobra"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast <spend>",
	Short: "Project cumulative revenue for the lead campaign at a given spend",
	Args:  cobra.ExactArgs(1),
	RunE:  runForecast,
}

func init() {
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	raw := strings.TrimPrefix(strings.TrimSpace(args[0]), "$")
	spend, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid spend %q: enter a numeric value", raw)
	}

	curves := pipeline.Curves(cfg)
	revenue, err := forecast.Cumulative(curves[0], spend, cfg.Forecast.HorizonMonths)
	if err != nil {
		return err
	}

	lead := cfg.Campaigns[0]
	fmt.Printf("\n  %d-month revenue forecast for %s at %s total spend:\n",
		cfg.Forecast.HorizonMonths, lead.Name, cli.FormatCurrency(spend))
	fmt.Printf("  %s\n\n", cli.FormatCurrency(revenue))

	return nil
}
