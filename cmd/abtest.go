package cmd

import (
	"fmt"

	"adspend/internal/cli"
	"adspend/internal/sample"
	"adspend/internal/stats"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

var abtestCmd = &cobra.Command{
	Use:   "abtest",
	Short: "Significance test between the first two campaigns' performance histories",
	RunE:  runABTest,
}

func init() {
	rootCmd.AddCommand(abtestCmd)
}

func runABTest(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	series, err := sample.Generate(cfg.Campaigns, cfg.Samples.Count, cfg.Samples.Seed)
	if err != nil {
		return fmt.Errorf("generating performance samples: %w", err)
	}

	res, err := stats.Welch(series[0], series[1])
	if err != nil {
		return fmt.Errorf("significance test: %w", err)
	}
	res.Significant = res.PValue < cfg.Output.SignificanceAlpha

	fmt.Println()
	fmt.Println(cli.RenderTitle("A/B TEST"))
	fmt.Println()

	rows := [][]string{
		{cfg.Campaigns[0].Name, cli.FormatStat(stat.Mean(series[0], nil)), fmt.Sprintf("%d", len(series[0]))},
		{cfg.Campaigns[1].Name, cli.FormatStat(stat.Mean(series[1], nil)), fmt.Sprintf("%d", len(series[1]))},
		{"---"},
		{"t-statistic", cli.FormatStat(res.TStat), ""},
		{"p-value", cli.FormatPValue(res.PValue), ""},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"", "Mean Daily Return", "Days"},
		Rows:    rows,
	}))

	if res.Significant {
		better := cfg.Campaigns[0].Name
		if res.TStat < 0 {
			better = cfg.Campaigns[1].Name
		}
		fmt.Printf("\n  Statistically significant difference, %s likely performs better\n\n", better)
	} else {
		fmt.Print("\n  No statistically significant difference between campaigns\n\n")
	}

	return nil
}
