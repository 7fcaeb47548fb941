package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"adspend/internal/cli"
	"adspend/internal/pipeline"

	"github.com/spf13/cobra"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [budget]",
	Short: "Allocate a budget across campaigns",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runOptimize,
}

func init() {
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var raw string
	if len(args) > 0 {
		raw = args[0]
	} else {
		fmt.Print("Enter your total marketing budget ($): ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading budget: %w", err)
		}
		raw = line
	}

	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "$"))
	budget, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid budget %q: enter a numeric value", raw)
	}

	report, err := pipeline.Run(budget, cfg)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(cli.RenderReport(report))
	fmt.Println()
	return nil
}
