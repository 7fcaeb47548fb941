// Package pipeline wires the response model, allocator, significance
// test, and forecaster into a single budget optimization run.
package pipeline

import (
	"errors"
	"fmt"
	"math"

	"adspend/internal/config"
	"adspend/internal/forecast"
	"adspend/internal/model"
	"adspend/internal/roi"
	"adspend/internal/sample"
	"adspend/internal/solver"
	"adspend/internal/stats"
)

// ErrInvalidBudget is returned before any computation when the requested
// budget is not a positive finite number.
var ErrInvalidBudget = errors.New("budget must be greater than zero")

// Curves builds the response curves from campaign configuration,
// in campaign order.
func Curves(cfg config.Config) []roi.Curve {
	curves := make([]roi.Curve, len(cfg.Campaigns))
	for i, c := range cfg.Campaigns {
		curves[i] = roi.Curve{Scale: c.Scale, Rate: c.Rate}
	}
	return curves
}

// Run executes the full pipeline for one budget figure: allocate the
// budget across campaigns, test the first two campaigns' historical
// performance for a significant difference, and project the lead
// campaign's revenue over the configured horizon.
//
// All state is call-local; repeated runs with the same inputs produce
// identical reports.
func Run(budget float64, cfg config.Config) (model.Report, error) {
	if math.IsNaN(budget) || math.IsInf(budget, 0) || budget <= 0 {
		return model.Report{}, fmt.Errorf("%w, got %v", ErrInvalidBudget, budget)
	}
	if err := cfg.Validate(); err != nil {
		return model.Report{}, fmt.Errorf("invalid configuration: %w", err)
	}

	curves := Curves(cfg)

	spends, combined, err := solver.Allocate(curves, budget)
	if err != nil {
		return model.Report{}, fmt.Errorf("allocating budget: %w", err)
	}

	series, err := sample.Generate(cfg.Campaigns, cfg.Samples.Count, cfg.Samples.Seed)
	if err != nil {
		return model.Report{}, fmt.Errorf("generating performance samples: %w", err)
	}

	test, err := stats.Welch(series[0], series[1])
	if err != nil {
		return model.Report{}, fmt.Errorf("significance test: %w", err)
	}
	test.Significant = test.PValue < cfg.Output.SignificanceAlpha

	revenue, err := forecast.Cumulative(curves[0], spends[0], cfg.Forecast.HorizonMonths)
	if err != nil {
		return model.Report{}, fmt.Errorf("forecasting revenue: %w", err)
	}

	alloc := model.Allocation{
		Budget:         budget,
		Campaigns:      make([]model.CampaignSpend, len(cfg.Campaigns)),
		CombinedReturn: combined,
	}
	for i, c := range cfg.Campaigns {
		alloc.Campaigns[i] = model.CampaignSpend{
			Name:   c.Name,
			Spend:  spends[i],
			Return: curves[i].Return(spends[i]),
		}
	}

	return model.Report{
		Allocation:       alloc,
		Test:             test,
		ForecastCampaign: cfg.Campaigns[0].Name,
		ForecastMonths:   cfg.Forecast.HorizonMonths,
		ForecastRevenue:  revenue,
	}, nil
}
