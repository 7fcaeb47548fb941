// Package sample generates the synthetic historical performance series
// the significance test runs on.
package sample

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"adspend/internal/config"
)

// ErrEmptySample is returned when a requested sample count leaves the
// significance test undefined.
var ErrEmptySample = errors.New("sample count must be positive")

// Series draws n daily return-rate observations from Normal(mean, stddev)
// using src. The source is caller-provided so sampling never touches
// shared generator state.
func Series(mean, stddev float64, n int, src rand.Source) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrEmptySample, n)
	}

	dist := distuv.Normal{Mu: mean, Sigma: stddev, Src: src}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out, nil
}

// Generate produces one performance series per campaign, drawn in
// campaign order from a single freshly seeded source. Identical seed,
// count, and campaign list always reproduce identical series.
func Generate(campaigns []config.CampaignConfig, count int, seed uint64) ([][]float64, error) {
	src := rand.NewSource(seed)

	out := make([][]float64, len(campaigns))
	for i, c := range campaigns {
		s, err := Series(c.MeanDailyReturn, c.ReturnStdDev, count, src)
		if err != nil {
			return nil, fmt.Errorf("campaign %s: %w", c.Name, err)
		}
		out[i] = s
	}
	return out, nil
}
