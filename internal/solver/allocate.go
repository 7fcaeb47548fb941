// Package solver allocates a fixed budget across campaign response curves.
//
// The objective sum_i Return_i(x_i) is concave and the feasible set
// {x_i >= 0, sum x_i = budget} is convex, so the KKT conditions are both
// necessary and sufficient: every campaign receiving spend has the same
// marginal return lambda, and campaigns held at zero have marginal return
// at most lambda. Total spend is monotone decreasing in lambda, so the
// multiplier is found by bisection and the unique global optimum follows.
package solver

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"adspend/internal/roi"
)

const (
	maxIterations = 200

	// SumTol is the relative tolerance on the budget equality constraint.
	SumTol = 1e-9
)

// ErrNotConverged is returned when the multiplier search exhausts its
// iteration cap without meeting the equality constraint. It is distinct
// from input validation failures: a degenerate allocation is never
// returned silently.
var ErrNotConverged = errors.New("allocation solver did not converge")

// Allocate splits budget across the given curves to maximize combined
// projected return. It returns the per-curve spends (same order as
// curves) and the combined return at those spends.
func Allocate(curves []roi.Curve, budget float64) ([]float64, float64, error) {
	if len(curves) == 0 {
		return nil, 0, errors.New("no campaigns to allocate across")
	}
	if math.IsNaN(budget) || math.IsInf(budget, 0) || budget <= 0 {
		return nil, 0, fmt.Errorf("budget must be a positive finite number, got %v", budget)
	}

	// Bracket the multiplier. At hi (the largest marginal return at zero
	// spend) every campaign gets nothing; at lo (the smallest marginal
	// return at full budget) every campaign would take the whole budget.
	hi := 0.0
	lo := math.Inf(1)
	for _, c := range curves {
		if m := c.Marginal(0); m > hi {
			hi = m
		}
		if m := c.Marginal(budget); m < lo {
			lo = m
		}
	}

	var spends []float64
	for iter := 0; iter < maxIterations; iter++ {
		lambda := 0.5 * (lo + hi)
		spends = spendsAt(curves, lambda, budget)

		total := floats.Sum(spends)
		if math.Abs(total-budget) <= SumTol*budget {
			combined := 0.0
			for i, c := range curves {
				combined += c.Return(spends[i])
			}
			return spends, combined, nil
		}

		if total > budget {
			lo = lambda
		} else {
			hi = lambda
		}
	}

	residual := floats.Sum(spends) - budget
	return nil, 0, fmt.Errorf("%w: residual %.3g after %d iterations", ErrNotConverged, residual, maxIterations)
}

// spendsAt computes each campaign's spend for a given marginal-return
// multiplier, clamped to [0, budget].
func spendsAt(curves []roi.Curve, lambda, budget float64) []float64 {
	spends := make([]float64, len(curves))
	for i, c := range curves {
		m0 := c.Marginal(0)
		if lambda >= m0 {
			continue
		}
		x := math.Log(m0/lambda) / c.Rate
		if x > budget {
			x = budget
		}
		spends[i] = x
	}
	return spends
}
