// Package stats implements the two-sample significance test applied to
// historical campaign performance series.
package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"adspend/internal/model"
)

// ErrInsufficientData is returned when a sample is too small for a
// variance estimate.
var ErrInsufficientData = errors.New("each sample needs at least 2 observations")

// ErrZeroVariance is returned when both samples are constant, leaving
// the t statistic undefined.
var ErrZeroVariance = errors.New("both samples have zero variance")

// Welch runs an independent two-sample, two-sided t-test with unequal
// variances (Welch's formulation). Welch's is used rather than the
// pooled Student's test because the two campaigns are not assumed to
// share a variance; for equal sample sizes the t statistic matches the
// pooled form anyway.
//
// A positive t statistic means sample a has the higher mean. The test
// itself is symmetric: Welch(a, b) and Welch(b, a) differ only in the
// sign of the statistic.
func Welch(a, b []float64) (model.TestResult, error) {
	if len(a) < 2 || len(b) < 2 {
		return model.TestResult{}, fmt.Errorf("%w: got %d and %d", ErrInsufficientData, len(a), len(b))
	}

	meanA, varA := stat.MeanVariance(a, nil)
	meanB, varB := stat.MeanVariance(b, nil)

	na := float64(len(a))
	nb := float64(len(b))
	sa := varA / na
	sb := varB / nb

	se := math.Sqrt(sa + sb)
	if se == 0 {
		return model.TestResult{}, ErrZeroVariance
	}

	t := (meanA - meanB) / se

	// Welch-Satterthwaite degrees of freedom.
	nu := (sa + sb) * (sa + sb) / (sa*sa/(na-1) + sb*sb/(nb-1))

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: nu}
	p := 2 * dist.CDF(-math.Abs(t))

	return model.TestResult{TStat: t, PValue: p}, nil
}
