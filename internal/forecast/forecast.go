// Package forecast projects cumulative campaign revenue over a fixed
// horizon by integrating the response model over continuous time.
package forecast

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"adspend/internal/roi"
)

// ErrNegativeSpend is returned when a forecast is requested for a spend
// outside the response curve's intended domain.
var ErrNegativeSpend = errors.New("forecast spend must be non-negative")

// quadNodes is plenty for an integrand with no time dependence yet.
const quadNodes = 8

// Cumulative projects total revenue over months periods, with spend
// split evenly per period. Revenue accrues as a continuous-time process
// at a constant per-period rate, so today the integral reduces to
// months * Return(spend/months); the quadrature keeps the accrual model
// explicit for when the rate becomes time-dependent (growth, decay,
// reinvestment).
func Cumulative(curve roi.Curve, spend float64, months int) (float64, error) {
	if months <= 0 {
		return 0, fmt.Errorf("forecast horizon must be positive, got %d", months)
	}
	if math.IsNaN(spend) || spend < 0 {
		return 0, fmt.Errorf("%w, got %v", ErrNegativeSpend, spend)
	}

	perPeriod := spend / float64(months)
	rate := func(_ float64) float64 {
		return curve.Return(perPeriod)
	}

	return quad.Fixed(rate, 0, float64(months), quadNodes, nil, 0), nil
}
