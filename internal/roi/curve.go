// Package roi models campaign response curves: projected return as a
// saturating exponential function of advertising spend.
package roi

import "math"

// Curve holds the response parameters for one campaign.
// Return grows toward Scale as spend increases; Rate controls how
// quickly additional spend saturates.
type Curve struct {
	Scale float64
	Rate  float64
}

// Return computes the projected return for a given spend.
// Monotonically increasing and concave for spend >= 0.
func (c Curve) Return(spend float64) float64 {
	return c.Scale * (1 - math.Exp(-c.Rate*spend))
}

// Marginal computes the instantaneous marginal return d(Return)/d(spend).
// Strictly decreasing, which keeps the summed allocation objective concave.
func (c Curve) Marginal(spend float64) float64 {
	return c.Scale * c.Rate * math.Exp(-c.Rate*spend)
}
