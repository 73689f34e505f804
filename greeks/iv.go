package greeks

import (
	"fmt"
	"math"
)

const (
	maxIterations = 100
	epsilon       = 1e-8

	sigmaFloor = 1e-4
	sigmaCeil  = 5.0
)

// ImpliedVolatility inverts Price for sigma: it returns the volatility
// at which the option priced with p (its Sigma field is ignored) equals
// the target premium. Newton steps use the analytic vega; whenever a
// step leaves the current bracket the search falls back to bisection,
// so the premium being monotone in sigma keeps the bracket valid.
func ImpliedVolatility(p OptionParams, target float64) (float64, error) {
	p.Sigma = 1 // placeholder so Validate checks the remaining fields
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if target <= 0 {
		return 0, fmt.Errorf("%w: target premium must be positive, got %v", ErrInvalidParameter, target)
	}
	if p.T == 0 {
		return 0, fmt.Errorf("%w: cannot invert an expired option", ErrInvalidParameter)
	}

	lo, hi := sigmaFloor, sigmaCeil
	sigma := 0.5
	for i := 0; i < maxIterations; i++ {
		p.Sigma = sigma
		diff := price(p) - target
		if math.Abs(diff) < epsilon {
			return sigma, nil
		}
		if diff > 0 {
			hi = sigma
		} else {
			lo = sigma
		}

		next := sigma - diff/vega(p)
		if math.IsNaN(next) || next <= lo || next >= hi {
			next = 0.5 * (lo + hi)
		}
		sigma = next
	}
	return 0, ErrNoConvergence
}
