// Package squeeks computes greeks for power perpetuals and concentrated
// liquidity positions. Each instrument exposes its value curve through
// the Payoff interface; sensitivities are available both as closed forms
// on the parameter types and as finite-difference derivatives of the
// curve itself.
package squeeks

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

// ErrInvalidParameter is returned when an instrument parameter violates
// its domain constraint.
var ErrInvalidParameter = errors.New("invalid parameter")

// Payoff is the value curve of an instrument: the position value for a
// given underlying price, elapsed time in years and volatility.
type Payoff interface {
	Value(price, t, sigma float64) float64
}

// derivSettings scales the formula's default step with the evaluation
// point, keeping central differences accurate at prices in the
// thousands where an absolute step would vanish into rounding noise.
func derivSettings(formula fd.Formula, x float64) *fd.Settings {
	return &fd.Settings{
		Formula: formula,
		Step:    formula.Step * math.Max(1, math.Abs(x)),
	}
}

// NumericalDelta is the central-difference first derivative of the
// payoff with respect to the underlying price.
func NumericalDelta(pf Payoff, price, t, sigma float64) float64 {
	f := func(s float64) float64 { return pf.Value(s, t, sigma) }
	return fd.Derivative(f, price, derivSettings(fd.Central, price))
}

// NumericalGamma is the central-difference second derivative of the
// payoff with respect to the underlying price.
func NumericalGamma(pf Payoff, price, t, sigma float64) float64 {
	f := func(s float64) float64 { return pf.Value(s, t, sigma) }
	return fd.Derivative(f, price, derivSettings(fd.Central2nd, price))
}

// NumericalTheta is the negated central-difference derivative of the
// payoff with respect to time.
func NumericalTheta(pf Payoff, price, t, sigma float64) float64 {
	f := func(tt float64) float64 { return pf.Value(price, tt, sigma) }
	return -fd.Derivative(f, t, derivSettings(fd.Central, t))
}

// NumericalVega is the central-difference derivative of the payoff with
// respect to volatility.
func NumericalVega(pf Payoff, price, t, sigma float64) float64 {
	f := func(v float64) float64 { return pf.Value(price, t, v) }
	return fd.Derivative(f, sigma, derivSettings(fd.Central, sigma))
}
