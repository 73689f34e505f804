package greeks

import (
	"fmt"
	"math"
)

// Delta measures the rate of change of the premium with respect to the
// underlying price. At the degenerate boundary it is the slope of the
// payoff: 1 (call) or -1 (put) in the money, 0 otherwise.
func Delta(p OptionParams) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return delta(p), nil
}

func delta(p OptionParams) float64 {
	if p.expired() {
		return expiryDelta(p)
	}
	dq := math.Exp(-p.Q * p.T)
	if p.Type == Call {
		return dq * NormCDF(D1(p))
	}
	return dq * (NormCDF(D1(p)) - 1)
}

func expiryDelta(p OptionParams) float64 {
	switch {
	case p.Type == Call && p.S > p.K:
		return 1
	case p.Type == Put && p.S < p.K:
		return -1
	}
	return 0
}

// Vega measures the sensitivity of the premium to volatility, per unit
// change of sigma. It is identical for calls and puts and degenerates to
// 0 as sigma*sqrt(T) goes to 0.
func Vega(p OptionParams) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return vega(p), nil
}

func vega(p OptionParams) float64 {
	if p.expired() {
		return 0
	}
	return p.S * math.Exp(-p.Q*p.T) * NormPDF(D1(p)) * math.Sqrt(p.T)
}

// Theta measures the sensitivity of the premium to the passage of time,
// per year. Divide by the day count convention for a per-day figure.
func Theta(p OptionParams) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return theta(p), nil
}

func theta(p OptionParams) float64 {
	if p.expired() {
		return 0
	}

	d1 := D1(p)
	d2 := d1 - p.Sigma*math.Sqrt(p.T)
	df := math.Exp(-p.R * p.T)
	dq := math.Exp(-p.Q * p.T)
	decay := -(p.S * dq * NormPDF(d1) * p.Sigma) / (2 * math.Sqrt(p.T))

	if p.Type == Call {
		return decay - p.R*p.K*df*NormCDF(d2) + p.Q*p.S*dq*NormCDF(d1)
	}
	return decay + p.R*p.K*df*NormCDF(-d2) - p.Q*p.S*dq*NormCDF(-d1)
}

// Rho measures the sensitivity of the premium to the risk-free rate,
// per unit change of r.
func Rho(p OptionParams) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return rho(p), nil
}

func rho(p OptionParams) float64 {
	if p.expired() {
		return 0
	}
	df := math.Exp(-p.R * p.T)
	if p.Type == Call {
		return p.K * p.T * df * NormCDF(D2(p))
	}
	return -p.K * p.T * df * NormCDF(-D2(p))
}

// Lambda, also known as omega, is the percentage change of the premium
// per percentage change of the underlying: delta * S / premium. It fails
// with ErrZeroPrice when the premium is zero.
func Lambda(p OptionParams) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	v := price(p)
	if v == 0 {
		return 0, fmt.Errorf("%w: lambda is undefined", ErrZeroPrice)
	}
	return delta(p) * p.S / v, nil
}
