package greeks

import "math"

// Gamma measures the rate of change of delta with respect to the
// underlying price. It is identical for calls and puts, never negative,
// and degenerates to 0 as sigma*sqrt(T) goes to 0.
func Gamma(p OptionParams) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return gamma(p), nil
}

func gamma(p OptionParams) float64 {
	if p.expired() {
		return 0
	}
	return math.Exp(-p.Q*p.T) * NormPDF(D1(p)) / (p.S * p.Sigma * math.Sqrt(p.T))
}
