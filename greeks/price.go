package greeks

import "math"

// Price returns the Black-Scholes-Merton premium of a European option.
// At T = 0 or Sigma = 0 the premium degenerates to the intrinsic value
// so d1/d2 are never evaluated with a zero denominator.
func Price(p OptionParams) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return price(p), nil
}

// price assumes p has been validated.
func price(p OptionParams) float64 {
	if p.expired() {
		return ValueAtExpiry(p.S, p.K, p.Type)
	}

	d1 := D1(p)
	d2 := d1 - p.Sigma*math.Sqrt(p.T)
	df := math.Exp(-p.R * p.T)
	dq := math.Exp(-p.Q * p.T)

	if p.Type == Call {
		return p.S*dq*NormCDF(d1) - p.K*df*NormCDF(d2)
	}
	return p.K*df*NormCDF(-d2) - p.S*dq*NormCDF(-d1)
}

// ValueAtExpiry returns the intrinsic value of an option at its expiry
// date, independent of rates, yield and volatility.
func ValueAtExpiry(spot, strike float64, typ OptionType) float64 {
	if typ == Call {
		return math.Max(0, spot-strike)
	}
	return math.Max(0, strike-spot)
}
