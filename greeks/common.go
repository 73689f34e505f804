package greeks

import "math"

// D1 returns the d1 term of the Black-Scholes-Merton model. The caller
// must ensure T > 0 and Sigma > 0; the exported operations special-case
// the degenerate boundary before reaching here.
func D1(p OptionParams) float64 {
	return (math.Log(p.S/p.K) + (p.R-p.Q+0.5*p.Sigma*p.Sigma)*p.T) / (p.Sigma * math.Sqrt(p.T))
}

// D2 returns the d2 term, d1 - sigma*sqrt(T).
func D2(p OptionParams) float64 {
	return D1(p) - p.Sigma*math.Sqrt(p.T)
}
