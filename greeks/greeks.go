package greeks

import "math"

// Greeks evaluates the premium and the full greek set in one pass,
// sharing d1/d2 across the formulas.
func Greeks(p OptionParams) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	if p.expired() {
		return Result{
			Price: ValueAtExpiry(p.S, p.K, p.Type),
			Delta: expiryDelta(p),
		}, nil
	}

	d1 := D1(p)
	d2 := d1 - p.Sigma*math.Sqrt(p.T)
	sqrtT := math.Sqrt(p.T)
	df := math.Exp(-p.R * p.T)
	dq := math.Exp(-p.Q * p.T)
	pdf := NormPDF(d1)

	res := Result{
		Gamma: dq * pdf / (p.S * p.Sigma * sqrtT),
		Vega:  p.S * dq * pdf * sqrtT,
	}
	decay := -(p.S * dq * pdf * p.Sigma) / (2 * sqrtT)
	if p.Type == Call {
		res.Price = p.S*dq*NormCDF(d1) - p.K*df*NormCDF(d2)
		res.Delta = dq * NormCDF(d1)
		res.Theta = decay - p.R*p.K*df*NormCDF(d2) + p.Q*p.S*dq*NormCDF(d1)
		res.Rho = p.K * p.T * df * NormCDF(d2)
	} else {
		res.Price = p.K*df*NormCDF(-d2) - p.S*dq*NormCDF(-d1)
		res.Delta = dq * (NormCDF(d1) - 1)
		res.Theta = decay + p.R*p.K*df*NormCDF(-d2) - p.Q*p.S*dq*NormCDF(-d1)
		res.Rho = -p.K * p.T * df * NormCDF(-d2)
	}
	return res, nil
}
