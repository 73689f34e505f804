package greeks

import "gonum.org/v1/gonum/stat/distuv"

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// NormCDF is the cumulative distribution function of the standard normal
// distribution. Non-finite inputs propagate as NaN or the saturating
// limit rather than raising an error.
func NormCDF(x float64) float64 {
	return stdNormal.CDF(x)
}

// NormPDF is the probability density function of the standard normal
// distribution.
func NormPDF(x float64) float64 {
	return stdNormal.Prob(x)
}
