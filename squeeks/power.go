package squeeks

import (
	"fmt"
	"math"
)

// Squeeth constants from the Opyn implementation.
const (
	SqueethPower         = 2.0
	SqueethFundingPeriod = 17.5 / 365.0
	SqueethScaleFactor   = 10000.0
)

// PowerPerpParams describes a power perpetual: a position whose payoff
// is proportional to the underlying price raised to Power, carrying a
// funding premium exp(Power*(Power-1)/2 * IV^2 * FundingPeriod). At
// Power = 2 this is exactly Squeeth.
type PowerPerpParams struct {
	Price         float64 // underlying price in quote units
	Power         float64 // payoff exponent
	NormFactor    float64 // normalization factor of the perpetual
	IV            float64 // implied volatility
	FundingPeriod float64 // funding period in years
	ScaleFactor   float64 // payoff scaling divisor
}

// NewPowerPerp validates the inputs and returns an immutable parameter
// record.
func NewPowerPerp(price, power, normFactor, iv, fundingPeriod, scaleFactor float64) (PowerPerpParams, error) {
	p := PowerPerpParams{
		Price:         price,
		Power:         power,
		NormFactor:    normFactor,
		IV:            iv,
		FundingPeriod: fundingPeriod,
		ScaleFactor:   scaleFactor,
	}
	if err := p.Validate(); err != nil {
		return PowerPerpParams{}, err
	}
	return p, nil
}

// Squeeth returns the parameters of a Squeeth position: a power-2
// perpetual with Opyn's funding period and scaling.
func Squeeth(price, normFactor, iv float64) (PowerPerpParams, error) {
	return NewPowerPerp(price, SqueethPower, normFactor, iv, SqueethFundingPeriod, SqueethScaleFactor)
}

// Validate checks the domain constraints on the parameter record.
func (p PowerPerpParams) Validate() error {
	switch {
	case p.Price <= 0:
		return fmt.Errorf("%w: underlying price must be positive, got %v", ErrInvalidParameter, p.Price)
	case p.NormFactor <= 0:
		return fmt.Errorf("%w: normalization factor must be positive, got %v", ErrInvalidParameter, p.NormFactor)
	case p.IV < 0:
		return fmt.Errorf("%w: implied volatility must be non-negative, got %v", ErrInvalidParameter, p.IV)
	case p.FundingPeriod < 0:
		return fmt.Errorf("%w: funding period must be non-negative, got %v", ErrInvalidParameter, p.FundingPeriod)
	case p.ScaleFactor <= 0:
		return fmt.Errorf("%w: scale factor must be positive, got %v", ErrInvalidParameter, p.ScaleFactor)
	}
	return nil
}

// convexity is Power*(Power-1), the curvature coefficient shared by the
// funding premium and the second-order greeks.
func (p PowerPerpParams) convexity() float64 {
	return p.Power * (p.Power - 1)
}

// Value implements Payoff: the position value at an arbitrary underlying
// price and volatility. The perpetual has no expiry, so t is unused; the
// time decay instead flows through the normalization factor (see Theta).
func (p PowerPerpParams) Value(price, _, sigma float64) float64 {
	premium := math.Exp(0.5 * p.convexity() * sigma * sigma * p.FundingPeriod)
	return p.NormFactor * math.Pow(price, p.Power) * premium / p.ScaleFactor
}

// Mark is the position value at the record's own price and volatility.
func (p PowerPerpParams) Mark() float64 {
	return p.Value(p.Price, 0, p.IV)
}

// Delta is the first derivative of the value with respect to the
// underlying price: Power * Value / Price.
func (p PowerPerpParams) Delta() float64 {
	return p.Power * p.Mark() / p.Price
}

// Gamma is the second derivative of the value with respect to the
// underlying price: Power*(Power-1) * Value / Price^2.
func (p PowerPerpParams) Gamma() float64 {
	return p.convexity() * p.Mark() / (p.Price * p.Price)
}

// Theta is the funding drag on the position per year: the normalization
// factor decays at rate Power*(Power-1)/2 * IV^2, costing that fraction
// of the position value.
func (p PowerPerpParams) Theta() float64 {
	return 0.5 * p.convexity() * p.IV * p.IV * p.Mark()
}

// Vega is the derivative of the value with respect to volatility:
// Power*(Power-1) * IV * FundingPeriod * Value.
func (p PowerPerpParams) Vega() float64 {
	return p.convexity() * p.IV * p.FundingPeriod * p.Mark()
}
