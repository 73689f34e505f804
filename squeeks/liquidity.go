package squeeks

import (
	"fmt"
	"math"
)

// LiquidityParams describes a concentrated liquidity position: virtual
// liquidity deployed between two prices of a constant-product pool,
// valued in the quote token. Below Lower the position is entirely the
// risk asset and its value is linear in price; above Upper it is
// entirely the quote asset and its value is flat.
type LiquidityParams struct {
	Lower     float64 // bottom of the active range
	Upper     float64 // top of the active range
	Price     float64 // current pool price
	Liquidity float64 // virtual liquidity L
}

// NewLiquidityParams validates the inputs and returns an immutable
// parameter record.
func NewLiquidityParams(lower, upper, price, liquidity float64) (LiquidityParams, error) {
	p := LiquidityParams{Lower: lower, Upper: upper, Price: price, Liquidity: liquidity}
	if err := p.Validate(); err != nil {
		return LiquidityParams{}, err
	}
	return p, nil
}

// Validate checks the domain constraints on the parameter record.
func (p LiquidityParams) Validate() error {
	switch {
	case p.Lower <= 0:
		return fmt.Errorf("%w: lower bound must be positive, got %v", ErrInvalidParameter, p.Lower)
	case p.Upper <= p.Lower:
		return fmt.Errorf("%w: upper bound must exceed lower bound, got [%v, %v]", ErrInvalidParameter, p.Lower, p.Upper)
	case p.Price <= 0:
		return fmt.Errorf("%w: pool price must be positive, got %v", ErrInvalidParameter, p.Price)
	case p.Liquidity <= 0:
		return fmt.Errorf("%w: liquidity must be positive, got %v", ErrInvalidParameter, p.Liquidity)
	}
	return nil
}

// VirtualLiquidity solves the bounded liquidity position equation for L
// given the price range and the pool reserves. reserveA multiplies
// sqrt(lower) and reserveB divides sqrt(upper) in the quadratic; pass
// the token amounts accordingly for the quote convention in use.
func VirtualLiquidity(lower, upper, reserveA, reserveB float64) (float64, error) {
	switch {
	case lower <= 0 || upper <= lower:
		return 0, fmt.Errorf("%w: price range must satisfy 0 < lower < upper, got [%v, %v]", ErrInvalidParameter, lower, upper)
	case reserveA < 0 || reserveB < 0:
		return 0, fmt.Errorf("%w: reserves must be non-negative, got %v and %v", ErrInvalidParameter, reserveA, reserveB)
	}

	// quadratic terms for L
	a := math.Sqrt(lower/upper) - 1
	b := reserveB/math.Sqrt(upper) + reserveA*math.Sqrt(lower)
	c := reserveA * reserveB

	// lower < upper makes a negative and the discriminant positive
	d := b*b - 4*a*c

	s1 := (-b - math.Sqrt(d)) / (2 * a)
	if s1 > 0 {
		return s1, nil
	}
	return (-b + math.Sqrt(d)) / (2 * a), nil
}

// Value implements Payoff: the position value in quote-token terms at an
// arbitrary pool price. The curve is piecewise: linear below the range,
// curved inside, flat above. It does not depend on time or volatility.
func (p LiquidityParams) Value(price, _, _ float64) float64 {
	sa := math.Sqrt(p.Lower)
	sb := math.Sqrt(p.Upper)
	switch {
	case price <= p.Lower:
		return p.Liquidity * (1/sa - 1/sb) * price
	case price >= p.Upper:
		return p.Liquidity * (sb - sa)
	}
	sp := math.Sqrt(price)
	return p.Liquidity * (2*sp - price/sb - sa)
}

// Mark is the position value at the record's own pool price.
func (p LiquidityParams) Mark() float64 {
	return p.Value(p.Price, 0, 0)
}

// Delta is the first derivative of the value with respect to the pool
// price: L * (1/sqrt(p) - 1/sqrt(upper)) inside the range, the constant
// risk-asset holding below it, and 0 above it.
func (p LiquidityParams) Delta() float64 {
	switch {
	case p.Price <= p.Lower:
		return p.Liquidity * (1/math.Sqrt(p.Lower) - 1/math.Sqrt(p.Upper))
	case p.Price >= p.Upper:
		return 0
	}
	return p.Liquidity * (1/math.Sqrt(p.Price) - 1/math.Sqrt(p.Upper))
}

// Gamma is the second derivative of the value with respect to the pool
// price: -L/2 * p^(-3/2) inside the range and 0 outside it. The value
// curve is concave, so gamma is never positive.
func (p LiquidityParams) Gamma() float64 {
	if p.Price <= p.Lower || p.Price >= p.Upper {
		return 0
	}
	return -0.5 * p.Liquidity * math.Pow(p.Price, -1.5)
}

// Theta is zero: the position value does not depend on time.
func (p LiquidityParams) Theta() float64 {
	return 0
}

// Vega is zero: the position value does not depend on volatility.
func (p LiquidityParams) Vega() float64 {
	return 0
}
