package greeks

import (
	"errors"
	"fmt"
)

// OptionType selects between the two sides of a vanilla European option.
type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

var (
	// ErrInvalidParameter is returned when a parameter violates its
	// domain constraint (non-positive price or strike, negative time or
	// volatility, unknown option type).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrZeroPrice is returned by Lambda when the computed premium is
	// zero and the elasticity is undefined.
	ErrZeroPrice = errors.New("option premium is zero")

	// ErrNoConvergence is returned by ImpliedVolatility when the search
	// fails to reach the target premium.
	ErrNoConvergence = errors.New("implied volatility did not converge")
)

// OptionParams holds the market inputs for a European option. T is
// expressed in years; R, Q and Sigma are continuously compounded decimal
// rates per year. No unit conversion happens inside the library.
type OptionParams struct {
	S     float64    // underlying price
	K     float64    // strike price
	T     float64    // time to expiry in years
	R     float64    // risk-free interest rate
	Q     float64    // dividend yield
	Sigma float64    // volatility
	Type  OptionType // call or put
}

// NewOptionParams validates the inputs and returns an immutable
// parameter record. Non-finite inputs pass validation and propagate
// through the formulas as NaN, matching floating-point semantics.
func NewOptionParams(s, k, t, r, q, sigma float64, typ OptionType) (OptionParams, error) {
	p := OptionParams{S: s, K: k, T: t, R: r, Q: q, Sigma: sigma, Type: typ}
	if err := p.Validate(); err != nil {
		return OptionParams{}, err
	}
	return p, nil
}

// Validate checks the domain constraints on the parameter record.
func (p OptionParams) Validate() error {
	switch {
	case p.S <= 0:
		return fmt.Errorf("%w: underlying price must be positive, got %v", ErrInvalidParameter, p.S)
	case p.K <= 0:
		return fmt.Errorf("%w: strike must be positive, got %v", ErrInvalidParameter, p.K)
	case p.T < 0:
		return fmt.Errorf("%w: time to expiry must be non-negative, got %v", ErrInvalidParameter, p.T)
	case p.Sigma < 0:
		return fmt.Errorf("%w: volatility must be non-negative, got %v", ErrInvalidParameter, p.Sigma)
	}
	if p.Type != Call && p.Type != Put {
		return fmt.Errorf("%w: option type must be %q or %q, got %q", ErrInvalidParameter, Call, Put, p.Type)
	}
	return nil
}

// expired reports whether the parameters sit on the degenerate boundary
// where d1/d2 are undefined and the option is worth its intrinsic value.
func (p OptionParams) expired() bool {
	return p.T == 0 || p.Sigma == 0
}

// Result bundles the premium and the full greek set from a single
// evaluation. Lambda is excluded because it is undefined at zero
// premium; use the Lambda function directly.
type Result struct {
	Price float64
	Delta float64
	Gamma float64
	Vega  float64
	Theta float64
	Rho   float64
}
