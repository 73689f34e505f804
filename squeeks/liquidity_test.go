package squeeks

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// Reference position: an ETH/USDC-style range [3747, 5024] with the pool
// at 4360.61 and reserves of 1.448 risk-asset and 6779 quote-asset units.
const (
	refLower = 3747.0
	refUpper = 5024.0
	refPrice = 4360.61
)

func refPosition(t *testing.T) LiquidityParams {
	t.Helper()
	l, err := VirtualLiquidity(refLower, refUpper, 1.448, 6779)
	if err != nil {
		t.Fatalf("VirtualLiquidity: %v", err)
	}
	p, err := NewLiquidityParams(refLower, refUpper, refPrice, l)
	if err != nil {
		t.Fatalf("NewLiquidityParams: %v", err)
	}
	return p
}

func TestVirtualLiquidity(t *testing.T) {
	l, err := VirtualLiquidity(refLower, refUpper, 1.448, 6779)
	if err != nil {
		t.Fatalf("VirtualLiquidity: %v", err)
	}
	if !scalar.EqualWithinAbs(l, 1402.4046, 0.1) {
		t.Errorf("virtual liquidity = %v, want 1402.4046", l)
	}
}

func TestLiquidityDeltaGammaInRange(t *testing.T) {
	p := refPosition(t)

	if got := p.Delta(); !scalar.EqualWithinAbs(got, 1.45175, 1e-2) {
		t.Errorf("delta = %v, want 1.45175", got)
	}

	gamma := p.Gamma()
	if gamma >= 0 {
		t.Fatalf("gamma = %v, want negative curvature inside the range", gamma)
	}
	if !scalar.EqualWithinAbs(math.Abs(gamma), 0.00243513, 1e-5) {
		t.Errorf("|gamma| = %v, want 0.00243513", math.Abs(gamma))
	}
}

func TestLiquidityOutsideRange(t *testing.T) {
	p := refPosition(t)

	below := p
	below.Price = refLower - 500
	holding := p.Liquidity * (1/math.Sqrt(refLower) - 1/math.Sqrt(refUpper))
	if got := below.Delta(); got != holding {
		t.Errorf("delta below range = %v, want constant holding %v", got, holding)
	}
	if got := below.Gamma(); got != 0 {
		t.Errorf("gamma below range = %v, want 0", got)
	}

	above := p
	above.Price = refUpper + 500
	if got := above.Delta(); got != 0 {
		t.Errorf("delta above range = %v, want 0", got)
	}
	if got := above.Gamma(); got != 0 {
		t.Errorf("gamma above range = %v, want 0", got)
	}
	// Above the range the position is all quote asset and its value is flat.
	if got, want := above.Mark(), p.Liquidity*(math.Sqrt(refUpper)-math.Sqrt(refLower)); got != want {
		t.Errorf("value above range = %v, want %v", got, want)
	}
}

func TestLiquidityValueContinuity(t *testing.T) {
	p := refPosition(t)

	for _, boundary := range []float64{refLower, refUpper} {
		in := p.Value(boundary*(1+1e-9), 0, 0)
		out := p.Value(boundary*(1-1e-9), 0, 0)
		if !scalar.EqualWithinAbsOrRel(in, out, 1e-6, 1e-8) {
			t.Errorf("value curve discontinuous at %v: %v vs %v", boundary, in, out)
		}
	}
}

func TestLiquidityNumericalAgreement(t *testing.T) {
	p := refPosition(t)

	delta := NumericalDelta(p, p.Price, 0, 0)
	if !scalar.EqualWithinAbsOrRel(delta, p.Delta(), 1e-8, 1e-6) {
		t.Errorf("numerical delta %v, analytic %v", delta, p.Delta())
	}

	gamma := NumericalGamma(p, p.Price, 0, 0)
	if !scalar.EqualWithinAbsOrRel(gamma, p.Gamma(), 1e-6, 1e-4) {
		t.Errorf("numerical gamma %v, analytic %v", gamma, p.Gamma())
	}
}

func TestLiquidityHasNoThetaOrVega(t *testing.T) {
	p := refPosition(t)

	if got := p.Theta(); got != 0 {
		t.Errorf("theta = %v, want 0", got)
	}
	if got := p.Vega(); got != 0 {
		t.Errorf("vega = %v, want 0", got)
	}
	if got := NumericalTheta(p, p.Price, 1, 0.5); got != 0 {
		t.Errorf("numerical theta = %v, want 0", got)
	}
	if got := NumericalVega(p, p.Price, 1, 0.5); got != 0 {
		t.Errorf("numerical vega = %v, want 0", got)
	}
}

func TestLiquidityValidation(t *testing.T) {
	cases := []struct {
		name                           string
		lower, upper, price, liquidity float64
	}{
		{"zero lower", 0, 5024, 4360, 1402},
		{"inverted range", 5024, 3747, 4360, 1402},
		{"zero price", 3747, 5024, 0, 1402},
		{"zero liquidity", 3747, 5024, 4360, 0},
	}
	for _, c := range cases {
		if _, err := NewLiquidityParams(c.lower, c.upper, c.price, c.liquidity); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%s: error = %v, want ErrInvalidParameter", c.name, err)
		}
	}

	if _, err := VirtualLiquidity(5024, 3747, 1, 1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("inverted range: error = %v, want ErrInvalidParameter", err)
	}
	if _, err := VirtualLiquidity(3747, 5024, -1, 1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("negative reserve: error = %v, want ErrInvalidParameter", err)
	}
}
