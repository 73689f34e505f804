package greeks

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestNormCDF(t *testing.T) {
	cases := []struct {
		x    float64
		want float64
	}{
		{0, 0.5},
		{1, 0.8413447460685429},
		{-1, 0.15865525393145707},
		{1.959963984540054, 0.975},
		{-1.959963984540054, 0.025},
		{3, 0.9986501019683699},
	}
	for _, c := range cases {
		if got := NormCDF(c.x); !scalar.EqualWithinAbs(got, c.want, 1e-9) {
			t.Errorf("NormCDF(%v) = %v, want %v", c.x, got, c.want)
		}
	}

	if got := NormCDF(10); !scalar.EqualWithinAbs(got, 1, 1e-9) {
		t.Errorf("NormCDF(10) = %v, want 1", got)
	}
	if got := NormCDF(-10); got < 0 || got > 1e-20 {
		t.Errorf("NormCDF(-10) = %v, want a vanishing probability", got)
	}
}

func TestNormPDF(t *testing.T) {
	if got := NormPDF(0); !scalar.EqualWithinAbs(got, 0.3989422804014327, 1e-12) {
		t.Errorf("NormPDF(0) = %v, want 1/sqrt(2*pi)", got)
	}
	if got, want := NormPDF(1.5), NormPDF(-1.5); got != want {
		t.Errorf("NormPDF is not symmetric: f(1.5) = %v, f(-1.5) = %v", got, want)
	}
}

func TestNormNonFinite(t *testing.T) {
	if got := NormCDF(math.NaN()); !math.IsNaN(got) {
		t.Errorf("NormCDF(NaN) = %v, want NaN", got)
	}
	if got := NormPDF(math.NaN()); !math.IsNaN(got) {
		t.Errorf("NormPDF(NaN) = %v, want NaN", got)
	}
	if got := NormCDF(math.Inf(1)); got != 1 {
		t.Errorf("NormCDF(+Inf) = %v, want 1", got)
	}
	if got := NormCDF(math.Inf(-1)); got != 0 {
		t.Errorf("NormCDF(-Inf) = %v, want 0", got)
	}
}
