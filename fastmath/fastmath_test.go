package fastmath

import (
	"math"
	"testing"
)

func TestLog2Pow2RoundTrip(t *testing.T) {
	for _, x := range []float64{0.001, 0.5, 1, 2, 100, 65536} {
		got := Pow2(Log2(x))
		if math.Abs(got-x)/x > 1e-9 {
			t.Errorf("Pow2(Log2(%v)) = %v, want ~%v", x, got, x)
		}
	}
}

func TestLog2NonPositiveSaturates(t *testing.T) {
	if Log2(0) != -math.MaxFloat64 {
		t.Errorf("Log2(0) = %v, want -MaxFloat64", Log2(0))
	}
	if Log2(-1) != -math.MaxFloat64 {
		t.Errorf("Log2(-1) = %v, want -MaxFloat64", Log2(-1))
	}
}

func TestExpMatchesMathExp(t *testing.T) {
	for _, x := range []float64{-4, -1, 0, 0.5, 2, 10} {
		got := Exp(x)
		want := math.Exp(x)
		if math.Abs(got-want)/want > 1e-9 {
			t.Errorf("Exp(%v) = %v, want ~%v", x, got, want)
		}
	}
}

func TestLinToDbAndBack(t *testing.T) {
	got := DbToLin(LinToDb(2.0))
	if math.Abs(got-2.0) > 1e-9 {
		t.Errorf("DbToLin(LinToDb(2.0)) = %v, want ~2.0", got)
	}
}

func TestSinCos64(t *testing.T) {
	if math.Abs(Sin64(0)) > 1e-12 {
		t.Errorf("Sin64(0) = %v, want 0", Sin64(0))
	}
	if math.Abs(Sin64(32)-1) > 1e-12 {
		t.Errorf("Sin64(32) = %v, want 1", Sin64(32))
	}
	if math.Abs(Cos64(0)-1) > 1e-12 {
		t.Errorf("Cos64(0) = %v, want 1", Cos64(0))
	}
}
