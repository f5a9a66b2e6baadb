package adstock

import (
	"errors"
	"math"
	"testing"
)

func TestWeibullPDFRange(t *testing.T) {
	wb, err := NewWeibull(WeibullPDF, Options{LMax: 12, Normalize: false, Mode: ConvAfter})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w, err := wb.Weights(Params{"lam": 4, "k": 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hasOne, hasZero := false, false
	for i, v := range w {
		if v < 0 || v > 1 {
			t.Errorf("w[%d]=%f outside [0, 1]", i, v)
		}
		if v == 1 {
			hasOne = true
		}
		if v == 0 {
			hasZero = true
		}
	}
	if !hasOne || !hasZero {
		t.Errorf("expected min-max scaled weights to reach 0 and 1, got %v", w)
	}
}

func TestWeibullPDFDelayedPeak(t *testing.T) {
	wb, _ := NewWeibull(WeibullPDF, Options{LMax: 12, Normalize: false, Mode: ConvAfter})

	// Shape > 1 puts the density peak after the first lag.
	w, err := wb.Weights(Params{"lam": 6, "k": 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	peak := 0
	for i, v := range w {
		if v > w[peak] {
			peak = i
		}
	}
	if peak == 0 {
		t.Error("expected a delayed peak for k > 1")
	}
}

func TestWeibullCDFRetention(t *testing.T) {
	wb, err := NewWeibull(WeibullCDF, Options{LMax: 10, Normalize: false, Mode: ConvAfter})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w, err := wb.Weights(Params{"lam": 5, "k": 1.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w[0] != 1 {
		t.Errorf("expected full effect in the exposure period, got %f", w[0])
	}
	for i := 1; i < len(w); i++ {
		if w[i] > w[i-1] {
			t.Errorf("expected non-increasing retention, got w[%d]=%f > w[%d]=%f", i, w[i], i-1, w[i-1])
		}
		if w[i] < 0 {
			t.Errorf("negative weight w[%d]=%f", i, w[i])
		}
	}
}

func TestWeibullCDFFirstStep(t *testing.T) {
	wb, _ := NewWeibull(WeibullCDF, Options{LMax: 4, Normalize: false, Mode: ConvAfter})

	lam, k := 3.0, 2.0
	w, err := wb.Weights(Params{"lam": lam, "k": k})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Second period keeps the survival fraction at lag 1.
	expected := math.Exp(-math.Pow(1/lam, k))
	if math.Abs(w[1]-expected) > 1e-12 {
		t.Errorf("expected w[1]=%f, got %f", expected, w[1])
	}
}

func TestWeibullBounds(t *testing.T) {
	wb, _ := NewWeibull(WeibullPDF, Options{LMax: 8, Normalize: true, Mode: ConvAfter})

	if _, err := wb.Weights(Params{"lam": 0, "k": 1}); !errors.Is(err, ErrParamBounds) {
		t.Errorf("expected ErrParamBounds for lam=0, got %v", err)
	}
	if _, err := wb.Weights(Params{"lam": 1, "k": -2}); !errors.Is(err, ErrParamBounds) {
		t.Errorf("expected ErrParamBounds for k<0, got %v", err)
	}
}

func TestWeibullUnknownKind(t *testing.T) {
	if _, err := NewWeibull("icdf", DefaultOptions()); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}
