package window

import (
	"math"
	"testing"
)

func TestGenerateHannEndpoints(t *testing.T) {
	w := Generate(TypeHann, 9)
	if len(w) != 9 {
		t.Fatalf("len = %d, want 9", len(w))
	}

	if w[0] != 0 || w[8] != 0 {
		t.Fatalf("endpoints = %v, %v, want 0", w[0], w[8])
	}

	if math.Abs(w[4]-1) > 1e-12 {
		t.Fatalf("center = %v, want 1", w[4])
	}
}

func TestGenerateSymmetry(t *testing.T) {
	for _, typ := range []Type{TypeHann, TypeHamming} {
		w := Generate(typ, 16)
		for i := range w {
			j := len(w) - 1 - i
			if math.Abs(w[i]-w[j]) > 1e-12 {
				t.Fatalf("type %d: asymmetric at %d: %v != %v", typ, i, w[i], w[j])
			}
		}
	}
}

func TestGenerateRectangular(t *testing.T) {
	for _, v := range Generate(TypeRectangular, 8) {
		if v != 1 {
			t.Fatalf("rectangular coefficient = %v, want 1", v)
		}
	}
}

func TestGenerateDefaultIsRectangular(t *testing.T) {
	for _, v := range Generate(TypeDefault, 8) {
		if v != 1 {
			t.Fatalf("default coefficient = %v, want 1", v)
		}
	}
}

func TestGenerateDegenerate(t *testing.T) {
	if Generate(TypeHann, 0) != nil {
		t.Fatal("expected nil for n=0")
	}

	w := Generate(TypeHann, 1)
	if len(w) != 1 || w[0] != 1 {
		t.Fatalf("n=1 window = %v, want [1]", w)
	}
}

func TestApply(t *testing.T) {
	samples := []float64{1, 2, 3}
	coeffs := []float64{0.5, 0.5, 0.5}
	out := make([]float64, 3)

	if err := Apply(out, samples, coeffs); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	want := []float64{0.5, 1, 1.5}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestApplyLengthMismatch(t *testing.T) {
	if err := Apply(make([]float64, 2), []float64{1, 2, 3}, []float64{1, 2, 3}); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}

	if err := ApplyInPlace([]float64{1, 2}, []float64{1}); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}
