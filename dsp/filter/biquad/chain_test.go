package biquad

import (
	"math"
	"testing"
)

func TestChainOrderAndSections(t *testing.T) {
	c := NewChain([]Coefficients{identity, identity, identity})

	if c.NumSections() != 3 {
		t.Fatalf("NumSections = %d, want 3", c.NumSections())
	}

	if c.Order() != 6 {
		t.Fatalf("Order = %d, want 6", c.Order())
	}
}

func TestChainCascadesInOrder(t *testing.T) {
	// Two one-tap gains: cascade gain is the product.
	c := NewChain([]Coefficients{{B0: 0.5}, {B0: 0.25}})

	if got := c.ProcessSample(1); got != 0.125 {
		t.Fatalf("cascade gain = %v, want 0.125", got)
	}
}

func TestChainProcessBlockToLeavesSource(t *testing.T) {
	coeffs := []Coefficients{
		{B0: 0.2, B1: 0.3, B2: 0.1, A1: -0.4, A2: 0.2},
		{B0: 0.7, B1: -0.1, A1: 0.2},
	}

	in := []float64{1, -0.5, 0.25, 0.75, -0.2}
	inCopy := append([]float64(nil), in...)

	dst := make([]float64, len(in))
	NewChain(coeffs).ProcessBlockTo(dst, in)

	ref := NewChain(coeffs)
	for i, x := range inCopy {
		want := ref.ProcessSample(x)
		if math.Abs(dst[i]-want) > 1e-15 {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}

	for i := range in {
		if in[i] != inCopy[i] {
			t.Fatalf("source modified at %d", i)
		}
	}
}

func TestChainEmptyIsPassthrough(t *testing.T) {
	c := NewChain(nil)

	in := []float64{1, 2, 3}
	dst := make([]float64, len(in))
	c.ProcessBlockTo(dst, in)

	for i := range in {
		if dst[i] != in[i] {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], in[i])
		}
	}
}

func TestChainProcessBlockToEmptyInput(t *testing.T) {
	c := NewChain([]Coefficients{
		{B0: 0.2, B1: 0.3, A1: -0.5},
		{B0: 0.7, B1: -0.1, A1: 0.2},
	})

	c.ProcessBlockTo(nil, nil)
	c.ProcessBlockTo([]float64{}, []float64{})
}

func TestChainReset(t *testing.T) {
	coeffs := []Coefficients{{B0: 0.2, B1: 0.3, A1: -0.5}}

	c := NewChain(coeffs)
	first := c.ProcessSample(1)
	c.ProcessSample(-1)

	c.Reset()
	if got := c.ProcessSample(1); got != first {
		t.Fatalf("after Reset: %v, want %v", got, first)
	}
}
