// Package window provides the analysis windows used by the spectral
// heart-rate estimator.
package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function. The zero value TypeDefault lets
// callers substitute their own preferred window.
type Type int

const (
	TypeDefault Type = iota
	TypeRectangular
	TypeHann
	TypeHamming
)

// Generate returns n window coefficients of the given type.
// Unknown types fall back to rectangular.
func Generate(t Type, n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = 1
		return out
	}

	switch t {
	case TypeHann:
		for i := range out {
			out[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		}
	case TypeHamming:
		for i := range out {
			out[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		}
	default:
		for i := range out {
			out[i] = 1
		}
	}

	return out
}

// Apply multiplies samples by coeffs into out. All slices must have the
// same length.
func Apply(out, samples, coeffs []float64) error {
	if len(out) != len(samples) || len(samples) != len(coeffs) {
		return fmt.Errorf("window: length mismatch: out=%d samples=%d coeffs=%d",
			len(out), len(samples), len(coeffs))
	}

	vecmath.MulBlock(out, samples, coeffs)
	return nil
}

// ApplyInPlace multiplies samples by coeffs in place. Both slices must
// have the same length.
func ApplyInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return fmt.Errorf("window: length mismatch: samples=%d coeffs=%d",
			len(samples), len(coeffs))
	}

	vecmath.MulBlockInPlace(samples, coeffs)
	return nil
}
