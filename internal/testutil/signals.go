package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates Gaussian noise with a fixed seed for
// reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = amplitude * rng.NormFloat64()
	}
	return out
}

// ImpulseTrain generates a signal of the given length with unit impulses
// at the listed positions. Out-of-range positions are ignored.
func ImpulseTrain(length int, positions ...int) []float64 {
	out := make([]float64, length)
	for _, p := range positions {
		if p >= 0 && p < length {
			out[p] = 1
		}
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
