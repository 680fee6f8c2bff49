package synth

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-ecg/dsp/core"
)

// Generator composes ECG signals from a shared sample rate and a
// deterministic noise source.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator for the given sample rate (Hz).
func NewGenerator(sampleRate float64, opts ...Option) *Generator {
	g := &Generator{
		sampleRate: sampleRate,
		seed:       1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// SampleRate returns the generator sample rate.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Compose concatenates one synthesized cycle per scheduled rate into a
// continuous waveform and returns the matching time grid.
//
// Each cycle is rendered at round(sampleRate*60/rate) samples, so faster
// beats occupy fewer samples. The output buffer grows as needed; its
// final length is the exact total of the rendered cycles, with no
// trailing padding.
func (g *Generator) Compose(rates []float64) (times, signal []float64, err error) {
	if g.sampleRate <= 0 {
		return nil, nil, ErrInvalidSampleRate
	}

	if len(rates) == 0 {
		return nil, nil, ErrEmptySchedule
	}

	for _, r := range rates {
		if r <= 0 {
			return nil, nil, ErrInvalidRate
		}
	}

	// Capacity estimate from the first rate; append handles the rest.
	first := int(math.Round(g.sampleRate * 60 / rates[0]))
	signal = make([]float64, 0, first*len(rates))

	for _, r := range rates {
		n := int(math.Round(g.sampleRate * 60 / r))
		signal = append(signal, Cycle(n)...)
	}

	return core.TimeGrid(len(signal), g.sampleRate), signal, nil
}

// AddArtifacts returns signal corrupted with sinusoidal baseline wander
// and i.i.d. Gaussian broadband noise. The input slices are not modified.
//
// The noise source is seeded from the generator seed on every call, so
// repeated calls with identical inputs produce identical outputs.
func (g *Generator) AddArtifacts(signal, times []float64, wanderFreq, wanderAmp, noiseAmp float64) ([]float64, error) {
	if len(signal) != len(times) {
		return nil, ErrLengthMismatch
	}

	if wanderAmp < 0 || noiseAmp < 0 {
		return nil, ErrInvalidAmplitude
	}

	rng := rand.New(rand.NewSource(g.seed))

	out := make([]float64, len(signal))
	for i, x := range signal {
		wander := wanderAmp * math.Sin(2*math.Pi*wanderFreq*times[i])
		out[i] = x + wander + noiseAmp*rng.NormFloat64()
	}

	return out, nil
}
