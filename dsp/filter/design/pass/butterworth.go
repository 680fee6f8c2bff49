package pass

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-ecg/dsp/filter/biquad"
)

// Errors returned by the bandpass designer.
var (
	ErrInvalidSampleRate = errors.New("pass: sample rate must be positive")
	ErrInvalidOrder      = errors.New("pass: filter order must be positive")
	ErrInvalidCutoff     = errors.New("pass: low cutoff must be positive")
	ErrCutoffOrder       = errors.New("pass: low cutoff must be below high cutoff")
	ErrNyquist           = errors.New("pass: high cutoff must be below the Nyquist frequency")
)

// ButterworthLP designs a lowpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 {
		return nil
	}
	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		sections = append(sections, LowpassRBJ(freq, q, sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, butterworthFirstOrderLP(freq, sampleRate))
	}
	return sections
}

// ButterworthHP designs a highpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 {
		return nil
	}
	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		sections = append(sections, HighpassRBJ(freq, q, sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, butterworthFirstOrderHP(freq, sampleRate))
	}
	return sections
}

// ButterworthBP designs a Butterworth bandpass cascade with the given
// edge frequencies (Hz). The result is a highpass cascade at lowFreq
// followed by a lowpass cascade at highFreq, each of the given order.
//
// Unlike the lowpass and highpass designers, invalid parameters are
// reported as errors: a bandpass whose upper edge reaches the Nyquist
// frequency is undefined and must not be silently clamped.
func ButterworthBP(lowFreq, highFreq float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	if order <= 0 {
		return nil, ErrInvalidOrder
	}

	if lowFreq <= 0 {
		return nil, ErrInvalidCutoff
	}

	if lowFreq >= highFreq {
		return nil, ErrCutoffOrder
	}

	if highFreq >= sampleRate/2 {
		return nil, ErrNyquist
	}

	hp := ButterworthHP(lowFreq, order, sampleRate)
	lp := ButterworthLP(highFreq, order, sampleRate)

	return append(hp, lp...), nil
}

// butterworthQ returns the quality factor for a Butterworth filter section.
// index ranges from 0 to (order/2 - 1) for the biquad sections.
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return defaultQ
	}

	return 1 / (2 * s)
}

// butterworthFirstOrderLP designs a first-order lowpass Butterworth section.
// Used for odd-order filters.
func butterworthFirstOrderLP(freq, sampleRate float64) biquad.Coefficients {
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 {
		return biquad.Coefficients{}
	}

	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: k * norm,
		B1: k * norm,
		B2: 0,
		A1: (k - 1) * norm,
		A2: 0,
	}
}

// butterworthFirstOrderHP designs a first-order highpass Butterworth section.
// Used for odd-order filters.
func butterworthFirstOrderHP(freq, sampleRate float64) biquad.Coefficients {
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 {
		return biquad.Coefficients{}
	}

	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: norm,
		B1: -norm,
		B2: 0,
		A1: (k - 1) * norm,
		A2: 0,
	}
}
