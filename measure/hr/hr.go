// Package hr estimates the mean heart rate of an ECG record in the
// frequency domain.
//
// The beat repetition shows up as the dominant spectral line inside the
// physiological band, so a windowed FFT with a band-limited peak search
// provides an estimate that is independent of the time-domain beat
// detector and useful as a cross-check.
package hr

import (
	"errors"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ecg/dsp/window"
)

// Physiological search band, expressed in Hz (20 and 250 bpm).
const (
	DefaultBandLowHz  = 20.0 / 60
	DefaultBandHighHz = 250.0 / 60
)

// Errors returned by the estimator.
var (
	ErrEmptySignal       = errors.New("hr: signal is empty")
	ErrInvalidSampleRate = errors.New("hr: sample rate must be positive")
	ErrFFTSize           = errors.New("hr: fft size must not be smaller than the record")
	ErrBandResolution    = errors.New("hr: record too short to resolve the search band")
	ErrNoFundamental     = errors.New("hr: no spectral energy in the search band")
)

// Config holds estimation parameters.
type Config struct {
	SampleRate float64
	FFTSize    int         // 0: next power of two >= len(signal); smaller sizes are rejected
	BandLowHz  float64     // 0: DefaultBandLowHz
	BandHighHz float64     // 0: DefaultBandHighHz
	WindowType window.Type // zero value selects a Hann window
}

// Estimate returns the heart rate (bpm) of the dominant spectral line
// inside the configured band.
func Estimate(signal []float64, cfg Config) (float64, error) {
	if len(signal) == 0 {
		return 0, ErrEmptySignal
	}

	if cfg.SampleRate <= 0 {
		return 0, ErrInvalidSampleRate
	}

	bandLow := cfg.BandLowHz
	if bandLow <= 0 {
		bandLow = DefaultBandLowHz
	}

	bandHigh := cfg.BandHighHz
	if bandHigh <= 0 {
		bandHigh = DefaultBandHighHz
	}

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(signal))
	} else if fftSize < len(signal) {
		return 0, ErrFFTSize
	}

	winType := cfg.WindowType
	if winType == window.TypeDefault {
		winType = window.TypeHann
	}

	coeffs := window.Generate(winType, len(signal))
	windowed := make([]float64, len(signal))
	if err := window.Apply(windowed, signal, coeffs); err != nil {
		return 0, err
	}

	inData := make([]complex128, fftSize)
	for i, v := range windowed {
		inData[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, err
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return 0, err
	}

	binCount := fftSize/2 + 1
	re := make([]float64, binCount)
	im := make([]float64, binCount)
	for i := 0; i < binCount; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, binCount)
	vecmath.Magnitude(mag, re, im)

	binHz := cfg.SampleRate / float64(fftSize)
	loBin := int(math.Ceil(bandLow / binHz))
	if loBin < 1 {
		loBin = 1
	}

	hiBin := int(math.Floor(bandHigh / binHz))
	if hiBin > binCount-1 {
		hiBin = binCount - 1
	}

	if loBin > hiBin {
		return 0, ErrBandResolution
	}

	bestBin := loBin
	bestVal := mag[loBin]
	for i := loBin + 1; i <= hiBin; i++ {
		if mag[i] > bestVal {
			bestVal = mag[i]
			bestBin = i
		}
	}

	if bestVal <= 0 {
		return 0, ErrNoFundamental
	}

	return float64(bestBin) * binHz * 60, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
