package synth

import "errors"

// Errors returned by the synthesis functions.
var (
	ErrInvalidRate       = errors.New("synth: heart rates must be positive")
	ErrRateOrder         = errors.New("synth: minimum rate must not exceed maximum rate")
	ErrInvalidDuration   = errors.New("synth: duration must be positive")
	ErrInvalidSampleRate = errors.New("synth: sample rate must be positive")
	ErrTooFewCycles      = errors.New("synth: duration too short, schedule needs at least 2 cycles")
	ErrEmptySchedule     = errors.New("synth: rate schedule is empty")
	ErrLengthMismatch    = errors.New("synth: signal and time grid lengths differ")
	ErrInvalidAmplitude  = errors.New("synth: artifact amplitudes must not be negative")
)

// RateSchedule returns one target heart rate (bpm) per beat, increasing
// linearly from hrMin to hrMax over the given duration (s).
//
// The number of beats is floor(duration*hrMin/60), the count that fits
// at the slowest rate. Fewer than two beats leave nothing to
// interpolate, so short durations are rejected with [ErrTooFewCycles].
// hrMin == hrMax is valid and yields a constant-rate schedule.
func RateSchedule(hrMin, hrMax, duration float64) ([]float64, error) {
	if hrMin <= 0 || hrMax <= 0 {
		return nil, ErrInvalidRate
	}

	if hrMin > hrMax {
		return nil, ErrRateOrder
	}

	if duration <= 0 {
		return nil, ErrInvalidDuration
	}

	n := int(duration * hrMin / 60)
	if n < 2 {
		return nil, ErrTooFewCycles
	}

	out := make([]float64, n)
	step := (hrMax - hrMin) / float64(n-1)
	for i := range out {
		out[i] = hrMin + step*float64(i)
	}
	// Guard against rounding drift on the final control point.
	out[n-1] = hrMax

	return out, nil
}
