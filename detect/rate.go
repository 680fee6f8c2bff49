package detect

// Rates converts beat positions into an instantaneous heart-rate series
// in bpm, one value per consecutive peak pair.
//
// Fewer than two peaks carry no interval information: the result is an
// empty series, which callers must treat as "no estimate" rather than
// an error.
func Rates(peaks []int, sampleRate float64) []float64 {
	if sampleRate <= 0 || len(peaks) < 2 {
		return nil
	}

	out := make([]float64, len(peaks)-1)
	for i := range out {
		dt := float64(peaks[i+1]-peaks[i]) / sampleRate
		out[i] = 60 / dt
	}

	return out
}

// PeakTimes converts beat positions into seconds.
func PeakTimes(peaks []int, sampleRate float64) []float64 {
	if sampleRate <= 0 {
		return nil
	}

	out := make([]float64, len(peaks))
	for i, p := range peaks {
		out[i] = float64(p) / sampleRate
	}

	return out
}

// MeanRate returns the mean of a heart-rate series. The second return
// value is false when the series is empty and no estimate exists.
func MeanRate(bpm []float64) (float64, bool) {
	if len(bpm) == 0 {
		return 0, false
	}

	var sum float64
	for _, v := range bpm {
		sum += v
	}

	return sum / float64(len(bpm)), true
}
