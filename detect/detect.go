package detect

import (
	"math"
	"sort"
)

// Default detection parameters.
const (
	DefaultFraction = 0.6
)

// Detector locates beat positions in a signal. Implementations return
// strictly increasing sample indices.
type Detector interface {
	Detect(signal []float64) []int
}

// GlobalThreshold detects peaks above a fixed fraction of the global
// maximum, with a refractory spacing between accepted peaks.
//
// A non-positive Fraction falls back to [DefaultFraction]; a MinSpacing
// below one sample is treated as one.
type GlobalThreshold struct {
	Fraction   float64 // of the global maximum
	MinSpacing int     // refractory distance in samples
}

// Detect returns the beat positions in signal.
//
// A record whose maximum is not positive yields no peaks: a zero or
// negative ceiling would make the threshold meaningless and turn noise
// into beats.
func (d GlobalThreshold) Detect(signal []float64) []int {
	frac := d.Fraction
	if frac <= 0 {
		frac = DefaultFraction
	}

	maxVal := maxValue(signal)
	if maxVal <= 0 {
		return nil
	}

	threshold := frac * maxVal
	candidates := localMaxima(signal, threshold)

	return suppressClose(signal, candidates, d.MinSpacing)
}

// WindowedThreshold detects peaks above a fraction of the local maximum
// within fixed-length windows, with a refractory spacing between
// accepted peaks. It tolerates amplitude drift and isolated artifact
// spikes better than [GlobalThreshold].
type WindowedThreshold struct {
	Fraction   float64 // of the local window maximum
	MinSpacing int     // refractory distance in samples
	WindowLen  int     // window length in samples; <=0 means the whole record
}

// Detect returns the beat positions in signal.
func (d WindowedThreshold) Detect(signal []float64) []int {
	frac := d.Fraction
	if frac <= 0 {
		frac = DefaultFraction
	}

	winLen := d.WindowLen
	if winLen <= 0 || winLen > len(signal) {
		winLen = len(signal)
	}

	if winLen == 0 {
		return nil
	}

	// One threshold per window; windows with a non-positive maximum get
	// no threshold and accept nothing.
	numWindows := (len(signal) + winLen - 1) / winLen
	thresholds := make([]float64, numWindows)
	for w := range thresholds {
		start := w * winLen
		end := start + winLen
		if end > len(signal) {
			end = len(signal)
		}
		thresholds[w] = frac * maxValue(signal[start:end])
	}

	// Maxima are located on the full record so that a beat landing on a
	// window boundary is not lost to the slicing.
	var candidates []int
	for _, idx := range localMaxima(signal, math.Inf(-1)) {
		th := thresholds[idx/winLen]
		if th > 0 && signal[idx] > th {
			candidates = append(candidates, idx)
		}
	}

	return suppressClose(signal, candidates, d.MinSpacing)
}

func maxValue(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	maxVal := signal[0]
	for _, v := range signal[1:] {
		if v > maxVal {
			maxVal = v
		}
	}

	return maxVal
}

// localMaxima returns the indices of samples that exceed threshold and
// rise above their left neighbour without falling below the right one.
// Edge samples are never maxima.
func localMaxima(signal []float64, threshold float64) []int {
	var out []int
	for i := 1; i < len(signal)-1; i++ {
		if signal[i] <= threshold {
			continue
		}
		if signal[i] > signal[i-1] && signal[i] >= signal[i+1] {
			out = append(out, i)
		}
	}

	return out
}

// suppressClose enforces the refractory distance: candidates are visited
// tallest first, and every remaining candidate closer than minSpacing to
// an accepted one is dropped. The survivors come back in ascending order.
func suppressClose(signal []float64, candidates []int, minSpacing int) []int {
	if len(candidates) == 0 {
		return nil
	}

	if minSpacing < 1 {
		minSpacing = 1
	}

	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return signal[candidates[order[a]]] > signal[candidates[order[b]]]
	})

	removed := make([]bool, len(candidates))
	for _, ci := range order {
		if removed[ci] {
			continue
		}

		for j := ci - 1; j >= 0 && candidates[ci]-candidates[j] < minSpacing; j-- {
			removed[j] = true
		}
		for j := ci + 1; j < len(candidates) && candidates[j]-candidates[ci] < minSpacing; j++ {
			removed[j] = true
		}
	}

	out := make([]int, 0, len(candidates))
	for i, idx := range candidates {
		if !removed[i] {
			out = append(out, idx)
		}
	}

	return out
}
