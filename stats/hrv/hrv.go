// Package hrv computes summary statistics over an instantaneous
// heart-rate series.
package hrv

import "math"

// Stats holds heart-rate variability statistics for one record.
//
// Count is the number of rate samples; when it is zero no estimate
// exists and the remaining fields are meaningless. Callers must check
// Count (or use [Stats.MeanRate]) before reporting a mean.
type Stats struct {
	Count  int
	Mean   float64 // mean rate (bpm)
	Min    float64
	Max    float64
	StdDev float64 // population standard deviation of the rate series
	RMSSD  float64 // root mean square of successive rate differences
}

// MeanRate returns the mean heart rate. The second return value is
// false when the series was empty.
func (s Stats) MeanRate() (float64, bool) {
	if s.Count == 0 {
		return 0, false
	}

	return s.Mean, true
}

// Calculate computes all statistics in a single pass using Welford's
// online algorithm for numerical stability.
func Calculate(bpm []float64) Stats {
	n := len(bpm)
	if n == 0 {
		return Stats{}
	}

	var (
		mean float64
		m2   float64
	)

	var (
		minVal = bpm[0]
		maxVal = bpm[0]
		diffSq float64
	)

	for i, x := range bpm {
		ni := float64(i + 1)
		delta := x - mean
		mean += delta / ni
		m2 += delta * (x - mean)

		if x < minVal {
			minVal = x
		}

		if x > maxVal {
			maxVal = x
		}

		if i > 0 {
			d := x - bpm[i-1]
			diffSq += d * d
		}
	}

	var rmssd float64
	if n > 1 {
		rmssd = math.Sqrt(diffSq / float64(n-1))
	}

	return Stats{
		Count:  n,
		Mean:   mean,
		Min:    minVal,
		Max:    maxVal,
		StdDev: math.Sqrt(m2 / float64(n)),
		RMSSD:  rmssd,
	}
}
