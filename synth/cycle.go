package synth

import "math"

// beatFraction is the nominal beat-interval fraction that anchors the
// pulse centers (a 30-sample window of a 72-sample reference beat).
const beatFraction = 30.0 / 72.0

// pulse is one Gaussian component of the cardiac cycle:
// amplitude * exp(-((t-center)/width)^2) on the local time axis.
type pulse struct {
	amplitude float64
	width     float64
	center    float64
}

// The six pulse shapes are the morphological contract of the synthesizer;
// changing any constant changes the reference waveform.
var cyclePulses = [...]pulse{
	{amplitude: 0.25, width: 0.09, center: 0.16 * beatFraction},     // P
	{amplitude: -0.025, width: 0.066, center: 0.166 * beatFraction}, // Q
	{amplitude: 1.6, width: 0.11, center: 0.5 * beatFraction},       // QRS
	{amplitude: -0.25, width: 0.066, center: 0.09 * beatFraction},   // S
	{amplitude: 0.35, width: 0.142, center: 0.2 * beatFraction},     // T
	{amplitude: 0.035, width: 0.0476, center: 0.433 * beatFraction}, // U
}

// Cycle synthesizes one cardiac cycle as the sum of the six component
// pulses, sampled at n uniformly spaced points over the local axis [0,1].
func Cycle(n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = sumPulses(0)
		return out
	}

	for i := range out {
		out[i] = sumPulses(float64(i) / float64(n-1))
	}

	return out
}

func sumPulses(t float64) float64 {
	var sum float64
	for _, p := range cyclePulses {
		z := (t - p.center) / p.width
		sum += p.amplitude * math.Exp(-z*z)
	}

	return sum
}
