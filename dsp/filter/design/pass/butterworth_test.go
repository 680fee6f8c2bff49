package pass

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-ecg/dsp/filter/biquad"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestButterworthLPSectionCount(t *testing.T) {
	sr := 1000.0
	for order := 1; order <= 8; order++ {
		want := (order + 1) / 2
		got := ButterworthLP(50, order, sr)
		if len(got) != want {
			t.Fatalf("order %d: sections=%d, want %d", order, len(got), want)
		}
	}
}

func TestButterworthHPSectionCount(t *testing.T) {
	sr := 1000.0
	for order := 1; order <= 8; order++ {
		want := (order + 1) / 2
		got := ButterworthHP(1, order, sr)
		if len(got) != want {
			t.Fatalf("order %d: sections=%d, want %d", order, len(got), want)
		}
	}
}

func TestButterworthLPMinus3dBAtCutoff(t *testing.T) {
	sr := 1000.0
	for _, order := range []int{1, 2, 3, 4} {
		chain := biquad.NewChain(ButterworthLP(50, order, sr))
		got := chain.MagnitudeDB(50, sr)
		if !almostEqual(got, -3.01, 0.2) {
			t.Fatalf("order %d: cutoff magnitude %.2f dB, want ~-3 dB", order, got)
		}
	}
}

func TestButterworthHPMinus3dBAtCutoff(t *testing.T) {
	sr := 1000.0
	for _, order := range []int{1, 2, 3, 4} {
		chain := biquad.NewChain(ButterworthHP(50, order, sr))
		got := chain.MagnitudeDB(50, sr)
		if !almostEqual(got, -3.01, 0.2) {
			t.Fatalf("order %d: cutoff magnitude %.2f dB, want ~-3 dB", order, got)
		}
	}
}

func TestButterworthInvalidOrder(t *testing.T) {
	if got := ButterworthLP(50, 0, 1000); got != nil {
		t.Fatal("expected nil for zero order")
	}

	if got := ButterworthHP(50, -1, 1000); got != nil {
		t.Fatal("expected nil for negative order")
	}
}

func TestButterworthBPSectionCount(t *testing.T) {
	sections, err := ButterworthBP(0.5, 50, 2, 1000)
	if err != nil {
		t.Fatalf("ButterworthBP() error = %v", err)
	}

	// order-2 highpass + order-2 lowpass
	if len(sections) != 2 {
		t.Fatalf("sections=%d, want 2", len(sections))
	}
}

func TestButterworthBPPassband(t *testing.T) {
	sr := 1000.0

	sections, err := ButterworthBP(0.5, 50, 2, sr)
	if err != nil {
		t.Fatalf("ButterworthBP() error = %v", err)
	}

	chain := biquad.NewChain(sections)

	// Mid-band should be close to unity.
	if got := chain.MagnitudeDB(10, sr); !almostEqual(got, 0, 0.5) {
		t.Fatalf("mid-band magnitude %.2f dB, want ~0 dB", got)
	}

	// Baseline wander frequency should be strongly attenuated.
	if got := chain.MagnitudeDB(0.1, sr); got > -20 {
		t.Fatalf("0.1 Hz magnitude %.2f dB, want < -20 dB", got)
	}

	// Well above the high cutoff the response must roll off.
	if got := chain.MagnitudeDB(200, sr); got > -20 {
		t.Fatalf("200 Hz magnitude %.2f dB, want < -20 dB", got)
	}
}

func TestButterworthBPErrors(t *testing.T) {
	cases := []struct {
		name       string
		low, high  float64
		order      int
		sampleRate float64
		want       error
	}{
		{"zero sample rate", 0.5, 50, 2, 0, ErrInvalidSampleRate},
		{"zero order", 0.5, 50, 0, 1000, ErrInvalidOrder},
		{"zero low cutoff", 0, 50, 2, 1000, ErrInvalidCutoff},
		{"reversed cutoffs", 50, 0.5, 2, 1000, ErrCutoffOrder},
		{"high at Nyquist", 0.5, 500, 2, 1000, ErrNyquist},
		{"high above Nyquist", 0.5, 600, 2, 1000, ErrNyquist},
	}

	for _, tc := range cases {
		_, err := ButterworthBP(tc.low, tc.high, tc.order, tc.sampleRate)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestButterworthQKnownValues(t *testing.T) {
	// Order 2, index 0: Q = 1/(2*sin(pi/4)) = 1/sqrt(2)
	got := butterworthQ(2, 0)
	want := 1 / math.Sqrt2
	if !almostEqual(got, want, 1e-12) {
		t.Fatalf("order=2 index=0: Q=%.10f, want %.10f", got, want)
	}
}

func TestButterworthFirstOrderShape(t *testing.T) {
	lp := butterworthFirstOrderLP(50, 1000)
	hp := butterworthFirstOrderHP(50, 1000)

	if lp.B2 != 0 || lp.A2 != 0 {
		t.Fatalf("LP not first-order: %+v", lp)
	}

	if hp.B2 != 0 || hp.A2 != 0 {
		t.Fatalf("HP not first-order: %+v", hp)
	}
}

func TestRBJInvalidInputs(t *testing.T) {
	zero := biquad.Coefficients{}

	if got := LowpassRBJ(600, defaultQ, 1000); got != zero {
		t.Fatalf("expected zero coefficients above Nyquist, got %+v", got)
	}

	if got := HighpassRBJ(-1, defaultQ, 1000); got != zero {
		t.Fatalf("expected zero coefficients for negative freq, got %+v", got)
	}
}
