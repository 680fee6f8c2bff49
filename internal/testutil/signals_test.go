package testutil

import "testing"

func TestDeterministicNoiseRepeatable(t *testing.T) {
	a := DeterministicNoise(7, 1, 32)
	b := DeterministicNoise(7, 1, 32)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise mismatch at %d", i)
		}
	}
}

func TestImpulseTrain(t *testing.T) {
	s := ImpulseTrain(10, 2, 7, 99)

	for i, v := range s {
		want := 0.0
		if i == 2 || i == 7 {
			want = 1
		}
		if v != want {
			t.Fatalf("s[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestDeterministicSineStartsAtZero(t *testing.T) {
	s := DeterministicSine(1, 100, 1, 8)
	if s[0] != 0 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
}
