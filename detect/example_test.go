package detect_test

import (
	"fmt"

	"github.com/cwbudde/algo-ecg/detect"
)

func ExampleGlobalThreshold_Detect() {
	signal := []float64{0, 1, 0, 0, 0, 0.9, 0, 0, 0, 0}

	det := detect.GlobalThreshold{Fraction: 0.6, MinSpacing: 3}
	fmt.Println(det.Detect(signal))
	// Output:
	// [1 5]
}

func ExampleRates() {
	// Peaks half a second apart, then a full second apart, at 1 kHz.
	bpm := detect.Rates([]int{0, 500, 1500}, 1000)

	fmt.Println(bpm)
	// Output:
	// [120 60]
}
