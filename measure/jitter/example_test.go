package jitter_test

import (
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/algo-bench/measure/jitter"
)

func ExampleAnalyze() {
	// A 1ms-per-pass series with a strong oscillation every 8 passes,
	// as a throttling governor might produce.
	durations := make([]time.Duration, 128)
	for i := range durations {
		base := float64(time.Millisecond)
		wobble := 0.25 * base * math.Sin(2*math.Pi*float64(i)/8)
		durations[i] = time.Duration(base + wobble)
	}

	res, err := jitter.Analyze(durations)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("bins: %d\n", len(res.Bins))
	fmt.Printf("period: %.0f passes\n", res.PeakPeriod)
	fmt.Printf("tonal: %v\n", res.Flatness < 0.5)

	// Output:
	// bins: 65
	// period: 8 passes
	// tonal: true
}
