package throughput

import (
	"math"
	"time"
)

// durationStats holds single-pass aggregates over a duration series.
type durationStats struct {
	total  time.Duration
	min    time.Duration
	max    time.Duration
	mean   time.Duration
	stdDev time.Duration
}

// summarizeDurations computes min, max, mean and population standard
// deviation in one pass, using Welford's online update for the variance
// so long series stay numerically stable.
func summarizeDurations(samples []time.Duration) durationStats {
	n := len(samples)
	if n == 0 {
		return durationStats{}
	}

	var (
		total time.Duration
		min   = samples[0]
		max   = samples[0]
		mean  float64
		m2    float64
	)

	for i, d := range samples {
		total += d

		if d < min {
			min = d
		}
		if d > max {
			max = d
		}

		x := float64(d)
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
	}

	return durationStats{
		total:  total,
		min:    min,
		max:    max,
		mean:   time.Duration(mean),
		stdDev: time.Duration(math.Sqrt(m2 / float64(n))),
	}
}
