// Package jitter analyzes per-pass timing series for periodic interference.
//
// Repeated benchmark passes on a busy machine pick up periodic noise from
// scheduler ticks, timer interrupts and thermal throttling. A flat duration
// series means clean timing; a strong spectral line means some periodic
// process beats against the benchmark at that period.
//
// [Analyze] mean-detrends the series, applies a Hann window, zero-pads to
// a power of two and takes the one-sided magnitude spectrum. The result
// reports the dominant non-DC bin, its period in passes, and the spectral
// flatness of the series (1.0 for white noise, near 0 for a pure tone).
//
// # Usage
//
//	res, err := jitter.Analyze(perPassDurations)
//	if err != nil { ... }
//	if res.Flatness < 0.2 {
//	    fmt.Printf("periodic interference every %.1f passes\n", res.PeakPeriod)
//	}
package jitter
