// Package throughput times memscan passes and reports per-kind memory
// throughput.
//
// A [Runner] drives a [memscan.Harness] through a configured number of
// warm-up and timed passes per buffer kind and summarizes the per-pass
// durations. Rates are derived from the fastest pass: the slower passes
// of a run carry scheduler and cache noise, while the fastest pass is the
// closest observable to the machine's sustained scan rate.
//
// # Usage
//
//	r, err := throughput.NewRunner(memscan.New(), throughput.Config{Passes: 10, Warmup: 2})
//	if err != nil { ... }
//	results, err := r.Run()
//	for _, res := range results {
//	    fmt.Printf("%s: %.1f MB/s\n", res.Kind, res.BytesPerSec/1e6)
//	}
package throughput
