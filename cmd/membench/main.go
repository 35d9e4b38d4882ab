// Command membench measures per-type memory scan throughput.
//
// Usage:
//
//	membench [flags]
//
// Without flags it times all six buffer kinds and prints a throughput table.
//
// Examples:
//
//	membench -passes 20 -warmup 5
//	membench -kinds i8,f64 -jitter
//	membench -verify
//	membench -mandel -width 96 -height 32 -iters 100
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-bench/mandel"
	"github.com/cwbudde/algo-bench/measure/jitter"
	"github.com/cwbudde/algo-bench/measure/throughput"
	"github.com/cwbudde/algo-bench/memscan"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func main() {
	passes := flag.Int("passes", 10, "timed passes per buffer kind")
	warmup := flag.Int("warmup", 2, "untimed warm-up passes per kind")
	kindList := flag.String("kinds", "", "comma-separated kinds to measure (default all: i8,i16,i32,i64,f32,f64)")
	verify := flag.Bool("verify", false, "check buffer contents after the run against the wrap rule")
	showJitter := flag.Bool("jitter", false, "report spectral flatness and dominant period of the pass series")
	showCPU := flag.Bool("cpu", false, "print detected CPU SIMD features")
	renderMandel := flag.Bool("mandel", false, "print an ASCII escape-time rendering instead of benchmarking")
	width := flag.Int("width", 96, "render width in characters (with -mandel)")
	height := flag.Int("height", 32, "render height in characters (with -mandel)")
	iters := flag.Int("iters", 100, "iteration budget per sample (with -mandel)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: membench [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Measures sequential scan throughput of six typed 1Mi-element buffers.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *renderMandel {
		if err := printMandel(*width, *height, *iters); err != nil {
			fail(err)
		}
		return
	}

	if *showCPU {
		printCPU()
	}

	kinds, err := parseKinds(*kindList)
	if err != nil {
		fail(err)
	}

	h := memscan.New()
	runner, err := throughput.NewRunner(h, throughput.Config{
		Passes: *passes,
		Warmup: *warmup,
		Kinds:  kinds,
	})
	if err != nil {
		fail(err)
	}

	results, err := runner.Run()
	if err != nil {
		fail(err)
	}

	printResults(results, *showJitter)

	if *verify {
		if err := verifyBuffers(h, results, *warmup); err != nil {
			fail(err)
		}
		fmt.Println("verify: all buffers match the wrap rule")
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "membench:", err)
	os.Exit(1)
}

func parseKinds(list string) ([]memscan.Kind, error) {
	if list == "" {
		return nil, nil
	}

	var kinds []memscan.Kind
	for _, name := range strings.Split(list, ",") {
		k, err := memscan.ParseKind(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func printCPU() {
	f := cpu.DetectFeatures()
	fmt.Printf("cpu: arch=%s sse2=%v avx2=%v\n\n", f.Architecture, f.HasSSE2, f.HasAVX2)
}

func printResults(results []throughput.Result, showJitter bool) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	header := "kind\telem\tfastest\tmean\tstddev\tGB/s"
	if showJitter {
		header += "\tflatness\tperiod"
	}
	fmt.Fprintln(w, header)

	for _, res := range results {
		line := fmt.Sprintf("%s\t%dB\t%v\t%v\t%v\t%.2f",
			res.Kind, res.ElemBytes, res.Fastest, res.Mean, res.StdDev,
			res.BytesPerSec/1e9)

		if showJitter {
			jr, err := jitter.Analyze(res.PerPass)
			if err != nil {
				line += fmt.Sprintf("\t-\t(%v)", err)
			} else {
				line += fmt.Sprintf("\t%.2f\t%.1f passes", jr.Flatness, jr.PeakPeriod)
			}
		}

		fmt.Fprintln(w, line)
	}

	w.Flush()
}

// verifyBuffers checks that every measured buffer holds passCount*i in its
// element type, where passCount covers warm-up and timed passes.
func verifyBuffers(h *memscan.Harness, results []throughput.Result, warmup int) error {
	for _, res := range results {
		// Each pass, timed or not, added the index once.
		n := int64(res.Passes + warmup)
		if err := verifyKind(h, res.Kind, n); err != nil {
			return err
		}
	}
	return nil
}

func verifyKind(h *memscan.Harness, k memscan.Kind, passes int64) error {
	mismatch := func(i int, got, want any) error {
		return fmt.Errorf("verify %s[%d]: got %v, want %v", k, i, got, want)
	}

	switch k {
	case memscan.KindI8:
		for i, v := range h.I8() {
			if want := int8(passes * int64(i)); v != want {
				return mismatch(i, v, want)
			}
		}
	case memscan.KindI16:
		for i, v := range h.I16() {
			if want := int16(passes * int64(i)); v != want {
				return mismatch(i, v, want)
			}
		}
	case memscan.KindI32:
		for i, v := range h.I32() {
			if want := int32(passes * int64(i)); v != want {
				return mismatch(i, v, want)
			}
		}
	case memscan.KindI64:
		for i, v := range h.I64() {
			if want := passes * int64(i); v != want {
				return mismatch(i, v, want)
			}
		}
	case memscan.KindF32:
		for i, v := range h.F32() {
			if want := repeatedAddF32(i, passes); v != want {
				return mismatch(i, v, want)
			}
		}
	case memscan.KindF64:
		for i, v := range h.F64() {
			if want := float64(passes) * float64(i); v != want {
				return mismatch(i, v, want)
			}
		}
	}
	return nil
}

// repeatedAddF32 replays the pass arithmetic: passes single-precision
// additions of i, not one multiply, so rounding matches the scan exactly.
func repeatedAddF32(i int, passes int64) float32 {
	var acc float32
	for p := int64(0); p < passes; p++ {
		acc += float32(i)
	}
	return acc
}

func printMandel(width, height, iters int) error {
	if iters < 0 {
		return fmt.Errorf("iters must not be negative")
	}
	if width <= 0 || height <= 0 {
		return mandel.ErrInvalidSize
	}

	counts := make([]uint32, width*height)
	maxIters := uint32(iters)

	if err := mandel.RenderCounts(counts, mandel.ClassicRegion(), width, height, maxIters); err != nil {
		return err
	}

	const shades = " .:-=+*#%@"

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			n := counts[row*width+col]
			if n == maxIters {
				sb.WriteByte('@')
				continue
			}
			idx := int(n) * (len(shades) - 1) / int(maxIters)
			sb.WriteByte(shades[idx])
		}
		sb.WriteByte('\n')
	}

	fmt.Print(sb.String())
	return nil
}
