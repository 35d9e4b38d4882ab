package jitter

import (
	"errors"
	"fmt"
	"math"
	"time"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-bench/internal/numeric"
	"github.com/cwbudde/algo-vecmath"
)

// minSamples is the shortest series worth transforming.
const minSamples = 8

// ErrTooFewSamples is returned for series shorter than 8 samples.
var ErrTooFewSamples = errors.New("jitter: need at least 8 samples")

// Result holds the spectral summary of a timing series.
type Result struct {
	// Bins is the one-sided magnitude spectrum of the detrended,
	// Hann-windowed series: bin 0 is DC, the last bin is Nyquist
	// (one cycle per two passes).
	Bins []float64

	// PeakBin is the index of the strongest non-DC bin.
	PeakBin int

	// PeakPeriod is the period of the strongest non-DC bin, in passes
	// per cycle.
	PeakPeriod float64

	// Flatness is the Wiener entropy of the non-DC bins in [0, 1]:
	// 1 for spectrally white jitter, toward 0 for a dominant line.
	Flatness float64
}

// Analyze computes the spectral summary of a per-pass duration series.
func Analyze(durations []time.Duration) (Result, error) {
	series := make([]float64, len(durations))
	for i, d := range durations {
		series[i] = float64(d)
	}

	bins, err := Spectrum(series)
	if err != nil {
		return Result{}, err
	}

	res := Result{Bins: bins}

	peak := 1
	for i := 2; i < len(bins); i++ {
		if bins[i] > bins[peak] {
			peak = i
		}
	}
	res.PeakBin = peak

	// fftSize = 2 * (len(bins) - 1); bin k completes k cycles per fftSize
	// samples, so its period is fftSize / k passes.
	fftSize := 2 * (len(bins) - 1)
	res.PeakPeriod = float64(fftSize) / float64(peak)

	res.Flatness = flatness(bins[1:])

	return res, nil
}

// Spectrum returns the one-sided magnitude spectrum of the series after
// mean detrending, Hann windowing and zero-padding to the next power of
// two. The output has fftSize/2 + 1 bins.
func Spectrum(series []float64) ([]float64, error) {
	n := len(series)
	if n < minSamples {
		return nil, ErrTooFewSamples
	}

	var mean float64
	for _, x := range series {
		mean += x
	}
	mean /= float64(n)

	fftSize := numeric.NextPowerOf2(n)

	input := make([]complex128, fftSize)
	for i, x := range series {
		// Hann window over the original series length.
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		input[i] = complex((x-mean)*w, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("jitter: init fft plan: %w", err)
	}

	output := make([]complex128, fftSize)
	if err := plan.Forward(output, input); err != nil {
		return nil, fmt.Errorf("jitter: forward fft: %w", err)
	}

	binCount := fftSize/2 + 1
	re := make([]float64, binCount)
	im := make([]float64, binCount)
	for i := 0; i < binCount; i++ {
		re[i] = real(output[i])
		im[i] = imag(output[i])
	}

	mag := make([]float64, binCount)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

// flatness returns the Wiener entropy of a magnitude spectrum: the ratio
// of geometric to arithmetic mean, clamped to [0, 1]. An all-zero
// spectrum reports 1 (nothing sticks out).
func flatness(magnitude []float64) float64 {
	if len(magnitude) == 0 {
		return 1
	}

	const floor = 1e-30

	var logSum, sum float64
	for _, m := range magnitude {
		if m < floor {
			m = floor
		}
		logSum += math.Log(m)
		sum += m
	}

	arith := sum / float64(len(magnitude))
	if arith <= floor {
		return 1
	}

	geo := math.Exp(logSum / float64(len(magnitude)))

	return numeric.Clamp(geo/arith, 0, 1)
}
