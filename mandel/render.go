package mandel

import (
	"errors"
	"math"
)

// Errors returned by render functions.
var (
	ErrInvalidRegion = errors.New("mandel: region bounds must be finite with min < max")
	ErrInvalidSize   = errors.New("mandel: width and height must be positive")
	ErrShortBuffer   = errors.New("mandel: dst shorter than width*height")
)

// Region is a rectangle in the complex plane, min inclusive.
type Region struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// ClassicRegion returns the region framing the full set as commonly plotted.
func ClassicRegion() Region {
	return Region{MinX: -2.5, MinY: -1.25, MaxX: 1.0, MaxY: 1.25}
}

// Validate checks that the region is finite and non-degenerate.
func (r Region) Validate() error {
	for _, v := range [4]float64{r.MinX, r.MinY, r.MaxX, r.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidRegion
		}
	}

	if r.MinX >= r.MaxX || r.MinY >= r.MaxY {
		return ErrInvalidRegion
	}

	return nil
}

// RenderCounts fills dst with the escape-count field of the region sampled
// on a width×height grid, row-major with row 0 at MinY. Sample points sit
// at cell centers, so rendering is stable under region subdivision.
//
// dst must hold at least width*height elements; the extra capacity, if any,
// is left untouched.
func RenderCounts(dst []uint32, r Region, width, height int, maxIters uint32) error {
	if err := r.Validate(); err != nil {
		return err
	}

	if width <= 0 || height <= 0 {
		return ErrInvalidSize
	}

	if len(dst) < width*height {
		return ErrShortBuffer
	}

	dx := (r.MaxX - r.MinX) / float64(width)
	dy := (r.MaxY - r.MinY) / float64(height)

	for row := 0; row < height; row++ {
		cy := r.MinY + (float64(row)+0.5)*dy
		base := row * width
		for col := 0; col < width; col++ {
			cx := r.MinX + (float64(col)+0.5)*dx
			dst[base+col] = Iterate(cx, cy, maxIters)
		}
	}

	return nil
}
