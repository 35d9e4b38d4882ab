package mandel

import (
	"math"
	"testing"
)

func TestIterateZeroBudget(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{2, 0},
		{-1.5, 0.3},
		{math.NaN(), 0},
		{math.Inf(1), math.Inf(-1)},
	}

	for _, p := range points {
		if got := Iterate(p[0], p[1], 0); got != 0 {
			t.Fatalf("Iterate(%v, %v, 0) = %d, want 0", p[0], p[1], got)
		}
	}
}

func TestIterateOriginNeverEscapes(t *testing.T) {
	for _, m := range []uint32{1, 10, 1000, 100000} {
		if got := Iterate(0, 0, m); got != m {
			t.Fatalf("Iterate(0, 0, %d) = %d, want %d", m, got, m)
		}
	}
}

func TestIterateImmediateEscape(t *testing.T) {
	// z1 = c = (2, 0), |z1|² = 4 fails the strict < 4.0 test.
	for _, m := range []uint32{1, 2, 50} {
		if got := Iterate(2, 0, m); got != 1 {
			t.Fatalf("Iterate(2, 0, %d) = %d, want 1", m, got)
		}
	}
}

func TestIterateKnownPoints(t *testing.T) {
	tests := []struct {
		name     string
		cx, cy   float64
		maxIters uint32
		want     uint32
	}{
		// c = -1 cycles between 0 and -1, never escapes.
		{"period-two-cycle", -1, 0, 500, 500},
		// Main cardioid interior point.
		{"cardioid-interior", -0.1, 0.1, 256, 256},
		// Far outside: escapes on the first test after z1.
		{"far-outside", 10, 10, 64, 1},
		// Just past the needle tip: z1² = 4.0004 already fails the test.
		{"past-needle", -2.0001, 0, 1000, 1},
	}

	// The needle tip c = -2 is a set member mathematically (orbit 0, -2,
	// 2, 2, ...), but |z1|² = 4 fails the strict < 4.0 test, same as
	// the boundary case c = (2, 0).
	if got := Iterate(-2, 0, 300); got != 1 {
		t.Fatalf("Iterate(-2, 0, 300) = %d, want 1", got)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Iterate(tt.cx, tt.cy, tt.maxIters)
			if got != tt.want {
				t.Fatalf("Iterate(%v, %v, %d) = %d, want %d", tt.cx, tt.cy, tt.maxIters, got, tt.want)
			}
		})
	}
}

func TestIterateMonotoneInBudget(t *testing.T) {
	points := [][2]float64{
		{0.3, 0.5},
		{-0.75, 0.1},
		{0.25, 0},
		{-1.401155, 0},
		{1.5, 1.5},
	}

	const maxBudget = 200

	for _, p := range points {
		full := Iterate(p[0], p[1], maxBudget)

		prev := uint32(0)
		for m := uint32(0); m <= maxBudget; m++ {
			got := Iterate(p[0], p[1], m)

			if got < prev {
				t.Fatalf("Iterate(%v, %v, ·) not monotone: m=%d gave %d after %d", p[0], p[1], m, got, prev)
			}

			want := full
			if m < want {
				want = m
			}
			if got != want {
				t.Fatalf("Iterate(%v, %v, %d) = %d, want min(%d, %d)", p[0], p[1], m, got, full, m)
			}

			prev = got
		}
	}
}

func TestIterateResultBounded(t *testing.T) {
	for cy := -2.0; cy <= 2.0; cy += 0.25 {
		for cx := -2.5; cx <= 1.5; cx += 0.25 {
			got := Iterate(cx, cy, 100)
			if got > 100 {
				t.Fatalf("Iterate(%v, %v, 100) = %d, exceeds budget", cx, cy, got)
			}
		}
	}
}

func TestIterateNonFiniteInputs(t *testing.T) {
	// The first escape test happens after one step, so a NaN coordinate
	// fails the < 4.0 comparison at i = 1 and the loop stops there.
	if got := Iterate(math.NaN(), 0, 100); got != 1 {
		t.Fatalf("Iterate(NaN, 0, 100) = %d, want 1", got)
	}
	if got := Iterate(0, math.NaN(), 100); got != 1 {
		t.Fatalf("Iterate(0, NaN, 100) = %d, want 1", got)
	}
	if got := Iterate(math.Inf(1), 0, 100); got != 1 {
		t.Fatalf("Iterate(+Inf, 0, 100) = %d, want 1", got)
	}
}
