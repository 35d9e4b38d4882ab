package numeric

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min, max float64
		want     float64
	}{
		{"inside", 0.5, 0, 1, 0.5},
		{"below", -2, 0, 1, 0},
		{"above", 3, 0, 1, 1},
		{"swapped-bounds", 0.5, 1, 0, 0.5},
		{"at-min", 0, 0, 1, 0},
		{"at-max", 1, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.want {
				t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", tt.value, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("values within eps should compare equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-12) {
		t.Fatal("values outside eps should not compare equal")
	}
	if !NearlyEqual(0, 0, 0) {
		t.Fatal("zero eps should fall back to default epsilon")
	}
	if !NearlyEqual(1e300, 1e300*(1+1e-13), 1e-12) {
		t.Fatal("relative comparison should handle large magnitudes")
	}
	if NearlyEqual(math.NaN(), math.NaN(), 1e-12) {
		t.Fatal("NaN should never compare equal")
	}
}

func TestNextPowerOf2(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{1023, 1024},
		{1024, 1024},
		{1025, 2048},
	}

	for _, tt := range tests {
		got := NextPowerOf2(tt.n)
		if got != tt.want {
			t.Fatalf("NextPowerOf2(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
