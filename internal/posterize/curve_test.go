package posterize

import (
	"errors"
	"math"
	"testing"
)

func TestIntensityLinear(t *testing.T) {
	for _, n := range []int{2, 3, 5, 10, 15, 20, 25, 256} {
		for i := 0; i < n; i++ {
			got, err := Intensity(i, n, 0)
			if err != nil {
				t.Fatalf("Intensity(%d, %d, 0): %v", i, n, err)
			}
			want := uint8(math.Round(float64(i) / float64(n-1) * 255))
			if got != want {
				t.Errorf("Intensity(%d, %d, 0): got %d, want %d", i, n, got, want)
			}
		}
	}
}

func TestIntensityKnownValues(t *testing.T) {
	tests := []struct {
		index, levels int
		dist          float64
		want          uint8
	}{
		{2, 5, 0, 128},  // round(127.5)
		{1, 5, 0, 64},   // round(63.75)
		{3, 5, 0, 191},  // round(191.25)
		{2, 5, 1, 64},   // 0.5^2 * 255 = 63.75
		{2, 5, -1, 180}, // sqrt(0.5) * 255 = 180.31
		{1, 2, 3, 255},
		{0, 2, -3, 0},
	}
	for _, tt := range tests {
		got, err := Intensity(tt.index, tt.levels, tt.dist)
		if err != nil {
			t.Fatalf("Intensity(%d, %d, %v): %v", tt.index, tt.levels, tt.dist, err)
		}
		if got != tt.want {
			t.Errorf("Intensity(%d, %d, %v): got %d, want %d", tt.index, tt.levels, tt.dist, got, tt.want)
		}
	}
}

func TestIntensityBias(t *testing.T) {
	lin, _ := Intensity(3, 10, 0)
	dark, _ := Intensity(3, 10, 1.5)
	bright, _ := Intensity(3, 10, -1.5)
	if !(dark < lin && lin < bright) {
		t.Errorf("bias ordering: dark=%d linear=%d bright=%d", dark, lin, bright)
	}
}

func TestIntensityClampsIndex(t *testing.T) {
	lo, _ := Intensity(-4, 5, 0)
	hi, _ := Intensity(40, 5, 0)
	if lo != 0 || hi != 255 {
		t.Errorf("clamped index: got %d and %d", lo, hi)
	}
}

func TestIntensityRejectsDegenerate(t *testing.T) {
	for _, n := range []int{1, 0, -5} {
		if _, err := Intensity(0, n, 0); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Intensity(0, %d, 0): got %v, want ErrInvalidParameter", n, err)
		}
	}
	for _, d := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := Intensity(1, 5, d); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Intensity(1, 5, %v): got %v, want ErrInvalidParameter", d, err)
		}
	}
}

func TestExponent(t *testing.T) {
	if Exponent(0) != 1 {
		t.Errorf("Exponent(0): got %v", Exponent(0))
	}
	if Exponent(1) != 2 || Exponent(-1) != 0.5 {
		t.Errorf("Exponent(±1): got %v, %v", Exponent(1), Exponent(-1))
	}
}
