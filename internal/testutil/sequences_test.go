package testutil

import (
	"math"
	"testing"
)

func TestGeometric(t *testing.T) {
	g := Geometric(2, 1, math.Ln2, 4)
	RequireSliceNearlyEqual(t, g, []float64{3, 2.5, 2.25, 2.125}, 1e-15)
}

func TestLeibnizPartialSums(t *testing.T) {
	s := LeibnizPartialSums(3)
	RequireSliceNearlyEqual(t, s, []float64{4, 4 - 4.0/3, 4 - 4.0/3 + 4.0/5}, 1e-15)

	long := LeibnizPartialSums(1000)
	if d := math.Abs(long[len(long)-1] - math.Pi); d > 1e-2 {
		t.Fatalf("partial sum error = %v, want < 1e-2", d)
	}
}

func TestSquares(t *testing.T) {
	RequireSliceEqual(t, Squares(4), []float64{1, 4, 9, 16})
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 64)
	b := DeterministicNoise(42, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < 0 || a[i] >= 1 {
			t.Fatalf("noise[%d] = %v out of [0, 1)", i, a[i])
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 16)
	b := DeterministicNoise(2, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestDC(t *testing.T) {
	d := DC(0.5, 4)
	for i, v := range d {
		if v != 0.5 {
			t.Fatalf("DC[%d] = %v, want 0.5", i, v)
		}
	}
}
