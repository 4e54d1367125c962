package testutil

import (
	"math"
	"math/rand"
)

// Geometric returns n samples of limit + initial*exp(-rate*k), k = 0..n-1.
func Geometric(limit, initial, rate float64, n int) []float64 {
	out := make([]float64, n)
	for k := range out {
		out[k] = limit + initial*math.Exp(-rate*float64(k))
	}
	return out
}

// LeibnizPartialSums returns the first n partial sums of
// 4*(1 - 1/3 + 1/5 - ...), which converge slowly to π.
func LeibnizPartialSums(n int) []float64 {
	out := make([]float64, n)
	sum := 0.0
	sign := 1.0
	for k := range out {
		sum += sign * 4 / (2*float64(k) + 1)
		sign = -sign
		out[k] = sum
	}
	return out
}

// Squares returns [1, 4, 9, ..., n²].
func Squares(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		v := float64(i + 1)
		out[i] = v * v
	}
	return out
}

// DeterministicNoise generates uniform values in [0, 1) with a fixed seed.
func DeterministicNoise(seed int64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64()
	}
	return out
}

// DC generates a constant-valued sequence.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
