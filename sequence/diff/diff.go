package diff

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// MinLength is the shortest input for which differences are defined.
const MinLength = 3

// Errors returned by difference functions.
var (
	ErrUnsupportedStencil = errors.New("diff: unsupported stencil")
	ErrSequenceTooShort   = errors.New("diff: sequence too short")
)

// Triple holds a truncated copy of the input together with its first and
// second differences. All three slices have the same length and index i in
// each refers to the same input point.
type Triple struct {
	Base   []float64
	First  []float64
	Second []float64
}

// Len returns the number of aligned points.
func (t Triple) Len() int {
	return len(t.Base)
}

// Differences computes the difference triple of xs under stencil s.
// xs is not modified; every slice of the result is freshly allocated.
func Differences(xs []float64, s Stencil) (Triple, error) {
	if !s.Valid() {
		return Triple{}, fmt.Errorf("%w: %v", ErrUnsupportedStencil, s)
	}
	if len(xs) < MinLength {
		return Triple{}, fmt.Errorf("%w: %s stencil needs %d samples, got %d",
			ErrSequenceTooShort, s, MinLength, len(xs))
	}

	n := len(xs) - 2
	e := Steps(xs)

	// Second differences agree for both stencils once expressed through the
	// steps: xs[i+2] - 2*xs[i+1] + xs[i] == e[i+1] - e[i].
	second := make([]float64, n)
	stepDiff(second, e)

	first := make([]float64, n)
	base := make([]float64, n)

	switch s {
	case Forward:
		copy(first, e[:n])
		copy(base, xs[:n])
	case Central:
		neg := make([]float64, n)
		vecmath.ScaleBlock(neg, xs[:n], -1)
		vecmath.AddMulBlock(first, xs[2:], neg, 0.5)
		copy(base, xs[1:n+1])
	}

	return Triple{Base: base, First: first, Second: second}, nil
}

// Steps returns the forward steps xs[i+1] - xs[i]. The result has length
// len(xs)-1, or is nil when xs has fewer than two samples.
func Steps(xs []float64) []float64 {
	if len(xs) < 2 {
		return nil
	}
	out := make([]float64, len(xs)-1)
	stepDiff(out, xs)
	return out
}

// stepDiff writes src[i+1] - src[i] into dst, which must have length
// len(src)-1.
func stepDiff(dst, src []float64) {
	n := len(dst)
	neg := make([]float64, n)
	vecmath.ScaleBlock(neg, src[:n], -1)
	vecmath.AddBlock(dst, src[1:n+1], neg)
}
