package aitken

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-aitken/sequence/diff"
)

// Errors returned by acceleration functions.
var (
	ErrInvalidArgument = errors.New("aitken: invalid argument")

	ErrUnsupportedStencil = diff.ErrUnsupportedStencil
	ErrSequenceTooShort   = diff.ErrSequenceTooShort
)

// Accelerate applies the delta-squared transform to xs and returns the
// accelerated sequence, of length len(xs) - 2*iterations. xs is not modified.
func Accelerate(xs []float64, opts ...Option) ([]float64, error) {
	stages, err := Stages(xs, opts...)
	if err != nil {
		return nil, err
	}
	return stages[len(stages)-1], nil
}

// Stages is like [Accelerate] but returns the output of every application:
// stages[0] is the result of one application and the last element is the
// result of all of them.
func Stages(xs []float64, opts ...Option) ([][]float64, error) {
	cfg := applyOptions(opts)
	if err := validateIterations(cfg.iterations); err != nil {
		return nil, err
	}
	if !cfg.stencil.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedStencil, cfg.stencil)
	}
	// len(xs) >= 2*iterations+1, written to avoid overflow.
	if cfg.iterations > (len(xs)-1)/2 {
		return nil, fmt.Errorf("%w: %d iterations need 2*%d+1 samples, got %d",
			ErrSequenceTooShort, cfg.iterations, cfg.iterations, len(xs))
	}

	stages := make([][]float64, 0, cfg.iterations)
	cur := xs
	for range cfg.iterations {
		next, err := Step(cur, cfg.stencil)
		if err != nil {
			return nil, err
		}
		stages = append(stages, next)
		cur = next
	}
	return stages, nil
}

// Limit returns the last point of the accelerated sequence, the transform's
// best estimate of the limit of xs.
func Limit(xs []float64, opts ...Option) (float64, error) {
	out, err := Accelerate(xs, opts...)
	if err != nil {
		return 0, err
	}
	return out[len(out)-1], nil
}

// Step applies the transform once: out[i] = base[i] - first[i]²/second[i],
// with out[i] = base[i] where both differences are zero.
func Step(xs []float64, s diff.Stencil) ([]float64, error) {
	tr, err := diff.Differences(xs, s)
	if err != nil {
		return nil, err
	}

	n := tr.Len()
	correction := make([]float64, n)
	vecmath.MulBlock(correction, tr.First, tr.First)
	for i := range correction {
		if tr.First[i] == 0 && tr.Second[i] == 0 {
			correction[i] = 0
			continue
		}
		// Second[i] == 0 alone gives an infinite correction; see package doc.
		correction[i] /= tr.Second[i]
	}

	out := make([]float64, n)
	vecmath.ScaleBlockInPlace(correction, -1)
	vecmath.AddBlock(out, tr.Base, correction)
	return out, nil
}

func validateIterations(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: iterations must be >= 1, got %d", ErrInvalidArgument, n)
	}
	return nil
}
