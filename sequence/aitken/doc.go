// Package aitken implements Aitken's delta-squared acceleration of
// convergent sequences.
//
// For a sequence x whose error decays geometrically, x[n] = L + a*q^n, the
// transform
//
//	x'[n] = x[n] - (Δx[n])² / Δ²x[n]
//
// cancels the geometric term and returns L exactly. For sequences that are
// only asymptotically geometric, the transformed sequence converges to the
// same limit faster than the input. Applying the transform repeatedly
// (see [WithIterations]) removes further error terms.
//
// # Usage
//
//	out, err := aitken.Accelerate(partialSums)
//	out, err := aitken.Accelerate(xs, aitken.WithStencil(diff.Central), aitken.WithIterations(3))
//	est, err := aitken.Limit(xs, aitken.WithIterations(2))
//
// Every application shrinks the sequence by two points, so k iterations need
// at least 2k+1 input samples.
//
// # Degenerate points
//
// Where both differences vanish the sequence has already converged and the
// point is passed through unchanged. Where only the second difference
// vanishes the correction is a plain IEEE-754 division by zero: it becomes
// +Inf and the output point becomes -Inf. Callers that need a finite result
// must check with [math.IsInf].
package aitken
