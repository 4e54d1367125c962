// Package diff computes aligned finite differences of a sampled sequence.
//
// A [Stencil] fixes which neighbours approximate the first and second
// derivative at each point:
//
//   - [Forward]: uses the point and the two following it. The result is
//     anchored at xs[i], so the first N-2 points of the input are covered.
//   - [Central]: uses the symmetric neighbours xs[i-1] and xs[i+1]. The
//     result is anchored at the interior points xs[1..N-1).
//
// Both stencils shrink a length-N input to N-2 aligned points.
//
// # Usage
//
//	tr, err := diff.Differences(xs, diff.Central)
//	for i := range tr.Len() {
//		fmt.Println(tr.Base[i], tr.First[i], tr.Second[i])
//	}
//
// Bulk arithmetic is delegated to algo-vecmath, which selects a SIMD kernel
// for the running CPU.
package diff
