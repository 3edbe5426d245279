// SPDX-License-Identifier: MIT
package skyline

// Test-Bridge (White-Box) for the Elimination Internals
//
// Purpose:
//   - Expose the segment-cursor alignment and the per-layout elimination
//     kernels to skyline_test ONLY, so cursor arithmetic and the layout
//     guards can be pinned without widening the production API.
//
// Provided Surface:
//   - AlignOverlap_TestOnly: common-start alignment of two packed spans.
//   - ComputeRowMajor_TestOnly / ComputeColMajor_TestOnly: the raw kernels,
//     bypassing Compute's layout dispatch.

// AlignOverlap_TestOnly aligns two packed spans (data plus matrix index of
// the first entry) and returns the overlap length below bound together
// with both cursor positions after alignment.
func AlignOverlap_TestOnly(aData []float64, aFirst int, bData []float64, bFirst, bound int) (stop, aPos, bPos int) {
	var (
		a = newSegIter(aData, aFirst)
		b = newSegIter(bData, bFirst)
	)
	stop = alignOverlap(&a, &b, bound)

	return stop, a.pos, b.pos
}

// ComputeRowMajor_TestOnly runs the left-looking kernel directly; it
// panics with ErrWrongLayout unless the wrapped matrix is row-major.
func ComputeRowMajor_TestOnly(lu *LU) error { return lu.computeRowMajor() }

// ComputeColMajor_TestOnly runs the right-looking kernel directly; it
// panics with ErrWrongLayout unless the wrapped matrix is column-major.
func ComputeColMajor_TestOnly(lu *LU) error { return lu.computeColMajor() }
