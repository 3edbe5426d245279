// Package skyline stores banded sparse matrices in skyline (variable-band)
// form and factors them in place as L·U without pivoting.
//
// What:
//
//	■ Matrix   - square storage split into a diagonal slice plus packed
//	             strictly-lower and strictly-upper segments, one segment per
//	             row or column with its own bandwidth. The layout order
//	             decides the orientation: RowMajor keeps lower row segments
//	             and upper column segments (both ending at the diagonal),
//	             ColMajor keeps lower column segments and upper row segments
//	             (both starting at the diagonal).
//	■ New / FromDense / Banded - empty-profile, tight-profile and
//	             fixed-bandwidth constructors.
//	■ LU       - in-place factorization A = L·U over the stored profile,
//	             algorithm selected by the layout: right-looking elimination
//	             for ColMajor (contiguous trailing updates), left-looking
//	             Doolittle for RowMajor (aligned sparse dot products).
//	■ Solve / SolveTranspose - forward and back substitution through the
//	             packed factors, dot-form or saxpy-form per layout.
//
// Why:
//
// Finite-difference and finite-element operators are banded with ragged
// profiles; storing the full dense matrix wastes O(n²) memory and an LU
// factorization inside the profile costs only O(n·b²) for bandwidth b. The
// skyline layout keeps every segment contiguous, so the inner elimination
// loops reduce to aligned slice dot products and scaled accumulations.
//
// Profile discipline:
//
//	■ Entries outside the stored profile read as zero; writing one panics
//	  with ErrOutsideProfile. The factorization never widens the profile
//	  (no fill-in outside the skyline by construction).
//	■ No pivoting is performed. The elimination is numerically safe only
//	  when the matrix eliminates well in place, diagonally dominant systems
//	  being the standard case. A diagonal entry that is exactly zero when
//	  its pivot is needed surfaces as ErrZeroPivot; near-zero pivots are the
//	  caller's concern.
//
// Errors:
//
// Structural misuse (shape, profile, layout) panics with a sentinel.
// Compute returns ErrZeroPivot because singularity is a data property, not
// a programming error, and Solve before a successful Compute returns
// ErrNotComputed.
//
// Complexity: Compute O(Σ segment²) ≈ O(n·b²), Solve O(nnz), storage O(nnz).
//
// See also: package expr for the Order type and the dense bridge, and
// package eigen for the dense spectral side of the library.
package skyline
