// SPDX-License-Identifier: MIT
package skyline

import "errors"

// Structural misuse panics with a sentinel; numerical failure is returned.
// Shape and index sentinels are shared with package expr so callers branch
// on one vocabulary across the library.
var (
	// ErrOutsideProfile is raised when Set addresses an off-diagonal
	// position the profile does not store.
	ErrOutsideProfile = errors.New("skyline: position outside the stored profile")

	// ErrWrongLayout is raised when an elimination kernel receives a matrix
	// whose layout it was not written for.
	ErrWrongLayout = errors.New("skyline: matrix layout does not match the algorithm")

	// ErrZeroPivot is returned by Compute when a diagonal entry is exactly
	// zero at the moment it becomes a pivot; the factors are left partial.
	ErrZeroPivot = errors.New("skyline: zero pivot encountered")

	// ErrNotComputed is raised when Solve runs before a successful Compute.
	ErrNotComputed = errors.New("skyline: factorization has not been computed")
)
