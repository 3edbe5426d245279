// SPDX-License-Identifier: MIT
package dogleg

import "errors"

// Every sentinel here marks a precondition violation, so all three are
// raised by panic: a caller passing mis-sized buffers or a non-positive
// radius has a programming error, not a data condition to branch on.
var (
	// ErrPackedLength is raised when the packed triangle does not hold
	// exactly n·(n+1)/2 coefficients.
	ErrPackedLength = errors.New("dogleg: packed triangular length does not match the dimension")

	// ErrLengthMismatch is raised when x or qtb disagrees with diag about
	// the dimension.
	ErrLengthMismatch = errors.New("dogleg: vector lengths disagree")

	// ErrNonPositiveDelta is raised when the trust-region radius is zero or
	// negative.
	ErrNonPositiveDelta = errors.New("dogleg: trust-region radius must be positive")
)
