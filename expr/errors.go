// SPDX-License-Identifier: MIT
package expr

import "errors"

// Structural sentinels. Misuse of the expression layer is a programming
// error, so these are delivered by panic at the offending call site rather
// than threaded through return values; recover-based tests can match them
// with errors.Is.
var (
	// ErrInvalidDimensions is raised when a constructor receives a
	// non-positive row or column count.
	ErrInvalidDimensions = errors.New("expr: dimensions must be positive")

	// ErrShapeMismatch is raised when two operands (or a destination and a
	// source) disagree on rows or columns.
	ErrShapeMismatch = errors.New("expr: operand shapes do not match")

	// ErrIndexOutOfRange is raised by coefficient access outside the
	// expression's shape.
	ErrIndexOutOfRange = errors.New("expr: index out of range")

	// ErrNotVector is raised when an operation defined on vectors receives
	// an expression with both dimensions greater than one.
	ErrNotVector = errors.New("expr: expression is not a vector")

	// ErrNotSquare is raised when an operation defined on square matrices
	// receives a rectangular expression.
	ErrNotSquare = errors.New("expr: expression is not square")

	// ErrReadOnly is raised when writing through a view whose base is not
	// writable.
	ErrReadOnly = errors.New("expr: expression is read-only")

	// ErrSliceLength is raised when a backing slice does not hold exactly
	// rows·cols coefficients.
	ErrSliceLength = errors.New("expr: slice length does not match dimensions")

	// ErrRaggedRows is raised when row-wise construction receives rows of
	// unequal length.
	ErrRaggedRows = errors.New("expr: rows have unequal length")
)
