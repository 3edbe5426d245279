// SPDX-License-Identifier: MIT
package expr

import "github.com/katalvlaran/lvlalg/scalar"

// Order selects the memory layout of a storage leaf and, by extension, the
// traversal order the evaluation engine uses when that leaf is the
// destination of an assignment.
type Order uint8

const (
	// RowMajor stores coefficients row by row: (r,c) lives at r·cols+c.
	RowMajor Order = iota
	// ColMajor stores coefficients column by column: (r,c) lives at c·rows+r.
	ColMajor
)

// String returns "RowMajor" or "ColMajor".
func (o Order) String() string {
	if o == RowMajor {
		return "RowMajor"
	}
	return "ColMajor"
}

// Flags is a bitmask of structural properties an expression advertises to
// the evaluation engine. Nodes derive their flags from their operands and
// functor at construction time, so strategy selection in Assign is a pure
// bitmask inspection.
type Flags uint32

const (
	// FlagRowMajor marks an expression whose natural coefficient order is
	// row-major. Views such as Transpose toggle it.
	FlagRowMajor Flags = 1 << iota

	// FlagPacked marks a leaf backed by one contiguous buffer covering the
	// whole shape. Only packed leaves qualify for whole-buffer kernels.
	FlagPacked

	// FlagLinear marks an expression whose coefficients can be visited as a
	// single run of rows·cols positions in its natural order.
	FlagLinear

	// FlagVectorizable marks a tree whose functor chain admits slice kernels
	// (every functor vectorizable, every leaf packed, one shared order).
	FlagVectorizable

	// FlagEvalBeforeNesting marks a subtree costly enough that nesting it
	// into a larger expression must materialize it first, so its
	// coefficients are computed once instead of once per read.
	FlagEvalBeforeNesting
)

// Has reports whether every bit of q is set in f.
func (f Flags) Has(q Flags) bool { return f&q == q }

// order is the traversal order implied by the flag mask.
func (f Flags) order() Order {
	if f.Has(FlagRowMajor) {
		return RowMajor
	}
	return ColMajor
}

// Expr is the read-only contract every expression node satisfies: concrete
// storage, generators, coefficient-wise nodes and views alike. Coefficient
// access is position-checked; out-of-range access panics with
// ErrIndexOutOfRange.
type Expr[T scalar.Scalar] interface {
	// Rows returns the number of rows in the expression's shape.
	Rows() int
	// Cols returns the number of columns in the expression's shape.
	Cols() int
	// At returns the coefficient at (r, c), computing it on demand.
	At(r, c int) T
	// Flags returns the structural property mask of the expression.
	Flags() Flags
	// Cost estimates the work of computing one coefficient, in the units of
	// package scalar's cost table.
	Cost() int
}

// Mutable is the writable extension of Expr used by assignment destinations
// and in-place operations. Dense implements it directly; views implement it
// by delegating to their base and panic with ErrReadOnly when the base is
// not writable.
type Mutable[T scalar.Scalar] interface {
	Expr[T]
	// Set stores v at (r, c).
	Set(r, c int, v T)
}

// Size returns the total number of coefficients in e.
func Size[T scalar.Scalar](e Expr[T]) int { return e.Rows() * e.Cols() }

// IsVector reports whether e has a single row or a single column.
func IsVector[T scalar.Scalar](e Expr[T]) bool {
	return e.Rows() == 1 || e.Cols() == 1
}

// VecLen returns the length of a vector expression. It panics with
// ErrNotVector when both dimensions exceed one.
func VecLen[T scalar.Scalar](e Expr[T]) int {
	if !IsVector[T](e) {
		panic(ErrNotVector)
	}
	return Size[T](e)
}

// AtVec returns the i-th coefficient of a vector expression, regardless of
// its row/column orientation. It panics with ErrNotVector on non-vectors and
// with ErrIndexOutOfRange when i is outside [0, VecLen).
func AtVec[T scalar.Scalar](e Expr[T], i int) T {
	if !IsVector[T](e) {
		panic(ErrNotVector)
	}
	if i < 0 || i >= Size[T](e) {
		panic(ErrIndexOutOfRange)
	}
	if e.Rows() == 1 {
		return e.At(0, i)
	}
	return e.At(i, 0)
}

// SetVec stores v at the i-th coefficient of a writable vector expression.
func SetVec[T scalar.Scalar](m Mutable[T], i int, v T) {
	if !IsVector[T](m) {
		panic(ErrNotVector)
	}
	if i < 0 || i >= Size[T](m) {
		panic(ErrIndexOutOfRange)
	}
	if m.Rows() == 1 {
		m.Set(0, i, v)
		return
	}
	m.Set(i, 0, v)
}

// sameShape panics with ErrShapeMismatch unless a and b agree on both
// dimensions.
func sameShape[T scalar.Scalar](a, b Expr[T]) {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		panic(ErrShapeMismatch)
	}
}

// operandHolder is implemented by every non-leaf node so the aliasing walk
// in Assign can reach storage leaves without knowing node types. Operands
// are type-erased because Cast nodes hold a child of a different scalar
// type.
type operandHolder interface {
	operands() []any
}

// viewNode marks nodes that read their operand at shifted or swapped
// positions. Aliasing through such a node is never same-index overlap, so
// the engine must evaluate into a temporary first.
type viewNode interface {
	remapsIndices()
}
