// SPDX-License-Identifier: MIT
package expr

import "github.com/katalvlaran/lvlalg/scalar"

// transposeView exposes its base with rows and columns swapped. No
// coefficients are moved; reads and writes are forwarded with indices
// flipped.
type transposeView[T scalar.Scalar] struct {
	base Expr[T]
}

// Transpose returns a lazy transposed view of e. The view is writable when
// e is; writing through it otherwise panics with ErrReadOnly.
func Transpose[T scalar.Scalar](e Expr[T]) Mutable[T] {
	return &transposeView[T]{base: e}
}

func (v *transposeView[T]) Rows() int { return v.base.Cols() }
func (v *transposeView[T]) Cols() int { return v.base.Rows() }

func (v *transposeView[T]) At(r, c int) T { return v.base.At(c, r) }

func (v *transposeView[T]) Set(r, c int, x T) {
	mb, ok := v.base.(Mutable[T])
	if !ok {
		panic(ErrReadOnly)
	}
	mb.Set(c, r, x)
}

// Flags toggles the majorness bit: a row-major base reads column-major
// through the flip, and vice versa. Linearity survives; packedness and
// kernel eligibility do not cross a view.
func (v *transposeView[T]) Flags() Flags {
	return (v.base.Flags() ^ FlagRowMajor) & (FlagRowMajor | FlagLinear)
}

func (v *transposeView[T]) Cost() int       { return v.base.Cost() }
func (v *transposeView[T]) operands() []any { return []any{v.base} }
func (v *transposeView[T]) remapsIndices()  {}

// blockView exposes a rows×cols window of its base anchored at (r0, c0).
type blockView[T scalar.Scalar] struct {
	base       Expr[T]
	r0, c0     int
	rows, cols int
}

// Block returns a lazy rows×cols sub-matrix view of e starting at
// (r0, c0). It panics with ErrInvalidDimensions on a non-positive window
// and with ErrIndexOutOfRange when the window does not fit inside e. The
// view is writable when e is.
func Block[T scalar.Scalar](e Expr[T], r0, c0, rows, cols int) Mutable[T] {
	if rows <= 0 || cols <= 0 {
		panic(ErrInvalidDimensions)
	}
	if r0 < 0 || c0 < 0 || r0+rows > e.Rows() || c0+cols > e.Cols() {
		panic(ErrIndexOutOfRange)
	}
	return &blockView[T]{base: e, r0: r0, c0: c0, rows: rows, cols: cols}
}

// Row returns a writable 1×cols view of row i of e.
func Row[T scalar.Scalar](e Expr[T], i int) Mutable[T] {
	return Block[T](e, i, 0, 1, e.Cols())
}

// Col returns a writable rows×1 view of column j of e.
func Col[T scalar.Scalar](e Expr[T], j int) Mutable[T] {
	return Block[T](e, 0, j, e.Rows(), 1)
}

// Segment returns a writable n-coefficient view of a vector expression
// starting at position start, preserving the vector's orientation. It
// panics with ErrNotVector when v is not a vector.
func Segment[T scalar.Scalar](v Expr[T], start, n int) Mutable[T] {
	if !IsVector[T](v) {
		panic(ErrNotVector)
	}
	if v.Rows() == 1 {
		return Block[T](v, 0, start, 1, n)
	}
	return Block[T](v, start, 0, n, 1)
}

// Head returns the first n coefficients of a vector expression.
func Head[T scalar.Scalar](v Expr[T], n int) Mutable[T] {
	return Segment[T](v, 0, n)
}

// Tail returns the last n coefficients of a vector expression.
func Tail[T scalar.Scalar](v Expr[T], n int) Mutable[T] {
	return Segment[T](v, VecLen[T](v)-n, n)
}

func (v *blockView[T]) Rows() int { return v.rows }
func (v *blockView[T]) Cols() int { return v.cols }

func (v *blockView[T]) At(r, c int) T {
	checkShapeIndex(v.rows, v.cols, r, c)
	return v.base.At(v.r0+r, v.c0+c)
}

func (v *blockView[T]) Set(r, c int, x T) {
	checkShapeIndex(v.rows, v.cols, r, c)
	mb, ok := v.base.(Mutable[T])
	if !ok {
		panic(ErrReadOnly)
	}
	mb.Set(v.r0+r, v.c0+c, x)
}

// Flags keeps the base's orientation. Linearity survives only when the
// window spans the base's full inner dimension, so consecutive positions in
// the window are consecutive in the base.
func (v *blockView[T]) Flags() Flags {
	bf := v.base.Flags()
	f := bf & FlagRowMajor
	if bf.Has(FlagLinear) {
		if f.Has(FlagRowMajor) && v.cols == v.base.Cols() {
			f |= FlagLinear
		} else if !f.Has(FlagRowMajor) && v.rows == v.base.Rows() {
			f |= FlagLinear
		}
	}
	return f
}

func (v *blockView[T]) Cost() int       { return v.base.Cost() }
func (v *blockView[T]) operands() []any { return []any{v.base} }
func (v *blockView[T]) remapsIndices()  {}
