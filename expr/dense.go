// SPDX-License-Identifier: MIT
package expr

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlalg/scalar"
)

// Dense is the concrete storage leaf: a rows×cols matrix over one flat
// buffer in row- or column-major order. It is the only expression kind that
// owns coefficients; every other node computes them from its operands.
//
// Dense implements Mutable and is the natural destination of Assign.
type Dense[T scalar.Scalar] struct {
	rows, cols int
	order      Order
	data       []T
}

// NewDense returns a zeroed rows×cols matrix in row-major order. It panics
// with ErrInvalidDimensions unless both dimensions are positive.
func NewDense[T scalar.Scalar](rows, cols int) *Dense[T] {
	return NewDenseOrdered[T](rows, cols, RowMajor)
}

// NewDenseOrdered returns a zeroed rows×cols matrix in the given order.
func NewDenseOrdered[T scalar.Scalar](rows, cols int, order Order) *Dense[T] {
	if rows <= 0 || cols <= 0 {
		panic(ErrInvalidDimensions)
	}
	return &Dense[T]{
		rows:  rows,
		cols:  cols,
		order: order,
		data:  make([]T, rows*cols),
	}
}

// NewVector returns a zeroed n×1 column vector.
func NewVector[T scalar.Scalar](n int) *Dense[T] {
	return NewDense[T](n, 1)
}

// FromSlice returns a rows×cols matrix initialized from data laid out in the
// given order. The slice is copied; later changes to data do not affect the
// matrix. It panics with ErrSliceLength unless len(data) == rows·cols.
func FromSlice[T scalar.Scalar](rows, cols int, order Order, data []T) *Dense[T] {
	d := NewDenseOrdered[T](rows, cols, order)
	if len(data) != rows*cols {
		panic(ErrSliceLength)
	}
	copy(d.data, data)
	return d
}

// FromRows returns a row-major matrix whose i-th row is rows[i]. It panics
// with ErrInvalidDimensions on empty input and with ErrRaggedRows when the
// rows differ in length.
func FromRows[T scalar.Scalar](rows [][]T) *Dense[T] {
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic(ErrInvalidDimensions)
	}
	d := NewDense[T](len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != d.cols {
			panic(ErrRaggedRows)
		}
		copy(d.data[r*d.cols:(r+1)*d.cols], row)
	}
	return d
}

// Rows returns the row count.
func (d *Dense[T]) Rows() int { return d.rows }

// Cols returns the column count.
func (d *Dense[T]) Cols() int { return d.cols }

// Order returns the storage order of the backing buffer.
func (d *Dense[T]) Order() Order { return d.order }

// Stride returns the buffer distance between consecutive rows (row-major)
// or consecutive columns (column-major).
func (d *Dense[T]) Stride() int {
	if d.order == RowMajor {
		return d.cols
	}
	return d.rows
}

// index maps (r, c) to a buffer position. Callers have already range-checked.
func (d *Dense[T]) index(r, c int) int {
	if d.order == RowMajor {
		return r*d.cols + c
	}
	return c*d.rows + r
}

// checkIndex panics with ErrIndexOutOfRange when (r, c) is outside the shape.
func (d *Dense[T]) checkIndex(r, c int) {
	if r < 0 || r >= d.rows || c < 0 || c >= d.cols {
		panic(ErrIndexOutOfRange)
	}
}

// At returns the coefficient at (r, c).
func (d *Dense[T]) At(r, c int) T {
	d.checkIndex(r, c)
	return d.data[d.index(r, c)]
}

// Set stores v at (r, c).
func (d *Dense[T]) Set(r, c int, v T) {
	d.checkIndex(r, c)
	d.data[d.index(r, c)] = v
}

// Flags reports a packed, linear, vectorizable leaf in the storage order.
func (d *Dense[T]) Flags() Flags {
	f := FlagPacked | FlagLinear | FlagVectorizable
	if d.order == RowMajor {
		f |= FlagRowMajor
	}
	return f
}

// Cost is the cost of one coefficient load.
func (d *Dense[T]) Cost() int { return scalar.ReadCost[T]() }

// RawData exposes the live backing buffer in storage order. Mutating it
// mutates the matrix; the caller must not grow or re-slice it.
func (d *Dense[T]) RawData() []T { return d.data }

// Clone returns a deep copy sharing no storage with d.
func (d *Dense[T]) Clone() *Dense[T] {
	c := NewDenseOrdered[T](d.rows, d.cols, d.order)
	copy(c.data, d.data)
	return c
}

// Fill sets every coefficient to v.
func (d *Dense[T]) Fill(v T) {
	for i := range d.data {
		d.data[i] = v
	}
}

// Resize reshapes d to rows×cols, reusing the buffer when it is large
// enough. Coefficient contents are unspecified afterwards; the storage order
// is preserved. It panics with ErrInvalidDimensions on non-positive
// dimensions.
func (d *Dense[T]) Resize(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic(ErrInvalidDimensions)
	}
	if n := rows * cols; n <= cap(d.data) {
		d.data = d.data[:n]
	} else {
		d.data = make([]T, n)
	}
	d.rows, d.cols = rows, cols
}

// Equal reports exact coefficient-wise equality with e, independent of
// storage order. Use IsApprox for tolerance-based comparison.
func (d *Dense[T]) Equal(e Expr[T]) bool {
	if d.rows != e.Rows() || d.cols != e.Cols() {
		return false
	}
	for r := 0; r < d.rows; r++ {
		for c := 0; c < d.cols; c++ {
			if d.data[d.index(r, c)] != e.At(r, c) {
				return false
			}
		}
	}
	return true
}

// String renders the matrix row by row for debugging output.
func (d *Dense[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dense[%dx%d %s]", d.rows, d.cols, d.order)
	for r := 0; r < d.rows; r++ {
		b.WriteString("\n  ")
		for c := 0; c < d.cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%v", d.data[d.index(r, c)])
		}
	}
	return b.String()
}
