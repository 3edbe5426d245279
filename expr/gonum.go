// SPDX-License-Identifier: MIT
package expr

import "gonum.org/v1/gonum/mat"

// ToGonum copies d into a fresh gonum dense matrix. Row-major storage is
// reused wholesale since gonum is row-major too.
func ToGonum(d *Dense[float64]) *mat.Dense {
	if d.order == RowMajor {
		return mat.NewDense(d.rows, d.cols, append([]float64(nil), d.data...))
	}
	m := mat.NewDense(d.rows, d.cols, nil)
	for r := 0; r < d.rows; r++ {
		for c := 0; c < d.cols; c++ {
			m.Set(r, c, d.data[c*d.rows+r])
		}
	}
	return m
}

// FromGonum copies an arbitrary gonum matrix into a row-major Dense.
func FromGonum(m mat.Matrix) *Dense[float64] {
	rows, cols := m.Dims()
	d := NewDense[float64](rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			d.data[r*cols+c] = m.At(r, c)
		}
	}
	return d
}

// gonumAdapter presents a Dense as a live gonum matrix without copying.
type gonumAdapter struct {
	d *Dense[float64]
}

func (a gonumAdapter) Dims() (int, int)        { return a.d.rows, a.d.cols }
func (a gonumAdapter) At(r, c int) float64     { return a.d.At(r, c) }
func (a gonumAdapter) Set(r, c int, v float64) { a.d.Set(r, c, v) }
func (a gonumAdapter) T() mat.Matrix           { return mat.Transpose{Matrix: a} }

// AsGonum wraps d as a gonum mat.Mutable view; writes through the returned
// value land in d's storage.
func AsGonum(d *Dense[float64]) mat.Mutable {
	return gonumAdapter{d: d}
}
