// SPDX-License-Identifier: MIT

// Package skyline - profile storage and safe accessors.
//
// Purpose:
//   - Keep a square matrix as diagonal + packed variable-length segments,
//     one strictly-lower and one strictly-upper segment per index, each
//     contiguous in memory and anchored at the diagonal.
//   - Resolve (row, col) → packed offset in O(1) from the prefix arrays, so
//     At/Set never scan.
//   - Expose the segments to the elimination kernels as slices plus a
//     cursor type (segIter) that supports the alignment step the row-major
//     factorization is built on.
//
// Orientation protocol (fixed by the layout order):
//   - RowMajor: lower segment i spans row i's columns [i-len(i), i-1],
//     upper segment j spans column j's rows [j-len(j), j-1]; both END at
//     the diagonal.
//   - ColMajor: lower segment j spans column j's rows [j+1, j+len(j)],
//     upper segment i spans row i's columns [i+1, i+len(i)]; both START at
//     the diagonal.

package skyline

import (
	"github.com/katalvlaran/lvlalg/expr"
	"github.com/katalvlaran/lvlalg/scalar"
)

// Matrix is a square skyline matrix. The zero value is not usable;
// construct with New, FromDense or Banded.
type Matrix struct {
	n          int
	order      expr.Order
	diag       []float64
	lower      []float64 // packed segments, concatenated in index order
	upper      []float64
	lowerStart []int     // n+1 prefix offsets into lower
	upperStart []int     // n+1 prefix offsets into upper
}

// build allocates zeroed storage for the given per-segment lengths.
func build(n int, order expr.Order, lowerLen, upperLen []int) *Matrix {
	m := &Matrix{
		n:          n,
		order:      order,
		diag:       make([]float64, n),
		lowerStart: make([]int, n+1),
		upperStart: make([]int, n+1),
	}
	for i := 0; i < n; i++ {
		m.lowerStart[i+1] = m.lowerStart[i] + lowerLen[i]
		m.upperStart[i+1] = m.upperStart[i] + upperLen[i]
	}
	m.lower = make([]float64, m.lowerStart[n])
	m.upper = make([]float64, m.upperStart[n])

	return m
}

// New returns an n×n skyline matrix with an empty profile: only the
// diagonal is stored until a constructor with a wider profile is used.
func New(n int, order expr.Order) *Matrix {
	if n < 1 {
		panic(expr.ErrInvalidDimensions)
	}
	lens := make([]int, n)

	return build(n, order, lens, lens)
}

// Banded returns an n×n skyline matrix storing lower sub-diagonals and
// upper super-diagonals, clipped at the matrix boundary.
func Banded(n, lower, upper int, order expr.Order) *Matrix {
	if n < 1 || lower < 0 || upper < 0 {
		panic(expr.ErrInvalidDimensions)
	}
	var (
		lowerLen = make([]int, n)
		upperLen = make([]int, n)
		i        int
	)
	for i = 0; i < n; i++ {
		if order == expr.RowMajor {
			// Segments end at the diagonal: row i reaches back min(lower, i)
			// columns, column i reaches up min(upper, i) rows.
			lowerLen[i] = min(lower, i)
			upperLen[i] = min(upper, i)
		} else {
			// Segments start at the diagonal and extend outward.
			lowerLen[i] = min(lower, n-1-i)
			upperLen[i] = min(upper, n-1-i)
		}
	}

	return build(n, order, lowerLen, upperLen)
}

// FromDense returns the tightest skyline matrix holding every nonzero of
// the square dense matrix d. Zeros between the outermost nonzero and the
// diagonal stay inside the profile as explicit entries.
func FromDense(d *expr.Dense[float64], order expr.Order) *Matrix {
	if d.Rows() != d.Cols() {
		panic(expr.ErrNotSquare)
	}
	var (
		n        = d.Rows()
		lowerLen = make([]int, n)
		upperLen = make([]int, n)
		i, j     int
	)
	if order == expr.RowMajor {
		// Tight reach toward the first nonzero, per row (lower) and per
		// column (upper).
		for i = 0; i < n; i++ {
			for j = 0; j < i; j++ {
				if d.At(i, j) != 0 {
					lowerLen[i] = i - j

					break
				}
			}
			for j = 0; j < i; j++ {
				if d.At(j, i) != 0 {
					upperLen[i] = i - j

					break
				}
			}
		}
	} else {
		// Tight reach toward the last nonzero, per column (lower) and per
		// row (upper).
		for i = 0; i < n; i++ {
			for j = n - 1; j > i; j-- {
				if d.At(j, i) != 0 {
					lowerLen[i] = j - i

					break
				}
			}
			for j = n - 1; j > i; j-- {
				if d.At(i, j) != 0 {
					upperLen[i] = j - i

					break
				}
			}
		}
	}

	m := build(n, order, lowerLen, upperLen)
	for i = 0; i < n; i++ {
		m.diag[i] = d.At(i, i)
	}
	for i = 0; i < n; i++ {
		seg, first := m.lowerSeg(i)
		for j = range seg {
			if order == expr.RowMajor {
				seg[j] = d.At(i, first+j) // row segment
			} else {
				seg[j] = d.At(first+j, i) // column segment
			}
		}
		seg, first = m.upperSeg(i)
		for j = range seg {
			if order == expr.RowMajor {
				seg[j] = d.At(first+j, i) // column segment
			} else {
				seg[j] = d.At(i, first+j) // row segment
			}
		}
	}

	return m
}

// Rows returns the dimension; the matrix is always square.
func (m *Matrix) Rows() int { return m.n }

// Cols returns the dimension; the matrix is always square.
func (m *Matrix) Cols() int { return m.n }

// Order returns the layout the matrix was built with, which also selects
// the factorization algorithm.
func (m *Matrix) Order() expr.Order { return m.order }

/// NonZeros returns the number of stored coefficients: the diagonal plus
// every profile entry, explicit zeros included.
func (m *Matrix) NonZeros() int { return m.n + len(m.lower) + len(m.upper) }

// Flags marks the majorness so the expression layer traverses the stored
// orientation first.
func (m *Matrix) Flags() expr.Flags {
	if m.order == expr.RowMajor {
		return expr.FlagRowMajor
	}

	return 0
}

// Cost prices the branchy profile lookup slightly above a flat read.
func (m *Matrix) Cost() int { return scalar.ReadCost[float64]() + 1 }

// checkIndex guards coefficient access against the square shape.
func (m *Matrix) checkIndex(r, c int) {
	if r < 0 || r >= m.n || c < 0 || c >= m.n {
		panic(expr.ErrIndexOutOfRange)
	}
}

// lowerIndex returns the packed offset of the strictly-lower position
// (r, c), r > c, or -1 when the profile does not store it.
func (m *Matrix) lowerIndex(r, c int) int {
	if m.order == expr.RowMajor {
		length := m.lowerStart[r+1] - m.lowerStart[r]
		if c < r-length {
			return -1
		}

		return m.lowerStart[r] + c - (r - length)
	}
	length := m.lowerStart[c+1] - m.lowerStart[c]
	if r > c+length {
		return -1
	}

	return m.lowerStart[c] + r - c - 1
}

// upperIndex returns the packed offset of the strictly-upper position
// (r, c), r < c, or -1 when the profile does not store it.
func (m *Matrix) upperIndex(r, c int) int {
	if m.order == expr.RowMajor {
		length := m.upperStart[c+1] - m.upperStart[c]
		if r < c-length {
			return -1
		}

		return m.upperStart[c] + r - (c - length)
	}
	length := m.upperStart[r+1] - m.upperStart[r]
	if c > r+length {
		return -1
	}

	return m.upperStart[r] + c - r - 1
}

// At returns the coefficient at (r, c); positions outside the stored
// profile read as zero.
func (m *Matrix) At(r, c int) float64 {
	m.checkIndex(r, c)
	switch {
	case r == c:
		return m.diag[r]
	case r > c:
		if idx := m.lowerIndex(r, c); idx >= 0 {
			return m.lower[idx]
		}
	default:
		if idx := m.upperIndex(r, c); idx >= 0 {
			return m.upper[idx]
		}
	}

	return 0
}

// Set writes the coefficient at (r, c). The diagonal is always writable;
// an off-diagonal position outside the profile panics with
// ErrOutsideProfile, since widening the profile would invalidate the
// packed offsets.
func (m *Matrix) Set(r, c int, v float64) {
	m.checkIndex(r, c)
	switch {
	case r == c:
		m.diag[r] = v
	case r > c:
		idx := m.lowerIndex(r, c)
		if idx < 0 {
			panic(ErrOutsideProfile)
		}
		m.lower[idx] = v
	default:
		idx := m.upperIndex(r, c)
		if idx < 0 {
			panic(ErrOutsideProfile)
		}
		m.upper[idx] = v
	}
}

// Clone returns a deep copy sharing no storage with m.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{
		n:          m.n,
		order:      m.order,
		diag:       append([]float64(nil), m.diag...),
		lower:      append([]float64(nil), m.lower...),
		upper:      append([]float64(nil), m.upper...),
		lowerStart: append([]int(nil), m.lowerStart...),
		upperStart: append([]int(nil), m.upperStart...),
	}

	return out
}

// ToDense materializes the full matrix, profile zeros and all.
func (m *Matrix) ToDense() *expr.Dense[float64] { return expr.Materialize[float64](m) }

// lowerSeg returns lower segment i and the matrix index of its first entry
// (first stored column of row i for RowMajor, row i+1 for ColMajor).
func (m *Matrix) lowerSeg(i int) ([]float64, int) {
	seg := m.lower[m.lowerStart[i]:m.lowerStart[i+1]]
	if m.order == expr.RowMajor {
		return seg, i - len(seg)
	}

	return seg, i + 1
}

// upperSeg returns upper segment i and the matrix index of its first entry
// (first stored row of column i for RowMajor, column i+1 for ColMajor).
func (m *Matrix) upperSeg(i int) ([]float64, int) {
	seg := m.upper[m.upperStart[i]:m.upperStart[i+1]]
	if m.order == expr.RowMajor {
		return seg, i - len(seg)
	}

	return seg, i + 1
}

// segIter is a cursor over one packed segment, pairing the storage position
// with the matrix index (column within a row segment, row within a column
// segment) it refers to.
type segIter struct {
	data []float64
	idx  int // matrix index of data[pos]
	pos  int
}

// newSegIter opens a cursor at the first entry of a segment.
func newSegIter(data []float64, first int) segIter {
	return segIter{data: data, idx: first}
}

func (it *segIter) valid() bool    { return it.pos < len(it.data) }
func (it *segIter) index() int     { return it.idx }
func (it *segIter) value() float64 { return it.data[it.pos] }

// advance moves the cursor k entries forward without touching storage, so
// it may legally land past the end of a short segment; the caller checks
// valid() or bounds the follow-up walk.
func (it *segIter) advance(k int) {
	it.pos += k
	it.idx += k
}

// next steps to the following entry.
func (it *segIter) next() { it.advance(1) }

// tail returns the k entries starting at the cursor as a slice.
func (it *segIter) tail(k int) []float64 { return it.data[it.pos : it.pos+k] }

// alignOverlap advances whichever cursor starts earlier until both sit at
// the same matrix index, then reports how many entries overlap before
// bound. Zero means the spans never meet below the bound.
func alignOverlap(a, b *segIter, bound int) int {
	if d := a.index() - b.index(); d > 0 {
		b.advance(d)
	} else if d < 0 {
		a.advance(-d)
	}
	if n := bound - a.index(); n > 0 {
		return n
	}

	return 0
}
