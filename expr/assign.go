// SPDX-License-Identifier: MIT
package expr

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlalg/scalar"
)

// Assign evaluates src into dst in one traversal. The engine proceeds in
// stages:
//
//	Stage 1: aliasing - if dst's storage appears among src's leaves, decide
//	         whether the overlap is same-index (safe to fuse) or goes
//	         through an index-remapping view (src is materialized first).
//	Stage 2: shape - a *Dense destination is resized to src's shape; any
//	         other destination panics with ErrShapeMismatch on disagreement.
//	Stage 3: kernel dispatch - trees whose flags and leaves allow it are
//	         handed to whole-buffer float64 kernels; everything else runs
//	         the scalar loop in dst's storage order.
func Assign[T scalar.Scalar](dst Mutable[T], src Expr[T]) {
	// Stage 1: aliasing analysis against dst's underlying storage.
	dstLeaf := mutableLeaf[T](dst)
	if dstLeaf != nil {
		found, remapped := aliasScan[T](src, dstLeaf)
		if found {
			wholeDst, _ := dst.(*Dense[T])
			if remapped || wholeDst != dstLeaf {
				src = Materialize[T](src)
			}
		}
	}

	AssignNoAlias[T](dst, src)
}

// AssignNoAlias is Assign without the aliasing analysis. The caller asserts
// that dst's storage does not overlap src's leaves at remapped positions;
// same-index overlap (dst appearing as a plain operand of a coefficient-wise
// tree) is always safe.
func AssignNoAlias[T scalar.Scalar](dst Mutable[T], src Expr[T]) {
	// Stage 2: shape resolution.
	if dst.Rows() != src.Rows() || dst.Cols() != src.Cols() {
		dd, ok := dst.(*Dense[T])
		if !ok {
			panic(ErrShapeMismatch)
		}
		dd.Resize(src.Rows(), src.Cols())
	}

	// Stage 3: kernel dispatch, then the generic loop.
	if dd, ok := dst.(*Dense[T]); ok {
		if fastAssign[T](dd, src) {
			return
		}
		assignDense[T](dd, src)
		return
	}
	assignGeneric[T](dst, src)
}

// Materialize evaluates e into a fresh Dense laid out in e's natural order.
func Materialize[T scalar.Scalar](e Expr[T]) *Dense[T] {
	d := NewDenseOrdered[T](e.Rows(), e.Cols(), e.Flags().order())
	AssignNoAlias[T](d, e)
	return d
}

// AddAssign accumulates src into dst coefficient-wise. Building the sum with
// dst as a plain operand keeps the overlap same-index, so no temporary is
// allocated and packed float64 destinations take the axpy-style kernels.
func AddAssign[T scalar.Scalar](dst Mutable[T], src Expr[T]) {
	Assign[T](dst, Add[T](dst, src))
}

// SubAssign subtracts src from dst coefficient-wise.
func SubAssign[T scalar.Scalar](dst Mutable[T], src Expr[T]) {
	Assign[T](dst, Sub[T](dst, src))
}

// MulAssign multiplies dst by src coefficient-wise.
func MulAssign[T scalar.Scalar](dst Mutable[T], src Expr[T]) {
	Assign[T](dst, CwiseProduct[T](dst, src))
}

// DivAssign divides dst by src coefficient-wise.
func DivAssign[T scalar.Scalar](dst Mutable[T], src Expr[T]) {
	Assign[T](dst, CwiseQuotient[T](dst, src))
}

// ScaleAssign multiplies every coefficient of dst by s.
func ScaleAssign[T scalar.Scalar](dst Mutable[T], s T) {
	Assign[T](dst, ScalarMul[T](dst, s))
}

// mutableLeaf resolves the storage leaf under a destination: dst itself when
// it is a Dense, or the Dense at the bottom of a single-operand view chain.
// A nil result disables aliasing analysis for destinations from outside the
// package.
func mutableLeaf[T scalar.Scalar](m Mutable[T]) *Dense[T] {
	var e any = m
	for {
		if d, ok := e.(*Dense[T]); ok {
			return d
		}
		h, ok := e.(operandHolder)
		if !ok {
			return nil
		}
		ops := h.operands()
		if len(ops) != 1 {
			return nil
		}
		e = ops[0]
	}
}

// aliasScan walks src's operand tree looking for dst's storage. found
// reports any occurrence; remapped reports an occurrence on a path through
// an index-remapping view, which rules out fused in-place evaluation.
func aliasScan[T scalar.Scalar](e any, dst *Dense[T]) (found, remapped bool) {
	if d, ok := e.(*Dense[T]); ok {
		return d == dst, false
	}
	h, ok := e.(operandHolder)
	if !ok {
		return false, false
	}
	_, isView := e.(viewNode)
	for _, o := range h.operands() {
		f, r := aliasScan[T](o, dst)
		if f {
			found = true
			remapped = remapped || r || isView
		}
	}
	return found, remapped
}

// assignDense runs the scalar loop against a Dense destination, writing the
// backing buffer sequentially in its storage order.
func assignDense[T scalar.Scalar](dst *Dense[T], src Expr[T]) {
	var (
		idx  int
		r, c int
	)
	if dst.order == RowMajor {
		for r = 0; r < dst.rows; r++ {
			for c = 0; c < dst.cols; c++ {
				dst.data[idx] = src.At(r, c)
				idx++
			}
		}
		return
	}
	for c = 0; c < dst.cols; c++ {
		for r = 0; r < dst.rows; r++ {
			dst.data[idx] = src.At(r, c)
			idx++
		}
	}
}

// assignGeneric runs the scalar loop against an arbitrary Mutable
// destination, ordering the traversal by the destination's advertised
// majorness.
func assignGeneric[T scalar.Scalar](dst Mutable[T], src Expr[T]) {
	var (
		rows = dst.Rows()
		cols = dst.Cols()
		r, c int
	)
	if dst.Flags().order() == RowMajor {
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				dst.Set(r, c, src.At(r, c))
			}
		}
		return
	}
	for c = 0; c < cols; c++ {
		for r = 0; r < rows; r++ {
			dst.Set(r, c, src.At(r, c))
		}
	}
}

// fastAssign routes eligible float64 trees to whole-buffer kernels. It
// reports false when no kernel applies, leaving the scalar loop to finish
// the job. Every kernel used here writes position i from reads at position
// i only, so same-index aliasing with dst is safe.
func fastAssign[T scalar.Scalar](dst *Dense[T], src Expr[T]) bool {
	dd, ok := any(dst).(*Dense[float64])
	if !ok {
		return false
	}
	return fastAssignFloat64(dd, any(src))
}

func fastAssignFloat64(dst *Dense[float64], src any) bool {
	switch s := src.(type) {
	case *Dense[float64]:
		if s.order == dst.order {
			copy(dst.data, s.data)
			return true
		}

	case constantExpr[float64]:
		for i := range dst.data {
			dst.data[i] = s.v
		}
		return true

	case *UnaryExpr[float64]:
		if !s.flags.Has(FlagVectorizable) {
			return false
		}
		return fastUnaryFloat64(dst, s)

	case *BinaryExpr[float64]:
		if !s.flags.Has(FlagVectorizable) {
			return false
		}
		return fastBinaryFloat64(dst, s)
	}
	return false
}

// packedOperand returns the backing buffer of op when it is a packed
// float64 leaf matching dst's order and shape.
func packedOperand(dst *Dense[float64], op any) ([]float64, bool) {
	d, ok := op.(*Dense[float64])
	if !ok || d.order != dst.order || d.rows != dst.rows || d.cols != dst.cols {
		return nil, false
	}
	return d.data, true
}

func fastUnaryFloat64(dst *Dense[float64], e *UnaryExpr[float64]) bool {
	buf, ok := packedOperand(dst, e.operand)
	if !ok {
		return false
	}

	switch op := e.op.(type) {
	case NegOp[float64]:
		floats.ScaleTo(dst.data, -1, buf)
		return true
	case bound1st[float64]:
		if _, isMul := op.op.(MulOp[float64]); isMul {
			floats.ScaleTo(dst.data, op.a, buf)
			return true
		}
	case bound2nd[float64]:
		switch op.op.(type) {
		case MulOp[float64]:
			floats.ScaleTo(dst.data, op.b, buf)
			return true
		case AddOp[float64]:
			copy(dst.data, buf)
			floats.AddConst(op.b, dst.data)
			return true
		}
	}
	return false
}

func fastBinaryFloat64(dst *Dense[float64], e *BinaryExpr[float64]) bool {
	lbuf, lok := packedOperand(dst, e.lhs)
	if lok {
		// a + α·b collapses into one axpy-style pass.
		if ue, isU := e.rhs.(*UnaryExpr[float64]); isU {
			if _, isAdd := e.op.(AddOp[float64]); isAdd {
				if b1, isB := ue.op.(bound1st[float64]); isB {
					if _, isMul := b1.op.(MulOp[float64]); isMul {
						if rbuf, rok := packedOperand(dst, ue.operand); rok {
							floats.AddScaledTo(dst.data, lbuf, b1.a, rbuf)
							return true
						}
					}
				}
			}
		}
	}

	rbuf, rok := packedOperand(dst, e.rhs)
	if !lok || !rok {
		return false
	}

	switch e.op.(type) {
	case AddOp[float64]:
		floats.AddTo(dst.data, lbuf, rbuf)
	case SubOp[float64]:
		floats.SubTo(dst.data, lbuf, rbuf)
	case MulOp[float64]:
		floats.MulTo(dst.data, lbuf, rbuf)
	case DivOp[float64]:
		floats.DivTo(dst.data, lbuf, rbuf)
	default:
		return false
	}
	return true
}
