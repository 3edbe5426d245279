// SPDX-License-Identifier: MIT
package expr

// Test-Bridge (White-Box) for the Evaluation Engine
//
// Purpose:
//   - Expose the unexported aliasing walk, kernel dispatcher and nesting
//     threshold to expr_test ONLY, so strategy selection can be verified
//     without widening the production API.
//
// Provided Surface:
//   - AliasScanFloat64_TestOnly: forwards to the private aliasScan walk.
//   - FastAssignFloat64_TestOnly: forwards to the private kernel dispatcher,
//     reporting whether a whole-buffer kernel handled the tree.
//   - BinaryOperandsFloat64_TestOnly / UnaryOperandFloat64_TestOnly: peek at
//     node operands to observe materialize-on-nesting.
//   - NestCostThreshold_TestOnly: the cost bound behind FlagEvalBeforeNesting.

// NestCostThreshold_TestOnly mirrors the private nesting cost bound.
const NestCostThreshold_TestOnly = nestCostThreshold

// AliasScanFloat64_TestOnly forwards to the private aliasScan walk.
func AliasScanFloat64_TestOnly(e Expr[float64], dst *Dense[float64]) (found, remapped bool) {
	return aliasScan[float64](e, dst)
}

// FastAssignFloat64_TestOnly forwards to the private kernel dispatcher. It
// reports true when a whole-buffer kernel fully evaluated src into dst.
func FastAssignFloat64_TestOnly(dst *Dense[float64], src Expr[float64]) bool {
	return fastAssign[float64](dst, src)
}

// BinaryOperandsFloat64_TestOnly returns the operands of a binary node, or
// ok=false when e is not one.
func BinaryOperandsFloat64_TestOnly(e Expr[float64]) (lhs, rhs Expr[float64], ok bool) {
	b, isB := e.(*BinaryExpr[float64])
	if !isB {
		return nil, nil, false
	}
	return b.lhs, b.rhs, true
}

// UnaryOperandFloat64_TestOnly returns the operand of a unary node, or
// ok=false when e is not one.
func UnaryOperandFloat64_TestOnly(e Expr[float64]) (operand Expr[float64], ok bool) {
	u, isU := e.(*UnaryExpr[float64])
	if !isU {
		return nil, false
	}
	return u.operand, true
}
