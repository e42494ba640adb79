package lib

import "fmt"

// Evaluate computes the numeric value of an expression tree. The left
// operand is always evaluated before the right one.
func Evaluate(expr Expression) (float64, error) {
	switch e := expr.(type) {
	case NumberLiteral:
		return e.Value, nil
	case BinaryExpression:
		left, err := Evaluate(e.Left)
		if err != nil {
			return 0, err
		}
		right, err := Evaluate(e.Right)
		if err != nil {
			return 0, err
		}
		return applyBinaryOp(e.Op, left, right)
	default:
		return 0, malformed(fmt.Sprintf("unknown expression node %T", expr))
	}
}

func applyBinaryOp(op binaryExprOpType, left float64, right float64) (float64, error) {
	switch op {
	case BinaryExprOpAdd:
		return left + right, nil
	case BinaryExprOpSubtract:
		return left - right, nil
	case BinaryExprOpMultiply:
		return left * right, nil
	case BinaryExprOpDivide:
		if right == 0 {
			return 0, divisionByZero()
		}
		return left / right, nil
	default:
		return 0, malformed(fmt.Sprintf("unknown operator %d", op))
	}
}
