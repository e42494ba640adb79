package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateLiteral(t *testing.T) {
	result, err := Evaluate(NumberLiteral{Value: 7.5})
	require.NoError(t, err)
	require.Equal(t, 7.5, result)
}

func TestEvaluateBinaryOps(t *testing.T) {
	two := NumberLiteral{Value: 2}
	eight := NumberLiteral{Value: 8}

	result, err := Evaluate(BinaryExpression{Left: eight, Right: two, Op: BinaryExprOpAdd})
	require.NoError(t, err)
	require.Equal(t, 10.0, result)

	result, err = Evaluate(BinaryExpression{Left: eight, Right: two, Op: BinaryExprOpSubtract})
	require.NoError(t, err)
	require.Equal(t, 6.0, result)

	result, err = Evaluate(BinaryExpression{Left: eight, Right: two, Op: BinaryExprOpMultiply})
	require.NoError(t, err)
	require.Equal(t, 16.0, result)

	result, err = Evaluate(BinaryExpression{Left: eight, Right: two, Op: BinaryExprOpDivide})
	require.NoError(t, err)
	require.Equal(t, 4.0, result)
}

func TestEvaluateDivisionByZero(t *testing.T) {
	_, err := Evaluate(BinaryExpression{
		Left:  NumberLiteral{Value: 10},
		Right: NumberLiteral{Value: 0},
		Op:    BinaryExprOpDivide,
	})
	requireKind(t, err, KindDivisionByZero)
}

func TestEvaluateDivisionByComputedZero(t *testing.T) {
	// The right operand only becomes zero after evaluation.
	_, err := Evaluate(BinaryExpression{
		Left: NumberLiteral{Value: 1},
		Right: BinaryExpression{
			Left:  NumberLiteral{Value: 3},
			Right: NumberLiteral{Value: 3},
			Op:    BinaryExprOpSubtract,
		},
		Op: BinaryExprOpDivide,
	})
	requireKind(t, err, KindDivisionByZero)
}

func TestEvaluateErrorPropagatesFromDeepChild(t *testing.T) {
	_, err := Evaluate(BinaryExpression{
		Left: BinaryExpression{
			Left:  NumberLiteral{Value: 1},
			Right: NumberLiteral{Value: 0},
			Op:    BinaryExprOpDivide,
		},
		Right: NumberLiteral{Value: 5},
		Op:    BinaryExprOpAdd,
	})
	requireKind(t, err, KindDivisionByZero)
}
