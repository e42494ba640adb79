package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func requireKind(t *testing.T, err error, kind ErrorKind) {
	require.Error(t, err)
	actual, ok := KindOf(err)
	require.True(t, ok, "error is not a classified *Error: %v", err)
	require.Equal(t, kind, actual, "error kind for %v", err)
}

func TestParseSingleNumber(t *testing.T) {
	root, err := Parse("42")
	require.NoError(t, err)

	num, ok := root.(NumberLiteral)
	require.True(t, ok)
	require.Equal(t, 42.0, num.Value)
}

func TestParsePrecedence(t *testing.T) {
	// 5 + 3 * 2 must parse as 5 + (3 * 2)
	root, err := Parse("5 + 3 * 2")
	require.NoError(t, err)

	add, ok := root.(BinaryExpression)
	require.True(t, ok)
	require.Equal(t, BinaryExprOpAdd, add.Op)

	left, ok := add.Left.(NumberLiteral)
	require.True(t, ok)
	require.Equal(t, 5.0, left.Value)

	mul, ok := add.Right.(BinaryExpression)
	require.True(t, ok)
	require.Equal(t, BinaryExprOpMultiply, mul.Op)
}

func TestParseParensBeatPrecedence(t *testing.T) {
	// (5 + 3) * 2 must keep the addition grouped under the multiplication.
	root, err := Parse("(5 + 3) * 2")
	require.NoError(t, err)

	mul, ok := root.(BinaryExpression)
	require.True(t, ok)
	require.Equal(t, BinaryExprOpMultiply, mul.Op)

	add, ok := mul.Left.(BinaryExpression)
	require.True(t, ok)
	require.Equal(t, BinaryExprOpAdd, add.Op)
	require.True(t, add.Grouped)

	right, ok := mul.Right.(NumberLiteral)
	require.True(t, ok)
	require.Equal(t, 2.0, right.Value)
}

func TestParseLeftAssociative(t *testing.T) {
	// 8 - 3 - 2 must parse as (8 - 3) - 2
	root, err := Parse("8 - 3 - 2")
	require.NoError(t, err)

	outer, ok := root.(BinaryExpression)
	require.True(t, ok)
	require.Equal(t, BinaryExprOpSubtract, outer.Op)

	inner, ok := outer.Left.(BinaryExpression)
	require.True(t, ok)
	require.Equal(t, BinaryExprOpSubtract, inner.Op)

	last, ok := outer.Right.(NumberLiteral)
	require.True(t, ok)
	require.Equal(t, 2.0, last.Value)
}

func TestParseNestedParens(t *testing.T) {
	root, err := Parse("((5 + 3) * 2) - 10 / 5")
	require.NoError(t, err)

	sub, ok := root.(BinaryExpression)
	require.True(t, ok)
	require.Equal(t, BinaryExprOpSubtract, sub.Op)

	left, ok := sub.Left.(BinaryExpression)
	require.True(t, ok)
	require.Equal(t, BinaryExprOpMultiply, left.Op)
	require.True(t, left.Grouped)

	div, ok := sub.Right.(BinaryExpression)
	require.True(t, ok)
	require.Equal(t, BinaryExprOpDivide, div.Op)
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse("")
	requireKind(t, err, KindMalformedExpression)
}

func TestParseWhitespaceOnly(t *testing.T) {
	_, err := Parse("   ")
	requireKind(t, err, KindMalformedExpression)
}

func TestParseUnclosedParen(t *testing.T) {
	_, err := Parse("(1 + 2")
	requireKind(t, err, KindMismatchedParentheses)
}

func TestParseDanglingRParen(t *testing.T) {
	_, err := Parse("1 + 2)")
	requireKind(t, err, KindMismatchedParentheses)
}

func TestParseConsecutiveOperators(t *testing.T) {
	_, err := Parse("1 + + 2")
	requireKind(t, err, KindMalformedExpression)
}

func TestParseTrailingOperator(t *testing.T) {
	_, err := Parse("1 +")
	requireKind(t, err, KindMalformedExpression)
}

func TestParseLeadingOperator(t *testing.T) {
	// Unary minus is not supported.
	_, err := Parse("-5 + 3")
	requireKind(t, err, KindMalformedExpression)
}

func TestParseEmptyParens(t *testing.T) {
	_, err := Parse("()")
	requireKind(t, err, KindMalformedExpression)
}

func TestParseAdjacentNumbers(t *testing.T) {
	_, err := Parse("1 2")
	requireKind(t, err, KindMalformedExpression)
}

func TestParseInvalidCharacterWins(t *testing.T) {
	// The lexical error must surface even though the parser sees a
	// truncated token stream and fails first.
	_, err := Parse("1 + a")
	requireKind(t, err, KindInvalidCharacter)
}
