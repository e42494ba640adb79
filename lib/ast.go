package lib

type binaryExprOpType int

const (
	BinaryExprOpAdd binaryExprOpType = iota
	BinaryExprOpSubtract
	BinaryExprOpMultiply
	BinaryExprOpDivide
)

type Expression interface {
	isExpression()
}

func (b BinaryExpression) isExpression() {}
func (n NumberLiteral) isExpression()    {}

type NumberLiteral struct {
	Value float64
}

// BinaryExpression is a binary arithmetic operation. Grouped marks nodes
// that came from a parenthesized subexpression so that precedence rotation
// never restructures them.
type BinaryExpression struct {
	Left    Expression
	Right   Expression
	Op      binaryExprOpType
	Grouped bool
}
