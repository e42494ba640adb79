package lib

import (
	"fmt"
	"strconv"
)

// Parse tokenizes and parses an expression string into an Expression tree.
// The lexer runs in its own goroutine feeding a token buffer that the parser
// consumes. Lexical errors win over parse errors because a lexical failure
// truncates the token stream and anything the parser reports afterwards is
// a symptom rather than the cause.
func Parse(expression string) (Expression, error) {
	buffer := newTokenBuffer()
	p := parser{reader: buffer}
	var lexErr error = nil

	go (func() {
		lexErr = lex(expression, buffer.Write)
		buffer.Done()
	})()

	root, parseErr := p.scan()

	// Drain the buffer so the lexer goroutine can finish; once done is
	// observed, lexErr is settled.
	for {
		_, done, err := buffer.Next()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
	}

	if lexErr != nil {
		return nil, lexErr
	}
	return root, parseErr
}

type parser struct {
	reader tokenReader
}

func (p *parser) scan() (Expression, error) {
	_, done, err := p.reader.Peek()
	if err != nil {
		return nil, err
	}
	if done {
		return nil, malformed("empty expression")
	}

	root, err := p.scanExpr()
	if err != nil {
		return nil, err
	}

	// The whole input must be one expression.
	next, done, err := p.reader.Next()
	if err != nil {
		return nil, err
	}
	if !done {
		if next.tokType == tokenTypeRParen {
			return nil, mismatchedParens("')' without matching '('", next.location)
		}
		return nil, malformedAt(
			fmt.Sprintf("unexpected <%s> after expression", tokenValueString(next)),
			next.location)
	}

	return root, nil
}

func (p *parser) scanExpr() (Expression, error) {
	left, err := p.scanOperand()
	if err != nil {
		return nil, err
	}

	for {
		opToken, done, err := p.reader.Peek()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}

		opType, isOp := getExprBinaryOpType(opToken)
		if !isOp {
			break
		}

		_, _, err = p.reader.Next()
		if err != nil {
			return nil, err
		}

		right, err := p.scanOperand()
		if err != nil {
			return nil, err
		}

		left = binaryExprTreeAppend(left, right, opType)
	}

	return left, nil
}

func (p *parser) scanOperand() (Expression, error) {
	tok, done, err := p.reader.Next()
	if err != nil {
		return nil, err
	}
	if done {
		return nil, malformed("expecting a value but expression ended")
	}

	// Number literals
	if tok.tokType == tokenTypeNumber {
		value, err := strconv.ParseFloat(string(tok.value), 64)
		if err != nil {
			return nil, malformedAt(
				fmt.Sprintf("invalid number %q", string(tok.value)),
				tok.location)
		}
		return NumberLiteral{Value: value}, nil
	}

	// Parentheticals
	if tok.tokType == tokenTypeLParen {
		return p.scanParenthetical(tok)
	}

	// An operator or ')' where a value belongs means an operand is missing.
	return nil, malformedAt(
		fmt.Sprintf("expecting a value but got <%s>", tokenValueString(tok)),
		tok.location)
}

func (p *parser) scanParenthetical(lparen token) (Expression, error) {
	expr, err := p.scanExpr()
	if err != nil {
		return nil, err
	}

	next, done, err := p.reader.Next()
	if err != nil {
		return nil, err
	}
	if done {
		return nil, mismatchedParens("'(' is never closed", lparen.location)
	}
	if next.tokType != tokenTypeRParen {
		return nil, mismatchedParens(
			fmt.Sprintf("expecting ')' but got <%s>", tokenValueString(next)),
			next.location)
	}

	// Mark the group atomic so precedence rotation cannot reach inside it.
	if binary, ok := expr.(BinaryExpression); ok {
		binary.Grouped = true
		return binary, nil
	}
	return expr, nil
}

func tokenValueString(tok token) string {
	switch tok.tokType {
	case tokenTypeNumber:
		return string(tok.value)
	case tokenTypeLParen:
		return "("
	case tokenTypeRParen:
		return ")"
	case tokenTypePlus:
		return "+"
	case tokenTypeMinus:
		return "-"
	case tokenTypeSlash:
		return "/"
	case tokenTypeAsterisk:
		return "*"
	default:
		return "?"
	}
}

func getExprBinaryOpType(tok token) (binaryExprOpType, bool) {
	switch tok.tokType {
	case tokenTypePlus:
		return BinaryExprOpAdd, true
	case tokenTypeMinus:
		return BinaryExprOpSubtract, true
	case tokenTypeAsterisk:
		return BinaryExprOpMultiply, true
	case tokenTypeSlash:
		return BinaryExprOpDivide, true
	}

	return 0, false
}

// binaryExprTreeAppend extends the running expression tree with one more
// operator and operand. When the new operator binds tighter than the tree's
// top operator it rotates into the right spine, otherwise it stacks on top,
// which keeps equal-precedence chains left associative.
func binaryExprTreeAppend(left Expression, right Expression, rightOp binaryExprOpType) Expression {
	leftBinary, leftIsBinary := left.(BinaryExpression)
	if !leftIsBinary || leftBinary.Grouped {
		return BinaryExpression{
			Left:  left,
			Right: right,
			Op:    rightOp,
		}
	}

	leftOp := leftBinary.Op
	if rightIsGreaterPrecendence(leftOp, rightOp) {
		return BinaryExpression{
			Left:  leftBinary.Left,
			Right: binaryExprTreeAppend(leftBinary.Right, right, rightOp),
			Op:    leftOp,
		}
	}
	return BinaryExpression{
		Left:  leftBinary,
		Right: right,
		Op:    rightOp,
	}
}

func rightIsGreaterPrecendence(left binaryExprOpType, right binaryExprOpType) bool {
	return getPrecendence(left) < getPrecendence(right)
}

func getPrecendence(op binaryExprOpType) int {
	switch op {
	case BinaryExprOpAdd, BinaryExprOpSubtract:
		return 1
	case BinaryExprOpMultiply, BinaryExprOpDivide:
		return 2
	default:
		return 100
	}
}
