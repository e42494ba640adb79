package lib

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the pipeline can produce.
type ErrorKind int

const (
	KindInvalidCharacter ErrorKind = iota
	KindMismatchedParentheses
	KindMalformedExpression
	KindDivisionByZero
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidCharacter:
		return "invalid character"
	case KindMismatchedParentheses:
		return "mismatched parentheses"
	case KindMalformedExpression:
		return "malformed expression"
	case KindDivisionByZero:
		return "division by zero"
	default:
		return "unknown error"
	}
}

// Error is the only error type the tokenizer, parser and evaluator return.
// Line and Col are 1-based and zero when the failure has no position (eg
// division by zero).
type Error struct {
	Kind    ErrorKind
	Message string
	Line    int
	Col     int
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Line, e.Col, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// KindOf reports the classification of any error returned by this package.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func invalidCharacter(ch rune, loc charLocation) *Error {
	return &Error{
		Kind:    KindInvalidCharacter,
		Message: fmt.Sprintf("unexpected character %q", ch),
		Line:    loc.line,
		Col:     loc.col,
	}
}

func mismatchedParens(msg string, loc charLocation) *Error {
	return &Error{
		Kind:    KindMismatchedParentheses,
		Message: msg,
		Line:    loc.line,
		Col:     loc.col,
	}
}

func malformed(msg string) *Error {
	return &Error{Kind: KindMalformedExpression, Message: msg}
}

func malformedAt(msg string, loc charLocation) *Error {
	return &Error{
		Kind:    KindMalformedExpression,
		Message: msg,
		Line:    loc.line,
		Col:     loc.col,
	}
}

func divisionByZero() *Error {
	return &Error{Kind: KindDivisionByZero, Message: "right operand of '/' is zero"}
}
