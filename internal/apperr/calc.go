package apperr

import (
	"errors"
	"fmt"
)

// ErrEmptyExpression is returned when an expression produces no value at all.
var ErrEmptyExpression = errors.New("empty expression")

// CalculationError is implemented by every error the pipeline reports for
// bad input.
type CalculationError interface {
	error
	Kind() string
}

type MalformedNumberError struct {
	Literal string
	Err     error
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("malformed number %q", e.Literal)
}

func (e *MalformedNumberError) Unwrap() error {
	return e.Err
}

func (e *MalformedNumberError) Kind() string {
	return "malformed_number"
}

// UnbalancedParenthesesError reports either a ')' without a matching '(' or
// Unclosed '(' left open at the end of the expression.
type UnbalancedParenthesesError struct {
	Unclosed        int
	UnexpectedClose bool
}

func (e *UnbalancedParenthesesError) Error() string {
	if e.UnexpectedClose {
		return "unbalanced parentheses: unexpected closing parenthesis"
	}
	return fmt.Sprintf("unbalanced parentheses: %d unclosed", e.Unclosed)
}

func (e *UnbalancedParenthesesError) Kind() string {
	return "unbalanced_parentheses"
}

type InsufficientOperandsError struct {
	Operator string
	Have     int
}

func (e *InsufficientOperandsError) Error() string {
	return fmt.Sprintf("operator %s needs 2 operands, have %d", e.Operator, e.Have)
}

func (e *InsufficientOperandsError) Kind() string {
	return "insufficient_operands"
}

type TrailingOperandsError struct {
	Remaining int
}

func (e *TrailingOperandsError) Error() string {
	return fmt.Sprintf("expression left %d values on the stack", e.Remaining)
}

func (e *TrailingOperandsError) Kind() string {
	return "trailing_operands"
}

// KindOf returns the kind of a calculation error anywhere in err's chain,
// "empty_expression" for ErrEmptyExpression, or "" otherwise.
func KindOf(err error) string {
	if err == nil {
		return ""
	}
	var ce CalculationError
	if errors.As(err, &ce) {
		return ce.Kind()
	}
	if errors.Is(err, ErrEmptyExpression) {
		return "empty_expression"
	}
	return ""
}

// IsCalculation reports whether err was caused by the expression itself.
func IsCalculation(err error) bool {
	return KindOf(err) != ""
}
