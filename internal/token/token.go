package token

import (
	"strconv"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
)

type Type int

const (
	NUMBER Type = iota
	OPERATOR
	LPAREN
	RPAREN
)

func (t Type) String() string {
	switch t {
	case NUMBER:
		return "NUMBER"
	case OPERATOR:
		return "OPERATOR"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with its type and literal value.
type Token struct {
	Type  Type
	Value string
}

func Number(literal string) Token {
	return Token{Type: NUMBER, Value: literal}
}

func Op(op Operator) Token {
	return Token{Type: OPERATOR, Value: op.String()}
}

// Float parses a NUMBER token. Literals that do not have the
// digits[.digits] shape, such as "1.2.3" or ".5", are rejected.
func (t Token) Float() (float64, error) {
	if t.Type != NUMBER || !IsNumber(t.Value) {
		return 0, &apperr.MalformedNumberError{Literal: t.Value}
	}
	v, err := strconv.ParseFloat(t.Value, 64)
	if err != nil {
		return 0, &apperr.MalformedNumberError{Literal: t.Value, Err: err}
	}
	return v, nil
}

// Operator returns the operator carried by an OPERATOR token.
func (t Token) Operator() (Operator, bool) {
	if t.Type != OPERATOR || len(t.Value) != 1 {
		return 0, false
	}
	return ParseOperator(t.Value[0])
}

func (t Token) String() string {
	return t.Value
}

// Strings returns the literal text of every token, in order.
func Strings(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Value
	}
	return out
}

// IsNumber reports whether s is one or more digits, optionally followed by
// a decimal point and one or more digits.
func IsNumber(s string) bool {
	intDigits := 0
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		intDigits++
	}
	if intDigits == 0 {
		return false
	}
	if i == len(s) {
		return true
	}
	if s[i] != '.' {
		return false
	}
	i++
	fracStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i == len(s) && i > fracStart
}

// IsNumberLike reports whether s is made only of digits and decimal points,
// i.e. whatever the tokenizer would have accumulated as a number.
func IsNumberLike(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isNumberChar(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isNumberChar(ch byte) bool {
	return isDigit(ch) || ch == '.'
}
