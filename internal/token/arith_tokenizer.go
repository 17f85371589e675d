package token

import (
	"strings"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
)

var (
	_ Tokenizer = (*ArithTokenizer)(nil)
	_ Validator = (*ArithTokenizer)(nil)
)

type ArithTokenizer struct{}

func NewArithTokenizer() *ArithTokenizer {
	return &ArithTokenizer{}
}

// Tokenize converts the input string into a slice of Tokens.
// Example: Input: `(1.5 + 2) * 3`
// Digits and decimal points accumulate into a number, the four operators and
// both brackets become tokens of their own, everything else is dropped.
func (t *ArithTokenizer) Tokenize(input string) []Token {
	tokens := make([]Token, 0, len(input))
	var number strings.Builder

	flush := func() {
		if number.Len() > 0 {
			tokens = append(tokens, Number(number.String()))
			number.Reset()
		}
	}

	for i := 0; i < len(input); i++ {
		ch := input[i]
		if isNumberChar(ch) {
			number.WriteByte(ch)
			continue
		}
		flush()

		switch ch {
		case '(':
			tokens = append(tokens, Token{Type: LPAREN, Value: "("})
		case ')':
			tokens = append(tokens, Token{Type: RPAREN, Value: ")"})
		default:
			if op, ok := ParseOperator(ch); ok {
				tokens = append(tokens, Op(op))
			}
		}
	}
	flush()

	return tokens
}

// Validate rejects number literals that cannot be parsed and brackets that
// do not pair up.
func (t *ArithTokenizer) Validate(tokens []Token) error {
	depth := 0

	for _, tok := range tokens {
		switch tok.Type {
		case NUMBER:
			if !IsNumber(tok.Value) {
				return &apperr.MalformedNumberError{Literal: tok.Value}
			}
		case LPAREN:
			depth++
		case RPAREN:
			depth--
			if depth < 0 {
				return &apperr.UnbalancedParenthesesError{UnexpectedClose: true}
			}
		}
	}

	if depth != 0 {
		return &apperr.UnbalancedParenthesesError{Unclosed: depth}
	}

	return nil
}

// Lex tokenizes input and returns the raw token strings.
func Lex(input string) []string {
	return Strings(NewArithTokenizer().Tokenize(input))
}
