package rpn

import (
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
	"github.com/DjordjeVuckovic/rpn-calc/internal/token"
)

// Compiler turns infix arithmetic into postfix using the shunting-yard
// algorithm.
type Compiler struct {
	tokenizer token.Tokenizer
	validator token.Validator
}

type CompilerOption func(*Compiler)

func WithTokenizer(t token.Tokenizer) CompilerOption {
	return func(c *Compiler) {
		c.tokenizer = t
	}
}

// WithValidator replaces the check that runs before shunting-yard.
func WithValidator(v token.Validator) CompilerOption {
	return func(c *Compiler) {
		c.validator = v
	}
}

func NewCompiler(opts ...CompilerOption) *Compiler {
	arith := token.NewArithTokenizer()
	c := &Compiler{
		tokenizer: arith,
		validator: arith,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile tokenizes expression and returns its postfix form, tokens joined
// by a single space.
func (c *Compiler) Compile(expression string) (string, error) {
	out, err := c.CompileTokens(c.tokenizer.Tokenize(expression))
	if err != nil {
		return "", err
	}
	return strings.Join(token.Strings(out), " "), nil
}

// CompileTokens reorders an infix token sequence into postfix order.
func (c *Compiler) CompileTokens(tokens []token.Token) ([]token.Token, error) {
	if err := c.validator.Validate(tokens); err != nil {
		return nil, err
	}

	out := make([]token.Token, 0, len(tokens))
	var stack []token.Token

	for _, tok := range tokens {
		switch tok.Type {
		case token.NUMBER:
			out = append(out, tok)
		case token.OPERATOR:
			op, _ := tok.Operator()
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				topOp, ok := top.Operator()
				// pop on equal priority keeps + - * / left-associative
				if !ok || topOp.Priority() < op.Priority() {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case token.LPAREN:
			stack = append(stack, tok)
		case token.RPAREN:
			for len(stack) > 0 && stack[len(stack)-1].Type != token.LPAREN {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, &apperr.UnbalancedParenthesesError{UnexpectedClose: true}
			}
			stack = stack[:len(stack)-1]
		default:
			slog.Error("unknown token type", "type", tok.Type, "value", tok.Value)
		}
	}

	for len(stack) > 0 {
		out = append(out, stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}

	return out, nil
}
