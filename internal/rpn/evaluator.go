package rpn

import (
	"math"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
	"github.com/DjordjeVuckovic/rpn-calc/internal/token"
)

// Evaluator computes the value of a postfix expression with a single
// operand stack.
type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate returns the value of postfix formatted with two fractional digits.
func (e *Evaluator) Evaluate(postfix string) (string, error) {
	v, err := e.EvaluateValue(postfix)
	if err != nil {
		return "", err
	}
	return Format(v), nil
}

// EvaluateValue computes the unformatted value of postfix. Tokens that are
// neither numbers nor operators are skipped.
func (e *Evaluator) EvaluateValue(postfix string) (float64, error) {
	var stack []float64

	for _, lit := range strings.Split(postfix, " ") {
		if token.IsNumberLike(lit) {
			v, err := token.Number(lit).Float()
			if err != nil {
				return 0, err
			}
			stack = append(stack, v)
			continue
		}

		if len(lit) != 1 {
			continue
		}
		op, ok := token.ParseOperator(lit[0])
		if !ok {
			continue
		}

		if len(stack) < 2 {
			return 0, &apperr.InsufficientOperandsError{Operator: op.String(), Have: len(stack)}
		}
		right := stack[len(stack)-1]
		left := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		stack = append(stack, op.Apply(left, right))
	}

	switch len(stack) {
	case 0:
		return 0, apperr.ErrEmptyExpression
	case 1:
		return stack[0], nil
	default:
		return 0, &apperr.TrailingOperandsError{Remaining: len(stack)}
	}
}

// Format renders v with exactly two fractional digits. Infinities are shown
// the way a browser display shows them.
func Format(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.IsNaN(v):
		return "NaN"
	}

	// negative zero only; small negative values keep their sign
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
