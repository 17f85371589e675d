package token

// Operator is one of the four binary arithmetic operators.
type Operator byte

const (
	Add Operator = '+'
	Sub Operator = '-'
	Mul Operator = '*'
	Div Operator = '/'
)

func ParseOperator(ch byte) (Operator, bool) {
	switch Operator(ch) {
	case Add, Sub, Mul, Div:
		return Operator(ch), true
	default:
		return 0, false
	}
}

// Priority ranks how tightly the operator binds: 1 for + and -, 2 for * and /.
func (o Operator) Priority() int {
	switch o {
	case Add, Sub:
		return 1
	case Mul, Div:
		return 2
	default:
		return 0
	}
}

// Apply computes left op right. Division by zero follows IEEE 754.
func (o Operator) Apply(left, right float64) float64 {
	switch o {
	case Add:
		return left + right
	case Sub:
		return left - right
	case Mul:
		return left * right
	case Div:
		return left / right
	default:
		return 0
	}
}

func (o Operator) String() string {
	return string(rune(o))
}
