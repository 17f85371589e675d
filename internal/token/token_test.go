package token

import (
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
)

func TestIsNumber(t *testing.T) {
	valid := []string{"0", "5", "123", "1.5", "10.25", "007.0"}
	invalid := []string{"", ".", ".5", "5.", "1.2.3", "1..2", "+", "1e3", "٣"}

	for _, s := range valid {
		if !IsNumber(s) {
			t.Errorf("IsNumber(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumber(s) {
			t.Errorf("IsNumber(%q) = true, want false", s)
		}
	}
}

func TestIsNumberLike(t *testing.T) {
	if !IsNumberLike("1.2.3") || !IsNumberLike(".") {
		t.Error("digit and dot runs should be number-like")
	}
	if IsNumberLike("") || IsNumberLike("1a") || IsNumberLike("(") {
		t.Error("empty or mixed strings should not be number-like")
	}
}

func TestToken_Float(t *testing.T) {
	v, err := Number("2.25").Float()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 2.25 {
		t.Errorf("expected 2.25, got %v", v)
	}

	_, err = Number("1.2.3").Float()
	var me *apperr.MalformedNumberError
	if !errors.As(err, &me) {
		t.Fatalf("expected MalformedNumberError, got %v", err)
	}

	if _, err := Op(Add).Float(); err == nil {
		t.Error("expected error for operator token")
	}
}

func TestOperator(t *testing.T) {
	tests := []struct {
		op       Operator
		priority int
		left     float64
		right    float64
		want     float64
	}{
		{Add, 1, 2, 3, 5},
		{Sub, 1, 10, 3, 7},
		{Mul, 2, 4, 2.5, 10},
		{Div, 2, 1, 4, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			if got := tt.op.Priority(); got != tt.priority {
				t.Errorf("priority: expected %d, got %d", tt.priority, got)
			}
			if got := tt.op.Apply(tt.left, tt.right); got != tt.want {
				t.Errorf("apply: expected %v, got %v", tt.want, got)
			}
			tok := Op(tt.op)
			got, ok := tok.Operator()
			if !ok || got != tt.op {
				t.Errorf("Operator() = %v, %v", got, ok)
			}
		})
	}

	if _, ok := ParseOperator('^'); ok {
		t.Error("^ is not a supported operator")
	}
	if _, ok := Number("1").Operator(); ok {
		t.Error("number token has no operator")
	}
}

func TestType_String(t *testing.T) {
	names := map[Type]string{NUMBER: "NUMBER", OPERATOR: "OPERATOR", LPAREN: "LPAREN", RPAREN: "RPAREN", Type(42): "UNKNOWN"}
	for typ, want := range names {
		if got := typ.String(); got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	}
}
