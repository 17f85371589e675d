package rpn

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
)

func TestEvaluator_Evaluate(t *testing.T) {
	tests := []struct {
		name     string
		postfix  string
		expected string
	}{
		{name: "single number", postfix: "5", expected: "5.00"},
		{name: "addition", postfix: "1 2 +", expected: "3.00"},
		{name: "operand order for subtraction", postfix: "10 3 -", expected: "7.00"},
		{name: "operand order for division", postfix: "1 4 /", expected: "0.25"},
		{name: "chained", postfix: "2 3 4 * +", expected: "14.00"},
		{name: "rounds to two places", postfix: "2 3 /", expected: "0.67"},
		{name: "unknown tokens ignored", postfix: "1 x 2 ( +", expected: "3.00"},
		{name: "double spaces ignored", postfix: "1  2 +", expected: "3.00"},
		{name: "divide by zero", postfix: "1 0 /", expected: "Infinity"},
		{name: "zero by zero", postfix: "0 0 /", expected: "NaN"},
		{name: "negative result", postfix: "1 3 -", expected: "-2.00"},
		{name: "negative zero", postfix: "0 0 1 - *", expected: "0.00"},
		{name: "small negative keeps sign", postfix: "0.001 0.002 -", expected: "-0.00"},
	}

	e := NewEvaluator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Evaluate(tt.postfix)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEvaluator_EvaluateRejects(t *testing.T) {
	e := NewEvaluator()

	t.Run("insufficient operands", func(t *testing.T) {
		_, err := e.Evaluate("1 +")
		var ie *apperr.InsufficientOperandsError
		require.True(t, errors.As(err, &ie), "got %v", err)
		assert.Equal(t, "+", ie.Operator)
		assert.Equal(t, 1, ie.Have)
	})

	t.Run("trailing operands", func(t *testing.T) {
		_, err := e.Evaluate("1 2 3 +")
		var te *apperr.TrailingOperandsError
		require.True(t, errors.As(err, &te), "got %v", err)
		assert.Equal(t, 2, te.Remaining)
	})

	t.Run("malformed number", func(t *testing.T) {
		_, err := e.Evaluate("1.2.3 1 +")
		var me *apperr.MalformedNumberError
		require.True(t, errors.As(err, &me), "got %v", err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := e.Evaluate("")
		assert.ErrorIs(t, err, apperr.ErrEmptyExpression)
	})

	t.Run("only unknown tokens", func(t *testing.T) {
		_, err := e.Evaluate("a b c")
		assert.ErrorIs(t, err, apperr.ErrEmptyExpression)
	})
}

func TestEvaluator_EvaluateValue(t *testing.T) {
	v, err := NewEvaluator().EvaluateValue("1 3 /")
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, v, 1e-12)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "3.75", Format(3.75))
	assert.Equal(t, "0.33", Format(1.0/3.0))
	assert.Equal(t, "100.00", Format(100))
	assert.Equal(t, "-Infinity", Format(math.Inf(-1)))
	assert.Equal(t, "0.00", Format(math.Copysign(0, -1)))
	assert.Equal(t, "-0.00", Format(-0.001))
	assert.Equal(t, "-0.01", Format(-0.0051))
}
