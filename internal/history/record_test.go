package history

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
)

func TestNewRecord(t *testing.T) {
	ok := NewRecord(SourceAPI, "1+2", "1 2 +", "3.00", nil)
	assert.NotEqual(t, uuid.Nil, ok.ID)
	assert.True(t, ok.Succeeded())
	assert.Equal(t, "3.00", ok.Result)
	assert.Empty(t, ok.ErrorKind)
	assert.False(t, ok.CreatedAt.IsZero())

	err := fmt.Errorf("failed to evaluate expression: %w", &apperr.InsufficientOperandsError{Operator: "+", Have: 1})
	failed := NewRecord(SourceSession, "1++2", "1 + 2 +", "ignored", err)
	assert.False(t, failed.Succeeded())
	assert.Empty(t, failed.Result)
	assert.Equal(t, "insufficient_operands", failed.ErrorKind)
	assert.Contains(t, failed.Error, "needs 2 operands")
}
