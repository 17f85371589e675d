package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
	"github.com/DjordjeVuckovic/rpn-calc/internal/history"
	"github.com/DjordjeVuckovic/rpn-calc/internal/history/in_mem"
	"github.com/DjordjeVuckovic/rpn-calc/internal/rpn"
	"github.com/DjordjeVuckovic/rpn-calc/pkg/pagination"
)

func TestCalculator_Calculate(t *testing.T) {
	ctx := context.Background()
	store := in_mem.NewStore()
	svc := NewCalculator(rpn.NewEngine(), store)

	rec, err := svc.Calculate(ctx, history.SourceAPI, " (2+3)*4 ")
	require.NoError(t, err)
	assert.Equal(t, "(2+3)*4", rec.Expression)
	assert.Equal(t, "2 3 + 4 *", rec.Postfix)
	assert.Equal(t, "20.00", rec.Result)

	stored, err := store.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, *stored)
}

func TestCalculator_CalculateFailureIsRecorded(t *testing.T) {
	ctx := context.Background()
	store := in_mem.NewStore()
	svc := NewCalculator(rpn.NewEngine(), store)

	rec, err := svc.Calculate(ctx, history.SourceAPI, "1++2")
	var ie *apperr.InsufficientOperandsError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "1 + 2 +", rec.Postfix)
	assert.Equal(t, "insufficient_operands", rec.ErrorKind)

	list, err := store.List(ctx, pagination.OffsetRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.False(t, list.Items[0].Succeeded())
}

type failingStore struct{}

func (failingStore) Save(ctx context.Context, record history.Record) (uuid.UUID, error) {
	return uuid.Nil, errors.New("store down")
}

func TestCalculator_StoreFailureDoesNotFailCalculation(t *testing.T) {
	svc := NewCalculator(rpn.NewEngine(), failingStore{})
	rec, err := svc.Calculate(context.Background(), history.SourceCLI, "1/3")
	require.NoError(t, err)
	assert.Equal(t, "0.33", rec.Result)
}

func TestCalculator_PipelineStages(t *testing.T) {
	svc := NewCalculator(rpn.NewEngine(), nil)

	assert.Equal(t, []string{"1.5", "+", "2.25"}, svc.Tokenize("1.5+2.25"))

	postfix, err := svc.Compile("10-3-2")
	require.NoError(t, err)
	assert.Equal(t, "10 3 - 2 -", postfix)

	result, err := svc.EvaluatePostfix(postfix)
	require.NoError(t, err)
	assert.Equal(t, "5.00", result)

	svc.RecordSession(context.Background(), "1+1")
}
