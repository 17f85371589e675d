package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/rpn-calc/internal/history"
	"github.com/DjordjeVuckovic/rpn-calc/internal/rpn"
	"github.com/DjordjeVuckovic/rpn-calc/internal/token"
)

// Calculator runs expressions through the RPN pipeline and keeps a history
// of what was calculated.
type Calculator struct {
	engine *rpn.Engine
	store  history.Storer
}

func NewCalculator(engine *rpn.Engine, store history.Storer) *Calculator {
	return &Calculator{
		engine: engine,
		store:  store,
	}
}

func (s *Calculator) Tokenize(expression string) []string {
	return token.Lex(expression)
}

func (s *Calculator) Compile(expression string) (string, error) {
	return s.engine.Compile(expression)
}

func (s *Calculator) EvaluatePostfix(postfix string) (string, error) {
	return s.engine.Evaluate(postfix)
}

// Calculate evaluates expression and records the outcome. The returned
// record is filled in even when the calculation fails; err is then the
// calculation error. A failure to store the record is logged, not returned.
func (s *Calculator) Calculate(ctx context.Context, source history.Source, expression string) (history.Record, error) {
	expression = strings.TrimSpace(expression)
	postfix, result, calcErr := s.engine.Calculate(expression)

	record := history.NewRecord(source, expression, postfix, result, calcErr)
	if s.store != nil {
		if _, err := s.store.Save(ctx, record); err != nil {
			slog.Error("Failed to save calculation", "error", err, "id", record.ID, "source", source)
		}
	}

	if calcErr != nil {
		slog.Debug("Calculation rejected", "expression", expression, "kind", record.ErrorKind)
		return record, calcErr
	}
	return record, nil
}

// RecordSession stores the outcome of a session's "=" press.
func (s *Calculator) RecordSession(ctx context.Context, expression string) {
	_, _ = s.Calculate(ctx, history.SourceSession, expression)
}
