package es

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/rpn-calc/internal/history"
)

// Document is the indexed form of a history.Record.
type Document struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Postfix    string    `json:"postfix"`
	Result     string    `json:"result"`
	Error      string    `json:"error"`
	ErrorKind  string    `json:"error_kind"`
	Source     string    `json:"source"`
	CreatedAt  time.Time `json:"created_at"`
}

func toDocument(r history.Record) Document {
	return Document{
		ID:         r.ID.String(),
		Expression: r.Expression,
		Postfix:    r.Postfix,
		Result:     r.Result,
		Error:      r.Error,
		ErrorKind:  r.ErrorKind,
		Source:     string(r.Source),
		CreatedAt:  r.CreatedAt,
	}
}

func (d Document) toRecord() (history.Record, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return history.Record{}, fmt.Errorf("failed to parse calculation id %q: %w", d.ID, err)
	}
	return history.Record{
		ID:         id,
		Expression: d.Expression,
		Postfix:    d.Postfix,
		Result:     d.Result,
		Error:      d.Error,
		ErrorKind:  d.ErrorKind,
		Source:     history.Source(d.Source),
		CreatedAt:  d.CreatedAt.UTC(),
	}, nil
}
