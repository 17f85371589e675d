package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
)

type Source string

const (
	SourceAPI     Source = "api"
	SourceSession Source = "session"
	SourceCLI     Source = "cli"
)

// Record is one calculation, successful or not.
type Record struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expression"`
	Postfix    string    `json:"postfix,omitempty"`
	Result     string    `json:"result,omitempty"`
	Error      string    `json:"error,omitempty"`
	ErrorKind  string    `json:"error_kind,omitempty"`
	Source     Source    `json:"source"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewRecord builds a record for expression. A non-nil err fills the error
// fields and leaves Result empty.
func NewRecord(source Source, expression, postfix, result string, err error) Record {
	r := Record{
		ID:         uuid.New(),
		Expression: expression,
		Postfix:    postfix,
		Result:     result,
		Source:     source,
		CreatedAt:  time.Now().UTC(),
	}
	if err != nil {
		r.Result = ""
		r.Error = err.Error()
		r.ErrorKind = apperr.KindOf(err)
	}
	return r
}

func (r Record) Succeeded() bool {
	return r.Error == ""
}
