package suite

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
)

// Calculator runs one expression end to end.
type Calculator interface {
	Calculate(expression string) (postfix string, result string, err error)
}

type CaseResult struct {
	Case    Case
	Postfix string
	Got     string
	Kind    string
	Passed  bool
	Reason  string
	Elapsed time.Duration
}

type Result struct {
	Name    string
	Cases   []CaseResult
	Passed  int
	Failed  int
	Latency Latency
}

func (r *Result) OK() bool {
	return r.Failed == 0
}

func Run(s *Suite, calc Calculator) *Result {
	res := &Result{
		Name:  s.Name,
		Cases: make([]CaseResult, 0, len(s.Cases)),
	}

	durations := make([]time.Duration, 0, len(s.Cases))
	for _, c := range s.Cases {
		cr := runCase(c, calc)
		durations = append(durations, cr.Elapsed)
		if cr.Passed {
			res.Passed++
		} else {
			res.Failed++
			slog.Debug("Suite case failed", "id", c.ID, "reason", cr.Reason)
		}
		res.Cases = append(res.Cases, cr)
	}
	res.Latency = computeLatency(durations)

	return res
}

func runCase(c Case, calc Calculator) CaseResult {
	start := time.Now()
	postfix, got, err := calc.Calculate(c.Expression)
	cr := CaseResult{
		Case:    c,
		Postfix: postfix,
		Got:     got,
		Kind:    apperr.KindOf(err),
		Elapsed: time.Since(start),
	}

	switch {
	case err != nil && cr.Kind == "":
		cr.Reason = fmt.Sprintf("unexpected error: %v", err)
	case c.ExpectsError() && cr.Kind != c.Error:
		if cr.Kind == "" {
			cr.Reason = fmt.Sprintf("want error %s, got %s", c.Error, got)
		} else {
			cr.Reason = fmt.Sprintf("want error %s, got %s", c.Error, cr.Kind)
		}
	case !c.ExpectsError() && err != nil:
		cr.Reason = fmt.Sprintf("want %s, got error %s", c.Want, cr.Kind)
	case !c.ExpectsError() && got != c.Want:
		cr.Reason = fmt.Sprintf("want %s, got %s", c.Want, got)
	case c.Postfix != "" && postfix != c.Postfix:
		cr.Reason = fmt.Sprintf("want postfix %q, got %q", c.Postfix, postfix)
	default:
		cr.Passed = true
	}

	return cr
}
