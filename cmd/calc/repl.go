package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/DjordjeVuckovic/rpn-calc/internal/history"
	"github.com/DjordjeVuckovic/rpn-calc/internal/service"
)

type lineRunner struct {
	ctx         context.Context
	calc        *service.Calculator
	showPostfix bool
	out         io.Writer
	errOut      io.Writer
}

// run evaluates one expression and prints its result, or the error.
func (r *lineRunner) run(expr string) bool {
	rec, err := r.calc.Calculate(r.ctx, history.SourceCLI, expr)
	if r.showPostfix && rec.Postfix != "" {
		fmt.Fprintln(r.out, rec.Postfix)
	}
	if err != nil {
		fmt.Fprintf(r.errOut, "error: %v\n", err)
		return false
	}
	fmt.Fprintln(r.out, rec.Result)
	return true
}

// runAll evaluates in line by line. A non-empty prompt is printed before
// every line is read. Blank lines are skipped.
func (r *lineRunner) runAll(in io.Reader, prompt string) bool {
	ok := true
	scanner := bufio.NewScanner(in)
	for {
		if prompt != "" {
			fmt.Fprint(r.out, prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ok = r.run(line) && ok
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(r.errOut, "error: %v\n", err)
		return false
	}
	return ok
}
