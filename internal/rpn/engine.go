package rpn

import "fmt"

// Engine runs the whole tokenize, compile, evaluate pipeline.
type Engine struct {
	compiler  *Compiler
	evaluator *Evaluator
}

func NewEngine() *Engine {
	return &Engine{
		compiler:  NewCompiler(),
		evaluator: NewEvaluator(),
	}
}

func (e *Engine) Compile(expression string) (string, error) {
	return e.compiler.Compile(expression)
}

func (e *Engine) Evaluate(postfix string) (string, error) {
	return e.evaluator.Evaluate(postfix)
}

// Calculate compiles expression and evaluates it. The postfix form is
// returned even when evaluation fails.
func (e *Engine) Calculate(expression string) (postfix string, result string, err error) {
	postfix, err = e.Compile(expression)
	if err != nil {
		return "", "", fmt.Errorf("failed to compile expression: %w", err)
	}
	result, err = e.Evaluate(postfix)
	if err != nil {
		return postfix, "", fmt.Errorf("failed to evaluate expression: %w", err)
	}
	return postfix, result, nil
}

var defaultEngine = NewEngine()

// Compile converts an infix expression into a space separated postfix string.
func Compile(expression string) (string, error) {
	return defaultEngine.Compile(expression)
}

// Evaluate computes a postfix expression and formats it with two decimals.
func Evaluate(postfix string) (string, error) {
	return defaultEngine.Evaluate(postfix)
}
