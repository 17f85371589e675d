package calculator

import "strings"

// Reducer applies key presses to calculator state.
type Reducer struct {
	engine Engine
}

func NewReducer(engine Engine) *Reducer {
	return &Reducer{engine: engine}
}

// Reduce returns the state that follows s after e. It does not modify s.
func (r *Reducer) Reduce(s State, e Event) State {
	switch e.Kind {
	case Glyph:
		if s.Failed() {
			return State{Display: e.Text}
		}
		return State{Display: s.Display + e.Text}
	case Clear:
		return State{}
	case Result:
		return r.result(s)
	default:
		return s
	}
}

func (r *Reducer) result(s State) State {
	if s.Failed() {
		return s
	}

	postfix, err := r.engine.Compile(strings.TrimSpace(s.Display))
	if err != nil {
		return State{Display: ErrorDisplay, Err: err}
	}
	value, err := r.engine.Evaluate(postfix)
	if err != nil {
		return State{Display: ErrorDisplay, Err: err}
	}
	return State{Display: value}
}

// ReduceAll folds events over s from left to right.
func (r *Reducer) ReduceAll(s State, events ...Event) State {
	for _, e := range events {
		s = r.Reduce(s, e)
	}
	return s
}
