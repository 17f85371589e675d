package calculator

import (
	"fmt"
	"strings"
)

// ErrorDisplay is shown after a result could not be computed.
const ErrorDisplay = "Error"

// Engine is the expression pipeline the calculator delegates to.
type Engine interface {
	Compile(expression string) (string, error)
	Evaluate(postfix string) (string, error)
}

type EventKind string

const (
	Glyph  EventKind = "glyph"
	Clear  EventKind = "clear"
	Result EventKind = "result"
)

func ParseEventKind(s string) (EventKind, error) {
	switch k := EventKind(strings.ToLower(strings.TrimSpace(s))); k {
	case Glyph, Clear, Result:
		return k, nil
	default:
		return "", fmt.Errorf("unknown event kind %q", s)
	}
}

// Event is a single key press. Text carries the key label for Glyph events.
type Event struct {
	Kind EventKind
	Text string
}

func Press(text string) Event {
	return Event{Kind: Glyph, Text: text}
}

// State is what the calculator screen shows. Err is set when the last
// Result event failed.
type State struct {
	Display string
	Err     error
}

// Failed reports whether the display currently shows an error.
func (s State) Failed() bool {
	return s.Err != nil
}
