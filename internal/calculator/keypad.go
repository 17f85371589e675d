package calculator

// Key is one button of the calculator keypad.
type Key struct {
	Label string
	Event Event
}

var keypad = [][]Key{
	{glyph("("), glyph(")"), {Label: "C", Event: Event{Kind: Clear}}, glyph("/")},
	{glyph("7"), glyph("8"), glyph("9"), glyph("*")},
	{glyph("4"), glyph("5"), glyph("6"), glyph("-")},
	{glyph("1"), glyph("2"), glyph("3"), glyph("+")},
	{glyph("0"), glyph("."), {Label: "=", Event: Event{Kind: Result}}},
}

func glyph(label string) Key {
	return Key{Label: label, Event: Press(label)}
}

// Keypad returns the button rows of the calculator, top to bottom.
func Keypad() [][]Key {
	rows := make([][]Key, len(keypad))
	for i, row := range keypad {
		rows[i] = append([]Key(nil), row...)
	}
	return rows
}

// KeyFor maps a typed character to the key it stands for. Enter and '='
// evaluate, 'c' and Escape clear.
func KeyFor(ch rune) (Key, bool) {
	switch ch {
	case '=', '\n', '\r':
		return Key{Label: "=", Event: Event{Kind: Result}}, true
	case 'c', 'C', 0x1b:
		return Key{Label: "C", Event: Event{Kind: Clear}}, true
	}
	for _, row := range keypad {
		for _, k := range row {
			if k.Event.Kind == Glyph && k.Label == string(ch) {
				return k, true
			}
		}
	}
	return Key{}, false
}
