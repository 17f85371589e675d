package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/DjordjeVuckovic/rpn-calc/internal/calculator"
)

// keypadView keeps the calculator state behind the terminal keypad. All
// methods run on the tview event loop.
type keypadView struct {
	reducer *calculator.Reducer
	state   calculator.State
	display *tview.TextView
	status  *tview.TextView
	buttons []*tview.Button

	// focus access, bound to the application by runTUI
	getFocus func() tview.Primitive
	setFocus func(tview.Primitive)
}

func newKeypadView(engine calculator.Engine) *keypadView {
	display := tview.NewTextView().SetTextAlign(tview.AlignRight)
	display.SetBorder(true).SetTitle("rpn-calc")

	status := tview.NewTextView().SetTextColor(tcell.ColorRed)

	return &keypadView{
		reducer:  calculator.NewReducer(engine),
		display:  display,
		status:   status,
		getFocus: func() tview.Primitive { return nil },
		setFocus: func(tview.Primitive) {},
	}
}

func (v *keypadView) press(e calculator.Event) {
	v.state = v.reducer.Reduce(v.state, e)
	v.display.SetText(v.state.Display)
	if v.state.Err != nil {
		v.status.SetText(v.state.Err.Error())
	} else {
		v.status.SetText("")
	}
}

func (v *keypadView) layout() *tview.Grid {
	rows := calculator.Keypad()

	grid := tview.NewGrid().SetColumns(0, 0, 0, 0)
	heights := []int{3}
	for range rows {
		heights = append(heights, 0)
	}
	heights = append(heights, 1)
	grid.SetRows(heights...)

	v.buttons = v.buttons[:0]
	grid.AddItem(v.display, 0, 0, 1, 4, 0, 0, true)
	for i, row := range rows {
		for j, key := range row {
			span := 1
			if j == len(row)-1 {
				span = 4 - j
			}
			ev := key.Event
			btn := tview.NewButton(key.Label).SetSelectedFunc(func() { v.press(ev) })
			v.buttons = append(v.buttons, btn)
			grid.AddItem(btn, i+1, j, 1, span, 0, 0, false)
		}
	}
	grid.AddItem(v.status, len(rows)+1, 0, 1, 4, 0, 0, false)

	return grid
}

// focusedButton returns the index of the keypad button holding the focus,
// or -1 when the focus is elsewhere.
func (v *keypadView) focusedButton() int {
	focused := v.getFocus()
	for i, btn := range v.buttons {
		if focused == btn {
			return i
		}
	}
	return -1
}

// cycleFocus moves the focus by step through the display and the buttons.
func (v *keypadView) cycleFocus(step int) {
	n := len(v.buttons) + 1
	next := ((v.focusedButton()+1+step)%n + n) % n
	if next == 0 {
		v.setFocus(v.display)
		return
	}
	v.setFocus(v.buttons[next-1])
}

// capture maps typed characters onto keypad events. Tab and Backtab walk
// the buttons; Enter on a focused button presses that button.
func (v *keypadView) capture(event *tcell.EventKey) *tcell.EventKey {
	var ch rune
	switch event.Key() {
	case tcell.KeyRune:
		ch = event.Rune()
	case tcell.KeyEnter:
		if v.focusedButton() >= 0 {
			return event
		}
		ch = '\r'
	case tcell.KeyEscape:
		ch = 0x1b
	case tcell.KeyTab:
		v.cycleFocus(1)
		return nil
	case tcell.KeyBacktab:
		v.cycleFocus(-1)
		return nil
	default:
		return event
	}

	key, ok := calculator.KeyFor(ch)
	if !ok {
		return event
	}
	v.press(key.Event)
	return nil
}

func runTUI(engine calculator.Engine) error {
	v := newKeypadView(engine)
	app := tview.NewApplication().EnableMouse(true)
	v.getFocus = app.GetFocus
	v.setFocus = func(p tview.Primitive) { app.SetFocus(p) }
	app.SetInputCapture(v.capture)
	return app.SetRoot(v.layout(), true).Run()
}
