package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shapeboard/event"
)

// Translator turns raw tcell input into abstract host events
// Owns the pointer gesture state; used from the input goroutine only
type Translator struct {
	pressed   bool // button 1 held as of the last mouse event
	dragging  bool // a palette entry was grabbed on the current press
	overBoard bool // last drag motion was over a board cell
}

// Translate maps one tcell event against the current layout
// Returns nil for input that has no meaning to the core
func (t *Translator) Translate(ev tcell.Event, l *Layout) []event.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.key(ev)
	case *tcell.EventMouse:
		return t.mouse(ev, l)
	}
	return nil
}

func (t *Translator) key(ev *tcell.EventKey) []event.Event {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return []event.Event{event.Quit()}
	case tcell.KeyEnter:
		return []event.Event{event.Commit()}
	case tcell.KeyEscape:
		if t.dragging {
			return t.endDrag(event.DragEnd())
		}
		return []event.Event{event.Quit()}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return []event.Event{event.Quit()}
		case 'c', ' ':
			return []event.Event{event.Commit()}
		}
	}
	return nil
}

func (t *Translator) mouse(ev *tcell.EventMouse, l *Layout) []event.Event {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0
	wasDown := t.pressed
	t.pressed = down

	switch {
	case down && !wasDown:
		return t.press(x, y, l)
	case !down && wasDown:
		return t.release(x, y, l)
	case t.dragging:
		return t.motion(x, y, l)
	}
	return nil
}

func (t *Translator) press(x, y int, l *Layout) []event.Event {
	if p, ok := l.EditCell(x, y); ok {
		return []event.Event{event.Paint(p.Row, p.Col)}
	}
	if l.OnCommit(x, y) {
		return []event.Event{event.Commit()}
	}
	if i, ok := l.Entry(x, y); ok {
		t.dragging = true
		t.overBoard = false
		return []event.Event{event.DragStart(i)}
	}
	return nil
}

func (t *Translator) motion(x, y int, l *Layout) []event.Event {
	if p, ok := l.BoardCell(x, y); ok {
		t.overBoard = true
		return []event.Event{event.DragHover(p.Row, p.Col)}
	}
	if t.overBoard {
		t.overBoard = false
		return []event.Event{event.DragLeave()}
	}
	return nil
}

func (t *Translator) release(x, y int, l *Layout) []event.Event {
	if !t.dragging {
		return nil
	}
	if p, ok := l.BoardCell(x, y); ok {
		return t.endDrag(event.Drop(p.Row, p.Col))
	}
	return t.endDrag(event.DragEnd())
}

func (t *Translator) endDrag(ev event.Event) []event.Event {
	t.dragging = false
	t.overBoard = false
	return []event.Event{ev}
}

// Dragging reports whether a gesture is in progress
func (t *Translator) Dragging() bool {
	return t.dragging
}
