package event

import "fmt"

// Type represents the kind of host event delivered to the core
type Type int

const (
	// EventNone is the zero event, used for Init and never routed
	EventNone Type = iota

	// === Editing ===

	// EventPaint toggles one editing grid cell
	// Trigger: click on edit grid | Fields: Row, Col
	EventPaint

	// EventCommit extracts the painted region into a palette shape
	// Trigger: commit key/button | Fields: none
	EventCommit

	// === Drag Gesture ===

	// EventDragStart begins dragging a palette entry
	// Trigger: press on palette entry | Fields: Index
	EventDragStart

	// EventDragHover reports the pointer over a board cell
	// Trigger: motion over board | Fields: Row, Col
	EventDragHover

	// EventDragLeave reports the pointer leaving the board mid-drag
	// Trigger: motion off board | Fields: none
	EventDragLeave

	// EventDragEnd ends the gesture without a drop
	// Trigger: release off board, cancel key | Fields: none
	EventDragEnd

	// EventDrop ends the gesture on a board cell
	// Trigger: release over board | Fields: Row, Col
	EventDrop

	// === Host ===

	// EventQuit stops the host loop
	EventQuit
)

// Event is a single host event
// Unused fields are zero
type Event struct {
	Type  Type
	Row   int
	Col   int
	Index int
}

func (e Event) String() string {
	switch e.Type {
	case EventPaint, EventDragHover, EventDrop:
		return fmt.Sprintf("%s(%d,%d)", e.Type, e.Row, e.Col)
	case EventDragStart:
		return fmt.Sprintf("%s[%d]", e.Type, e.Index)
	default:
		return e.Type.String()
	}
}

// Paint builds an EventPaint
func Paint(row, col int) Event {
	return Event{Type: EventPaint, Row: row, Col: col}
}

// Commit builds an EventCommit
func Commit() Event {
	return Event{Type: EventCommit}
}

// DragStart builds an EventDragStart for a palette index
func DragStart(index int) Event {
	return Event{Type: EventDragStart, Index: index}
}

// DragHover builds an EventDragHover
func DragHover(row, col int) Event {
	return Event{Type: EventDragHover, Row: row, Col: col}
}

// DragLeave builds an EventDragLeave
func DragLeave() Event {
	return Event{Type: EventDragLeave}
}

// DragEnd builds an EventDragEnd
func DragEnd() Event {
	return Event{Type: EventDragEnd}
}

// Drop builds an EventDrop
func Drop(row, col int) Event {
	return Event{Type: EventDrop, Row: row, Col: col}
}

// Quit builds an EventQuit
func Quit() Event {
	return Event{Type: EventQuit}
}
