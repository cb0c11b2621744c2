package event

import "strings"

var typeNames = map[Type]string{
	EventNone:      "None",
	EventPaint:     "Paint",
	EventCommit:    "Commit",
	EventDragStart: "DragStart",
	EventDragHover: "DragHover",
	EventDragLeave: "DragLeave",
	EventDragEnd:   "DragEnd",
	EventDrop:      "Drop",
	EventQuit:      "Quit",
}

var nameToType = func() map[string]Type {
	m := make(map[string]Type, len(typeNames))
	for t, name := range typeNames {
		m[strings.ToLower(name)] = t
	}
	return m
}()

// String returns the registered name
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// ParseType resolves an event name, case-insensitive
// Used by FSM config loading
func ParseType(name string) (Type, bool) {
	t, ok := nameToType[strings.ToLower(name)]
	if !ok || t == EventNone {
		return EventNone, false
	}
	return t, true
}
