package fsm

import (
	"github.com/lixenwraith/shapeboard/event"
)

// StateID is a unique identifier for a node
type StateID int

// StateNone marks an uninitialized machine
const StateNone StateID = 0

// Machine is a flat event-driven finite state machine
// T is the context type passed to actions and guards (e.g., *session.Session)
type Machine[T any] struct {
	// Graph data, immutable after load
	nodes     map[StateID]*Node[T]
	byName    map[string]StateID
	initialID StateID

	// Runtime state
	activeID StateID

	// Dependency injection
	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
}

// Node represents a state
type Node[T any] struct {
	ID   StateID
	Name string

	// Lifecycle actions
	OnEnter []Action[T]
	OnExit  []Action[T]

	// Transitions in evaluation order; first match wins
	Transitions []Transition[T]
}

// Transition links a state to a target on an event
// A transition whose target is the source state runs its actions without exit/enter
type Transition[T any] struct {
	Event    event.Type
	TargetID StateID
	Guard    GuardFunc[T] // nil = always true
	Actions  []Action[T]
}

// Action is a named side effect resolved at load time
type Action[T any] struct {
	Name string
	Func ActionFunc[T]
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T, ev event.Event) bool

// ActionFunc executes a side effect for the triggering event
type ActionFunc[T any] func(ctx T, ev event.Event)
