package fsm

import (
	"fmt"

	"github.com/lixenwraith/shapeboard/event"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:     make(map[StateID]*Node[T]),
		byName:    make(map[string]StateID),
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate function to the registry
// Guards must be registered before LoadConfig
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry
// Actions must be registered before LoadConfig
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// AddState adds a node to the machine manually
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:          id,
		Name:        name,
		OnEnter:     make([]Action[T], 0),
		OnExit:      make([]Action[T], 0),
		Transitions: make([]Transition[T], 0),
	}
	m.nodes[id] = node
	m.byName[name] = id
	return node
}

// AddTransition adds a transition to a specific node
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) {
	if node, ok := m.nodes[sourceID]; ok {
		node.Transitions = append(node.Transitions, t)
	}
}

// Init enters the initial state, running its OnEnter actions
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.initialID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", m.initialID)
	}
	m.activeID = node.ID
	for _, action := range node.OnEnter {
		action.Func(ctx, event.Event{})
	}
	return nil
}

// Fire routes an event through the active state
// Returns true if a transition matched; unmatched events are ignored
func (m *Machine[T]) Fire(ctx T, ev event.Event) bool {
	node, ok := m.nodes[m.activeID]
	if !ok {
		return false
	}

	for _, trans := range node.Transitions {
		if trans.Event != ev.Type {
			continue
		}
		if trans.Guard != nil && !trans.Guard(ctx, ev) {
			continue
		}
		for _, action := range trans.Actions {
			action.Func(ctx, ev)
		}
		m.transition(ctx, ev, trans.TargetID)
		return true
	}

	return false
}

// transition performs the exit/enter sequence; self-targets are internal
func (m *Machine[T]) transition(ctx T, ev event.Event, targetID StateID) {
	if m.activeID == targetID {
		return
	}

	target, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d", targetID))
	}

	if current, ok := m.nodes[m.activeID]; ok {
		for _, action := range current.OnExit {
			action.Func(ctx, ev)
		}
	}

	m.activeID = targetID

	for _, action := range target.OnEnter {
		action.Func(ctx, ev)
	}
}

// Accepts reports whether the active state has a transition for the event type
// Guards are not evaluated
func (m *Machine[T]) Accepts(t event.Type) bool {
	node, ok := m.nodes[m.activeID]
	if !ok {
		return false
	}
	for _, trans := range node.Transitions {
		if trans.Event == t {
			return true
		}
	}
	return false
}

// State returns the active state name, empty before Init
func (m *Machine[T]) State() string {
	if node, ok := m.nodes[m.activeID]; ok {
		return node.Name
	}
	return ""
}

// StateID returns the active state ID
func (m *Machine[T]) StateID() StateID {
	return m.activeID
}

// Lookup resolves a state name to its ID
func (m *Machine[T]) Lookup(name string) (StateID, bool) {
	id, ok := m.byName[name]
	return id, ok
}
