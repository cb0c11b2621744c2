package fsm

import (
	"fmt"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/shapeboard/event"
)

// LoadConfig parses a TOML graph and populates the Machine
// Validates all references (states, guards, actions, events)
// Clears existing graph data before loading
func (m *Machine[T]) LoadConfig(data []byte) error {
	var config RootConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to unmarshal FSM config: %w", err)
	}
	if len(config.States) == 0 {
		return fmt.Errorf("FSM config defines no states")
	}

	m.nodes = make(map[StateID]*Node[T])
	m.byName = make(map[string]StateID)
	m.initialID = StateNone
	m.activeID = StateNone

	// Sort keys for deterministic ID generation
	names := make([]string, 0, len(config.States))
	for name := range config.States {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		m.AddState(StateID(i+1), name)
	}

	for _, name := range names {
		cfg := config.States[name]
		if cfg == nil {
			continue
		}
		node := m.nodes[m.byName[name]]

		var err error
		if node.OnEnter, err = m.compileActions(cfg.OnEnter); err != nil {
			return fmt.Errorf("state '%s' on_enter: %w", name, err)
		}
		if node.OnExit, err = m.compileActions(cfg.OnExit); err != nil {
			return fmt.Errorf("state '%s' on_exit: %w", name, err)
		}
		if err := m.compileTransitions(node, cfg.Transitions); err != nil {
			return fmt.Errorf("state '%s' transitions: %w", name, err)
		}
	}

	initialID, ok := m.byName[config.InitialState]
	if !ok {
		return fmt.Errorf("initial state '%s' not found", config.InitialState)
	}
	m.initialID = initialID

	return nil
}

func (m *Machine[T]) compileActions(names []string) ([]Action[T], error) {
	actions := make([]Action[T], 0, len(names))
	for _, name := range names {
		fn, ok := m.actionReg[name]
		if !ok {
			return nil, fmt.Errorf("unknown action '%s'", name)
		}
		actions = append(actions, Action[T]{Name: name, Func: fn})
	}
	return actions, nil
}

func (m *Machine[T]) compileTransitions(node *Node[T], configs []TransitionConfig) error {
	for i, tc := range configs {
		evType, ok := event.ParseType(tc.Trigger)
		if !ok {
			return fmt.Errorf("transition %d: unknown trigger '%s'", i, tc.Trigger)
		}

		targetID, ok := m.byName[tc.Target]
		if !ok {
			return fmt.Errorf("transition %d: unknown target '%s'", i, tc.Target)
		}

		var guard GuardFunc[T]
		if tc.Guard != "" {
			guard, ok = m.guardReg[tc.Guard]
			if !ok {
				return fmt.Errorf("transition %d: unknown guard '%s'", i, tc.Guard)
			}
		}

		actions, err := m.compileActions(tc.Actions)
		if err != nil {
			return fmt.Errorf("transition %d: %w", i, err)
		}

		m.AddTransition(node.ID, Transition[T]{
			Event:    evType,
			TargetID: targetID,
			Guard:    guard,
			Actions:  actions,
		})
	}
	return nil
}
