package fsm

// RootConfig represents the top-level config structure
type RootConfig struct {
	InitialState string                  `toml:"initial"`
	States       map[string]*StateConfig `toml:"states"`
}

// StateConfig represents a single state definition
type StateConfig struct {
	OnEnter     []string           `toml:"on_enter,omitempty"`
	OnExit      []string           `toml:"on_exit,omitempty"`
	Transitions []TransitionConfig `toml:"transitions,omitempty"`
}

// TransitionConfig represents a transition definition
type TransitionConfig struct {
	Trigger string   `toml:"trigger"`           // Event name
	Target  string   `toml:"target"`            // Target state name
	Guard   string   `toml:"guard,omitempty"`   // Guard function name
	Actions []string `toml:"actions,omitempty"` // Action names, run before exit/enter
}
