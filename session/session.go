// Package session tracks the single active drag gesture
package session

import (
	_ "embed"
	"fmt"

	"github.com/lixenwraith/shapeboard/event"
	"github.com/lixenwraith/shapeboard/fsm"
	"github.com/lixenwraith/shapeboard/grid"
	"github.com/lixenwraith/shapeboard/preview"
	"github.com/lixenwraith/shapeboard/shape"
)

//go:embed session.toml
var graph []byte

// State names from session.toml
const (
	StateIdle     = "Idle"
	StateDragging = "Dragging"
)

// DropResult is what a drop hands to placement
type DropResult struct {
	Shape  *shape.Shape
	Anchor grid.Point
}

// Session holds drag state outside the rendered data
// Not safe for concurrent use
type Session struct {
	machine *fsm.Machine[*Session]
	preview *preview.Coordinator

	shape     *shape.Shape // same reference as the palette entry
	candidate *shape.Shape // set only for the duration of a DragStart

	// Per-event results written by actions
	overlay grid.Grid
	changed bool
	dropped DropResult
	hasDrop bool
}

// New creates an idle session previewing against a height x width board
func New(height, width int) (*Session, error) {
	s := &Session{
		preview: preview.NewCoordinator(height, width),
	}

	m := fsm.NewMachine[*Session]()
	m.RegisterGuard("HasCandidate", func(s *Session, _ event.Event) bool {
		return s.candidate != nil
	})
	m.RegisterAction("BeginSession", func(s *Session, _ event.Event) {
		s.shape = s.candidate
	})
	m.RegisterAction("EndSession", func(s *Session, _ event.Event) {
		s.shape = nil
	})
	m.RegisterAction("PreviewHover", func(s *Session, ev event.Event) {
		s.overlay, s.changed = s.preview.Hover(s.shape, grid.Point{Row: ev.Row, Col: ev.Col})
	})
	m.RegisterAction("ClearPreview", func(s *Session, _ event.Event) {
		s.preview.Clear()
	})
	m.RegisterAction("RecordDrop", func(s *Session, ev event.Event) {
		s.dropped = DropResult{Shape: s.shape, Anchor: grid.Point{Row: ev.Row, Col: ev.Col}}
		s.hasDrop = true
	})

	if err := m.LoadConfig(graph); err != nil {
		return nil, fmt.Errorf("session graph: %w", err)
	}
	if err := m.Init(s); err != nil {
		return nil, fmt.Errorf("session init: %w", err)
	}
	s.machine = m
	return s, nil
}

// Start begins dragging sh; ignored (false) while another drag is active
// sh is kept by reference
func (s *Session) Start(sh *shape.Shape) bool {
	if sh == nil {
		return false
	}
	s.candidate = sh
	defer func() { s.candidate = nil }()
	return s.machine.Fire(s, event.DragStart(0))
}

// Hover updates the preview for the pointer at (row, col)
// Returns false when idle or when the anchor did not change
func (s *Session) Hover(row, col int) (grid.Grid, bool) {
	s.changed = false
	if !s.machine.Fire(s, event.DragHover(row, col)) {
		return s.preview.Overlay(), false
	}
	return s.overlay, s.changed
}

// Leave clears the preview; the drag continues
func (s *Session) Leave() bool {
	return s.machine.Fire(s, event.DragLeave())
}

// End finishes the drag without placing
func (s *Session) End() bool {
	return s.machine.Fire(s, event.DragEnd())
}

// Drop finishes the drag at (row, col)
// Returns false with no active drag; the caller performs the placement
func (s *Session) Drop(row, col int) (DropResult, bool) {
	s.hasDrop = false
	s.dropped = DropResult{}
	if !s.machine.Fire(s, event.Drop(row, col)) {
		return DropResult{}, false
	}
	return s.dropped, s.hasDrop
}

// Dragging returns the shape being dragged
func (s *Session) Dragging() (*shape.Shape, bool) {
	return s.shape, s.shape != nil
}

// State returns the lifecycle state name
func (s *Session) State() string {
	return s.machine.State()
}

// Overlay returns the current preview overlay
func (s *Session) Overlay() grid.Grid {
	return s.preview.Overlay()
}

// LastAnchor returns the preview memo
func (s *Session) LastAnchor() (grid.Point, bool) {
	return s.preview.LastAnchor()
}
