package session

import (
	"testing"

	"github.com/lixenwraith/shapeboard/grid"
	"github.com/lixenwraith/shapeboard/shape"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	s, err := New(4, 4)
	if err != nil {
		t.Fatalf("Expected session to build, got %v", err)
	}
	return s
}

func lShape(t *testing.T) *shape.Shape {
	t.Helper()
	sh, err := shape.FromGrid("##\n#.")
	if err != nil {
		t.Fatal(err)
	}
	return sh
}

func TestSessionStartsIdle(t *testing.T) {
	s := newSession(t)

	if s.State() != StateIdle {
		t.Errorf("Expected Idle, got %s", s.State())
	}
	if _, ok := s.Dragging(); ok {
		t.Error("Expected no dragged shape")
	}
}

func TestSessionKeepsReference(t *testing.T) {
	s := newSession(t)
	sh := lShape(t)

	if !s.Start(sh) {
		t.Fatal("Expected Start to begin a drag")
	}
	if s.State() != StateDragging {
		t.Errorf("Expected Dragging, got %s", s.State())
	}
	got, ok := s.Dragging()
	if !ok || got != sh {
		t.Error("Expected session to hold the same shape reference")
	}
}

func TestSessionSingleDrag(t *testing.T) {
	s := newSession(t)
	first := lShape(t)
	second := lShape(t)

	s.Start(first)
	if s.Start(second) {
		t.Error("Expected second Start during a drag to be ignored")
	}
	if got, _ := s.Dragging(); got != first {
		t.Error("Expected the first shape to stay active")
	}
	if s.Start(nil) {
		t.Error("Expected nil shape to be rejected")
	}
}

func TestSessionHoverDedup(t *testing.T) {
	s := newSession(t)
	s.Start(lShape(t))

	overlay, changed := s.Hover(0, 0)
	if !changed || overlay.Count() != 3 {
		t.Fatalf("Expected first hover to produce 3 cells, got changed=%v count=%d", changed, overlay.Count())
	}

	if _, changed := s.Hover(0, 0); changed {
		t.Error("Expected repeated hover to report no change")
	}
	if _, changed := s.Hover(1, 0); !changed {
		t.Error("Expected new anchor to recompute")
	}
}

func TestSessionLeaveKeepsDragging(t *testing.T) {
	s := newSession(t)
	s.Start(lShape(t))
	s.Hover(1, 1)

	if !s.Leave() {
		t.Fatal("Expected Leave to be handled while dragging")
	}
	if s.State() != StateDragging {
		t.Errorf("Expected Dragging after Leave, got %s", s.State())
	}
	if s.Overlay().Count() != 0 {
		t.Error("Expected overlay cleared on Leave")
	}
	if _, changed := s.Hover(1, 1); !changed {
		t.Error("Expected re-entry at the same cell to recompute")
	}
}

func TestSessionDrop(t *testing.T) {
	s := newSession(t)
	sh := lShape(t)
	s.Start(sh)
	s.Hover(2, 2)

	res, ok := s.Drop(2, 2)
	if !ok {
		t.Fatal("Expected Drop to succeed")
	}
	if res.Shape != sh || res.Anchor != (grid.Point{Row: 2, Col: 2}) {
		t.Errorf("Unexpected drop result %+v", res)
	}
	if s.State() != StateIdle {
		t.Errorf("Expected Idle after drop, got %s", s.State())
	}
	if _, ok := s.Dragging(); ok {
		t.Error("Expected session shape cleared after drop")
	}
	if _, ok := s.LastAnchor(); ok {
		t.Error("Expected memo cleared after drop")
	}
	if s.Overlay().Count() != 0 {
		t.Error("Expected overlay cleared after drop")
	}
}

func TestSessionEndWithoutDrop(t *testing.T) {
	s := newSession(t)
	s.Start(lShape(t))
	s.Hover(0, 0)

	if !s.End() {
		t.Fatal("Expected End to be handled")
	}
	if s.State() != StateIdle || s.Overlay().Count() != 0 {
		t.Error("Expected Idle with empty overlay after End")
	}
}

func TestSessionIdleIgnoresEvents(t *testing.T) {
	s := newSession(t)

	if _, changed := s.Hover(0, 0); changed {
		t.Error("Expected hover while idle to be ignored")
	}
	if s.Leave() || s.End() {
		t.Error("Expected leave/end while idle to be ignored")
	}
	if _, ok := s.Drop(0, 0); ok {
		t.Error("Expected drop while idle to be ignored")
	}
	if _, ok := s.LastAnchor(); ok {
		t.Error("Expected no memo from ignored hover")
	}
}
