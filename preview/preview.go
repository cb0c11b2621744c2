// Package preview computes the transient overlay shown while a shape is dragged
package preview

import (
	"github.com/lixenwraith/shapeboard/grid"
	"github.com/lixenwraith/shapeboard/placement"
	"github.com/lixenwraith/shapeboard/shape"
)

// Coordinator owns the overlay grid and the last anchor it was computed for
// The memo keys on anchor only; one shape is dragged per session
type Coordinator struct {
	height, width int
	overlay       grid.Grid
	lastAnchor    grid.Point
	hasAnchor     bool
}

// NewCoordinator creates a coordinator for a height x width board
func NewCoordinator(height, width int) *Coordinator {
	return &Coordinator{
		height:  height,
		width:   width,
		overlay: grid.New(height, width),
	}
}

// Hover recomputes the overlay for s at anchor
// Returns false (no change) when anchor equals the last computed anchor
func (c *Coordinator) Hover(s *shape.Shape, anchor grid.Point) (grid.Grid, bool) {
	if c.hasAnchor && c.lastAnchor == anchor {
		return c.overlay, false
	}
	c.lastAnchor = anchor
	c.hasAnchor = true
	// Against an empty grid: the overlay shows the footprint only, not board occupancy
	c.overlay = placement.Place(grid.New(c.height, c.width), s, anchor)
	return c.overlay, true
}

// Clear resets the overlay to all-inactive and forgets the anchor
func (c *Coordinator) Clear() {
	c.overlay = grid.New(c.height, c.width)
	c.lastAnchor = grid.Point{}
	c.hasAnchor = false
}

// Overlay returns the current overlay
func (c *Coordinator) Overlay() grid.Grid {
	return c.overlay
}

// LastAnchor returns the memoized anchor, false when none
func (c *Coordinator) LastAnchor() (grid.Point, bool) {
	return c.lastAnchor, c.hasAnchor
}
