// Package shape extracts minimal-bounding-box polyominoes from a painted grid
package shape

import (
	"fmt"

	"github.com/lixenwraith/shapeboard/grid"
)

// Size is a shape's bounding box in cells
type Size struct {
	H, W int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.H, s.W)
}

// Rect is a bounding box within a source grid
type Rect struct {
	Min  grid.Point // top-left, inclusive
	Size Size
}

// Max returns the bottom-right cell, inclusive
func (r Rect) Max() grid.Point {
	return grid.Point{Row: r.Min.Row + r.Size.H - 1, Col: r.Min.Col + r.Size.W - 1}
}

// Shape is an immutable polyomino trimmed to its bounding box
// Interior inactive cells are kept; there is no connectivity requirement
type Shape struct {
	cells grid.Grid
}

// Bounds returns the smallest rectangle holding every active cell of g
// Returns false when g has no active cell
func Bounds(g grid.Grid) (Rect, bool) {
	minRow, maxRow := g.Height(), -1
	minCol, maxCol := g.Width(), -1

	for _, p := range g.Points() {
		minRow = min(minRow, p.Row)
		maxRow = max(maxRow, p.Row)
		minCol = min(minCol, p.Col)
		maxCol = max(maxCol, p.Col)
	}

	if maxRow < 0 {
		return Rect{}, false
	}

	return Rect{
		Min:  grid.Point{Row: minRow, Col: minCol},
		Size: Size{H: maxRow - minRow + 1, W: maxCol - minCol + 1},
	}, true
}

// Extract trims g to its bounding box
// Returns false for an all-inactive grid; callers must not create a blank shape
func Extract(g grid.Grid) (*Shape, bool) {
	r, ok := Bounds(g)
	if !ok {
		return nil, false
	}

	points := make([]grid.Point, 0, g.Count())
	for _, p := range g.Points() {
		points = append(points, grid.Point{Row: p.Row - r.Min.Row, Col: p.Col - r.Min.Col})
	}

	cells, _ := grid.New(r.Size.H, r.Size.W).WithActive(points...)
	return &Shape{cells: cells}, true
}

// FromGrid extracts a shape from a fixture in grid text form
func FromGrid(text string) (*Shape, error) {
	g, err := grid.Parse(text)
	if err != nil {
		return nil, err
	}
	s, ok := Extract(g)
	if !ok {
		return nil, fmt.Errorf("shape fixture: %w", grid.ErrEmpty)
	}
	return s, nil
}

// Size returns the bounding box dimensions
func (s *Shape) Size() Size {
	return Size{H: s.cells.Height(), W: s.cells.Width()}
}

// Cells returns a copy of the cell grid
func (s *Shape) Cells() grid.Grid {
	return s.cells.Clone()
}

// Active reports whether local cell (i, j) is part of the shape
func (s *Shape) Active(i, j int) bool {
	return s.cells.At(i, j)
}

// Offsets returns the active local cells in row-major order
func (s *Shape) Offsets() []grid.Point {
	return s.cells.Points()
}

// Count returns the number of active cells
func (s *Shape) Count() int {
	return s.cells.Count()
}

func (s *Shape) String() string {
	return s.cells.String()
}
