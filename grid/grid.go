package grid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfRange is returned when a coordinate falls outside the grid
	ErrOutOfRange = errors.New("cell out of range")
	// ErrRagged is returned when source rows differ in length
	ErrRagged = errors.New("ragged rows")
	// ErrEmpty is returned when a source has no rows or no columns
	ErrEmpty = errors.New("empty grid")
)

// Text form runes
const (
	RuneActive   = '#'
	RuneInactive = '.'
)

// Point is a zero-based (row, col) coordinate
type Point struct {
	Row, Col int
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{Row: p.Row + q.Row, Col: p.Col + q.Col}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is a fixed-size rectangle of boolean cells
// Value semantics: no exported method mutates the receiver, mutators return a fresh copy
type Grid struct {
	height int
	width  int
	cells  []bool // row-major: cells[row*width + col]
}

// New creates an all-inactive grid of the given dimensions
// Non-positive dimensions yield a zero-sized grid
func New(height, width int) Grid {
	if height < 1 || width < 1 {
		return Grid{}
	}
	return Grid{
		height: height,
		width:  width,
		cells:  make([]bool, height*width),
	}
}

// FromRows builds a grid from a row slice, copying the input
func FromRows(rows [][]bool) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, ErrEmpty
	}
	g := New(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != g.width {
			return Grid{}, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), g.width, ErrRagged)
		}
		copy(g.cells[r*g.width:], row)
	}
	return g, nil
}

// Parse reads the text form: one line per row, '#' active and '.' inactive
// Blank lines and surrounding whitespace are ignored
func Parse(s string) (Grid, error) {
	var rows [][]bool
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		for i, ch := range line {
			switch ch {
			case RuneActive:
				row = append(row, true)
			case RuneInactive:
				row = append(row, false)
			default:
				return Grid{}, fmt.Errorf("row %d col %d: unexpected %q", len(rows), i, ch)
			}
		}
		rows = append(rows, row)
	}
	return FromRows(rows)
}

// MustParse is Parse that panics on malformed input, for fixtures
func MustParse(s string) Grid {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

// Height returns the number of rows
func (g Grid) Height() int {
	return g.height
}

// Width returns the number of columns
func (g Grid) Width() int {
	return g.width
}

// IsZero reports whether the grid has no cells
func (g Grid) IsZero() bool {
	return g.height == 0 || g.width == 0
}

// InBounds reports whether (row, col) addresses a cell
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Active returns the state of a cell
func (g Grid) Active(row, col int) (bool, error) {
	if !g.InBounds(row, col) {
		return false, fmt.Errorf("%v in %dx%d: %w", Point{row, col}, g.height, g.width, ErrOutOfRange)
	}
	return g.cells[row*g.width+col], nil
}

// At returns the state of a cell, false outside the grid
func (g Grid) At(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.cells[row*g.width+col]
}

// Clone returns a deep copy
func (g Grid) Clone() Grid {
	if g.cells == nil {
		return g
	}
	out := g
	out.cells = make([]bool, len(g.cells))
	copy(out.cells, g.cells)
	return out
}

// Toggle returns a copy with (row, col) flipped
// The receiver is untouched on error
func (g Grid) Toggle(row, col int) (Grid, error) {
	if !g.InBounds(row, col) {
		return g, fmt.Errorf("toggle %v in %dx%d: %w", Point{row, col}, g.height, g.width, ErrOutOfRange)
	}
	out := g.Clone()
	i := row*g.width + col
	out.cells[i] = !out.cells[i]
	return out, nil
}

// WithActive returns a copy with every in-bounds point set active
// Out-of-bounds points are skipped; the count of applied points is returned
func (g Grid) WithActive(points ...Point) (Grid, int) {
	out := g.Clone()
	applied := 0
	for _, p := range points {
		if !g.InBounds(p.Row, p.Col) {
			continue
		}
		out.cells[p.Row*g.width+p.Col] = true
		applied++
	}
	return out, applied
}

// Count returns the number of active cells
func (g Grid) Count() int {
	n := 0
	for _, v := range g.cells {
		if v {
			n++
		}
	}
	return n
}

// Points returns active cells in row-major order
func (g Grid) Points() []Point {
	points := make([]Point, 0, g.Count())
	for i, v := range g.cells {
		if v {
			points = append(points, Point{Row: i / g.width, Col: i % g.width})
		}
	}
	return points
}

// Row returns a copy of one row, nil outside the grid
func (g Grid) Row(row int) []bool {
	if row < 0 || row >= g.height {
		return nil
	}
	line := make([]bool, g.width)
	copy(line, g.cells[row*g.width:(row+1)*g.width])
	return line
}

// Rows returns a copy of all rows
func (g Grid) Rows() [][]bool {
	rows := make([][]bool, g.height)
	for r := range rows {
		rows[r] = g.Row(r)
	}
	return rows
}

// Equal reports whether both grids have the same dimensions and cells
func (g Grid) Equal(o Grid) bool {
	if g.height != o.height || g.width != o.width {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the text form accepted by Parse
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if g.cells[r*g.width+c] {
				sb.WriteRune(RuneActive)
			} else {
				sb.WriteRune(RuneInactive)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
