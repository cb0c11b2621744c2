package tui

import (
	"github.com/lixenwraith/shapeboard/config"
	"github.com/lixenwraith/shapeboard/grid"
	"github.com/lixenwraith/shapeboard/palette"
)

// CellWidth is the number of screen columns per grid cell
const CellWidth = 2

// Panel spacing
const (
	marginX     = 1
	marginY     = 1
	panelGap    = 2
	boxPadX     = 2 // border + space before grid
	entryGap    = 1 // blank lines between palette entries
	commitLabel = "[ Commit ]"
)

// Rect is a screen rectangle in columns and rows
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether screen position (x, y) is inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout is an immutable snapshot of screen geometry for one frame
// Shared read-only between the draw loop and the input goroutine
type Layout struct {
	Width, Height int

	EditBox    Rect
	Edit       Rect // cell area of the editing grid
	Commit     Rect
	PaletteBox Rect
	Entries    []Rect // one per visible palette entry, in palette order
	Hidden     int    // palette entries that did not fit
	BoardBox   Rect
	Board      Rect // cell area of the board
	StatusY    int
}

// NewLayout places the panels for the given config, palette and screen size
func NewLayout(cfg config.Config, pal palette.Palette, width, height int) *Layout {
	l := &Layout{Width: width, Height: height, StatusY: height - 1}

	editGridW := cfg.EditWidth * CellWidth
	columnW := max(editGridW+2*boxPadX, len(commitLabel)+2)

	l.EditBox = Rect{X: marginX, Y: marginY, W: columnW, H: cfg.EditHeight + 2}
	l.Edit = Rect{X: marginX + boxPadX, Y: marginY + 1, W: editGridW, H: cfg.EditHeight}

	commitY := l.EditBox.Y + l.EditBox.H
	l.Commit = Rect{X: marginX + 1, Y: commitY, W: len(commitLabel), H: 1}

	paletteY := commitY + 1
	l.PaletteBox = Rect{X: marginX, Y: paletteY, W: columnW, H: max(l.StatusY-paletteY, 2)}

	// Stack entries in order until the palette box is full; entry i is palette index i
	y := l.PaletteBox.Y + 1
	bottom := l.PaletteBox.Y + l.PaletteBox.H - 1
	for _, s := range pal.All() {
		size := s.Size()
		if y+size.H > bottom {
			break
		}
		l.Entries = append(l.Entries, Rect{X: marginX + boxPadX, Y: y, W: size.W * CellWidth, H: size.H})
		y += size.H + entryGap
	}
	l.Hidden = pal.Len() - len(l.Entries)

	boardX := marginX + columnW + panelGap
	l.BoardBox = Rect{X: boardX, Y: marginY, W: cfg.BoardWidth*CellWidth + 2*boxPadX, H: cfg.BoardHeight + 2}
	l.Board = Rect{X: boardX + boxPadX, Y: marginY + 1, W: cfg.BoardWidth * CellWidth, H: cfg.BoardHeight}

	return l
}

// EditCell maps a screen position to an editing grid cell
func (l *Layout) EditCell(x, y int) (grid.Point, bool) {
	return cellAt(l.Edit, x, y)
}

// BoardCell maps a screen position to a board cell
func (l *Layout) BoardCell(x, y int) (grid.Point, bool) {
	return cellAt(l.Board, x, y)
}

// Entry maps a screen position to a visible palette index
// The whole bounding box of an entry is a drag handle
func (l *Layout) Entry(x, y int) (int, bool) {
	for i, r := range l.Entries {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// OnCommit reports whether (x, y) is on the commit button
func (l *Layout) OnCommit(x, y int) bool {
	return l.Commit.Contains(x, y)
}

func cellAt(r Rect, x, y int) (grid.Point, bool) {
	if !r.Contains(x, y) {
		return grid.Point{}, false
	}
	return grid.Point{Row: y - r.Y, Col: (x - r.X) / CellWidth}, true
}
