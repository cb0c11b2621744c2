// Package render combines core grids into per-cell display states
// Colors and glyphs are the host's concern
package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/shapeboard/grid"
	"github.com/lixenwraith/shapeboard/palette"
)

// CellState is the display classification of one board cell
type CellState uint8

const (
	StateEmpty    CellState = iota
	StatePlaced             // board-active only
	StatePreview            // overlay-active only
	StateConflict           // board-active and overlay-active: attempted overlap
)

// Glyphs used by the text dump
var stateRunes = [...]rune{
	StateEmpty:    '.',
	StatePlaced:   '#',
	StatePreview:  'o',
	StateConflict: 'X',
}

func (s CellState) Rune() rune {
	if int(s) < len(stateRunes) {
		return stateRunes[s]
	}
	return '?'
}

func (s CellState) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StatePlaced:
		return "Placed"
	case StatePreview:
		return "Preview"
	case StateConflict:
		return "Conflict"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// StateAt classifies (row, col) from the board and the preview overlay
func StateAt(board, overlay grid.Grid, row, col int) CellState {
	placed := board.At(row, col)
	preview := overlay.At(row, col)
	switch {
	case placed && preview:
		return StateConflict
	case placed:
		return StatePlaced
	case preview:
		return StatePreview
	default:
		return StateEmpty
	}
}

// Conflicts counts cells where the overlay covers a placed cell
func Conflicts(board, overlay grid.Grid) int {
	n := 0
	for _, p := range overlay.Points() {
		if board.At(p.Row, p.Col) {
			n++
		}
	}
	return n
}

// Dump renders board and overlay as text, one line per row
func Dump(board, overlay grid.Grid) string {
	var sb strings.Builder
	for r := 0; r < board.Height(); r++ {
		for c := 0; c < board.Width(); c++ {
			sb.WriteRune(StateAt(board, overlay, r, c).Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DumpPalette renders every shape with an index header
func DumpPalette(p palette.Palette) string {
	var sb strings.Builder
	for i, s := range p.All() {
		fmt.Fprintf(&sb, "[%d] %v\n%s", i, s.Size(), s)
	}
	return sb.String()
}
