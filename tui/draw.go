package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shapeboard/grid"
	"github.com/lixenwraith/shapeboard/render"
	"github.com/lixenwraith/shapeboard/workspace"
)

// UI Colors
var (
	ColorBg        = tcell.NewRGBColor(16, 16, 20)
	ColorGridBg    = tcell.NewRGBColor(30, 30, 35)
	ColorActive    = tcell.NewRGBColor(245, 158, 11)
	ColorPlaced    = tcell.NewRGBColor(0, 200, 130)
	ColorPreview   = tcell.NewRGBColor(90, 140, 255)
	ColorConflict  = tcell.NewRGBColor(200, 50, 50)
	ColorText      = tcell.NewRGBColor(200, 200, 220)
	ColorHighlight = tcell.NewRGBColor(255, 200, 0)
	ColorDim       = tcell.NewRGBColor(100, 100, 110)
	ColorBorder    = tcell.NewRGBColor(80, 80, 100)
	ColorSuccess   = tcell.NewRGBColor(50, 200, 100)
	ColorError     = tcell.NewRGBColor(200, 50, 50)
)

// Box drawing characters
const (
	BoxTopLeft     = '┌'
	BoxTopRight    = '┐'
	BoxBottomLeft  = '└'
	BoxBottomRight = '┘'
	BoxHorizontal  = '─'
	BoxVertical    = '│'
	DotMiddle      = '·'
)

var (
	styleBg     = tcell.StyleDefault.Background(ColorBg).Foreground(ColorText)
	styleBorder = tcell.StyleDefault.Background(ColorBg).Foreground(ColorBorder)
	styleTitle  = tcell.StyleDefault.Background(ColorBg).Foreground(ColorHighlight).Bold(true)
	styleDim    = tcell.StyleDefault.Background(ColorBg).Foreground(ColorDim)
	styleEmpty  = tcell.StyleDefault.Background(ColorGridBg).Foreground(ColorDim)
)

var boardStyles = [...]tcell.Style{
	render.StateEmpty:    styleEmpty,
	render.StatePlaced:   tcell.StyleDefault.Background(ColorPlaced),
	render.StatePreview:  tcell.StyleDefault.Background(ColorPreview),
	render.StateConflict: tcell.StyleDefault.Background(ColorConflict),
}

// Draw renders one frame of ws into screen using layout l
func Draw(screen tcell.Screen, ws *workspace.Workspace, l *Layout, st *Status) {
	screen.Fill(' ', styleBg)

	drawBox(screen, l.EditBox, "Edit")
	drawEdit(screen, ws.EditGrid(), l.Edit)

	drawText(screen, l.Commit.X, l.Commit.Y, commitLabel, styleTitle)

	drawBox(screen, l.PaletteBox, fmt.Sprintf("Palette %d", ws.Palette().Len()))
	drawPalette(screen, ws, l)

	drawBox(screen, l.BoardBox, "Board")
	drawBoard(screen, ws.Board(), ws.Overlay(), l.Board)

	drawStatus(screen, ws, l, st)
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func drawBox(screen tcell.Screen, r Rect, title string) {
	if r.W < 2 || r.H < 2 {
		return
	}
	screen.SetContent(r.X, r.Y, BoxTopLeft, nil, styleBorder)
	screen.SetContent(r.X+r.W-1, r.Y, BoxTopRight, nil, styleBorder)
	screen.SetContent(r.X, r.Y+r.H-1, BoxBottomLeft, nil, styleBorder)
	screen.SetContent(r.X+r.W-1, r.Y+r.H-1, BoxBottomRight, nil, styleBorder)

	for i := 1; i < r.W-1; i++ {
		screen.SetContent(r.X+i, r.Y, BoxHorizontal, nil, styleBorder)
		screen.SetContent(r.X+i, r.Y+r.H-1, BoxHorizontal, nil, styleBorder)
	}
	for i := 1; i < r.H-1; i++ {
		screen.SetContent(r.X, r.Y+i, BoxVertical, nil, styleBorder)
		screen.SetContent(r.X+r.W-1, r.Y+i, BoxVertical, nil, styleBorder)
	}

	if title != "" {
		drawText(screen, r.X+2, r.Y, " "+title+" ", styleTitle)
	}
}

// setCell paints one grid cell, CellWidth columns wide
func setCell(screen tcell.Screen, origin Rect, row, col int, ch rune, style tcell.Style) {
	x := origin.X + col*CellWidth
	y := origin.Y + row
	for i := 0; i < CellWidth; i++ {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}

func drawEdit(screen tcell.Screen, g grid.Grid, area Rect) {
	active := tcell.StyleDefault.Background(ColorActive)
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			if g.At(r, c) {
				setCell(screen, area, r, c, ' ', active)
			} else {
				setCell(screen, area, r, c, DotMiddle, styleEmpty)
			}
		}
	}
}

func drawPalette(screen tcell.Screen, ws *workspace.Workspace, l *Layout) {
	dragged, dragging := ws.Dragging()
	pal := ws.Palette()

	for i, area := range l.Entries {
		s, err := pal.At(i)
		if err != nil {
			break
		}
		fill := ColorActive
		if dragging && s == dragged {
			fill = ColorHighlight
		}
		style := tcell.StyleDefault.Background(fill)

		size := s.Size()
		for r := 0; r < size.H; r++ {
			for c := 0; c < size.W; c++ {
				if s.Active(r, c) {
					setCell(screen, area, r, c, ' ', style)
				}
			}
		}
	}

	if l.Hidden > 0 {
		box := l.PaletteBox
		drawText(screen, box.X+2, box.Y+box.H-1, fmt.Sprintf(" +%d more ", l.Hidden), styleDim)
	}
}

func drawBoard(screen tcell.Screen, board, overlay grid.Grid, area Rect) {
	for r := 0; r < board.Height(); r++ {
		for c := 0; c < board.Width(); c++ {
			state := render.StateAt(board, overlay, r, c)
			ch := ' '
			if state == render.StateEmpty {
				ch = DotMiddle
			}
			setCell(screen, area, r, c, ch, boardStyles[state])
		}
	}
}

func drawStatus(screen tcell.Screen, ws *workspace.Workspace, l *Layout, st *Status) {
	left := fmt.Sprintf(" %s │ shapes %d │ placed %d ", ws.State(), ws.Palette().Len(), ws.Board().Count())
	if n := render.Conflicts(ws.Board(), ws.Overlay()); n > 0 {
		left += fmt.Sprintf("│ overlap %d ", n)
	}
	drawText(screen, 0, l.StatusY, left, styleDim)

	msg, kind := st.Message()
	if msg == "" {
		return
	}
	bg := tcell.NewRGBColor(60, 60, 80)
	switch kind {
	case StatusSuccess:
		bg = ColorSuccess
	case StatusError:
		bg = ColorError
	}
	text := " " + msg + " "
	x := max(l.Width-len([]rune(text))-1, len([]rune(left))+1)
	drawText(screen, x, l.StatusY, text, tcell.StyleDefault.Background(bg).Foreground(tcell.ColorWhite).Bold(true))
}
