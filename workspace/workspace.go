// Package workspace is the in-process command surface: paint, commit, drag and drop
package workspace

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lixenwraith/shapeboard/config"
	"github.com/lixenwraith/shapeboard/event"
	"github.com/lixenwraith/shapeboard/grid"
	"github.com/lixenwraith/shapeboard/palette"
	"github.com/lixenwraith/shapeboard/placement"
	"github.com/lixenwraith/shapeboard/session"
	"github.com/lixenwraith/shapeboard/shape"
)

// Workspace owns the editing grid, palette, board and drag session
// Every state slot is replaced on change, never written in place, so grids
// returned by getters stay valid. Not safe for concurrent use
type Workspace struct {
	cfg       config.Config
	policy    placement.Policy
	log       *slog.Logger
	observers []Observer

	edit    grid.Grid
	palette palette.Palette
	board   grid.Grid
	session *session.Session
}

// Option configures a Workspace
type Option func(*Workspace)

// WithLogger sets the logger; the default discards
func WithLogger(l *slog.Logger) Option {
	return func(w *Workspace) {
		if l != nil {
			w.log = l
		}
	}
}

// WithObserver registers a notice callback
func WithObserver(o Observer) Option {
	return func(w *Workspace) {
		if o != nil {
			w.observers = append(w.observers, o)
		}
	}
}

// New creates a workspace with blank editing grid and board
func New(cfg config.Config, opts ...Option) (*Workspace, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sess, err := session.New(cfg.BoardHeight, cfg.BoardWidth)
	if err != nil {
		return nil, err
	}

	w := &Workspace{
		cfg:     cfg,
		policy:  cfg.Policy(),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		edit:    grid.New(cfg.EditHeight, cfg.EditWidth),
		board:   grid.New(cfg.BoardHeight, cfg.BoardWidth),
		session: sess,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Paint toggles an editing grid cell
// On ErrOutOfRange the editing grid is unchanged
func (w *Workspace) Paint(row, col int) (grid.Grid, error) {
	next, err := w.edit.Toggle(row, col)
	if err != nil {
		w.reject("paint", err)
		return w.edit, err
	}
	w.edit = next
	w.log.Debug("paint", "row", row, "col", col, "active", next.At(row, col))
	return w.edit, nil
}

// Commit extracts the painted region, appends it and resets the editing grid
// A blank editing grid is a no-op returning false
func (w *Workspace) Commit() (*shape.Shape, bool) {
	s, ok := shape.Extract(w.edit)
	if !ok {
		w.log.Debug("commit skipped, editing grid is blank")
		return nil, false
	}

	w.palette = w.palette.Append(s)
	w.edit = grid.New(w.cfg.EditHeight, w.cfg.EditWidth)

	index := w.palette.Len() - 1
	w.log.Info("shape committed", "index", index, "size", s.Size().String(), "cells", s.Count())
	w.notify(Notice{Kind: NoticeCommitted, Shape: s, Index: index})
	return s, true
}

// DragStart begins dragging palette entry index
// Fails with palette.ErrUnknownShape; a start during an active drag is ignored
func (w *Workspace) DragStart(index int) error {
	s, err := w.palette.At(index)
	if err != nil {
		w.reject("drag start", err)
		return err
	}
	if !w.session.Start(s) {
		w.log.Debug("drag start ignored, drag already active", "index", index)
		return nil
	}
	w.log.Debug("drag started", "index", index, "size", s.Size().String())
	return nil
}

// DragHover updates the preview for the pointer over board cell (row, col)
// Returns false when there is no drag or the anchor is unchanged
func (w *Workspace) DragHover(row, col int) (grid.Grid, bool) {
	return w.session.Hover(row, col)
}

// DragLeave clears the preview; the drag stays active
func (w *Workspace) DragLeave() {
	w.session.Leave()
}

// DragEnd ends the drag without placing
func (w *Workspace) DragEnd() {
	if w.session.End() {
		w.log.Debug("drag ended without drop")
	}
}

// Drop ends the drag and merges the shape at (row, col)
// No-op without an active drag. Under the reject policy a clipping drop
// ends the drag, leaves the board unchanged and returns placement.ErrOutOfBoard
func (w *Workspace) Drop(row, col int) (grid.Grid, error) {
	res, ok := w.session.Drop(row, col)
	if !ok {
		w.log.Debug("drop ignored, no active drag", "row", row, "col", col)
		return w.board, nil
	}

	next, fit, err := placement.Apply(w.board, res.Shape, res.Anchor, w.policy)
	if err != nil {
		w.reject("drop", err)
		return w.board, err
	}

	w.board = next
	if fit.Clipped > 0 {
		w.log.Info("shape clipped at board edge", "anchor", res.Anchor.String(), "clipped", fit.Clipped)
	}
	w.log.Info("shape placed", "anchor", res.Anchor.String(), "cells", len(fit.Inside))
	w.notify(Notice{Kind: NoticePlaced, Shape: res.Shape, Fit: fit})
	return w.board, nil
}

// Dispatch routes a host event to its command
// Errors are the command's own; Quit and None are ignored
func (w *Workspace) Dispatch(ev event.Event) error {
	switch ev.Type {
	case event.EventPaint:
		_, err := w.Paint(ev.Row, ev.Col)
		return err
	case event.EventCommit:
		w.Commit()
	case event.EventDragStart:
		return w.DragStart(ev.Index)
	case event.EventDragHover:
		w.DragHover(ev.Row, ev.Col)
	case event.EventDragLeave:
		w.DragLeave()
	case event.EventDragEnd:
		w.DragEnd()
	case event.EventDrop:
		_, err := w.Drop(ev.Row, ev.Col)
		return err
	case event.EventQuit, event.EventNone:
	default:
		return fmt.Errorf("unhandled event %s", ev)
	}
	return nil
}

func (w *Workspace) reject(cmd string, err error) {
	w.log.Warn("command rejected", "command", cmd, "error", err)
	w.notify(Notice{Kind: NoticeRejected, Err: err})
}

func (w *Workspace) notify(n Notice) {
	for _, o := range w.observers {
		o(n)
	}
}

// Config returns the session configuration
func (w *Workspace) Config() config.Config {
	return w.cfg
}

// EditGrid returns the current editing grid
func (w *Workspace) EditGrid() grid.Grid {
	return w.edit
}

// Palette returns the current palette
func (w *Workspace) Palette() palette.Palette {
	return w.palette
}

// Board returns the current board
func (w *Workspace) Board() grid.Grid {
	return w.board
}

// Overlay returns the current preview overlay
func (w *Workspace) Overlay() grid.Grid {
	return w.session.Overlay()
}

// Dragging returns the shape being dragged
func (w *Workspace) Dragging() (*shape.Shape, bool) {
	return w.session.Dragging()
}

// State returns the drag lifecycle state name
func (w *Workspace) State() string {
	return w.session.State()
}
