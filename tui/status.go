package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/shapeboard/grid"
	"github.com/lixenwraith/shapeboard/palette"
	"github.com/lixenwraith/shapeboard/placement"
	"github.com/lixenwraith/shapeboard/workspace"
)

// StatusKind selects the status message color
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

// StatusTTL is how long a message stays visible
const StatusTTL = 3 * time.Second

// Status holds the transient message shown on the status line
// Fed by workspace notices on the command loop goroutine
type Status struct {
	msg     string
	kind    StatusKind
	expires time.Time
	now     func() time.Time
}

// NewStatus creates an empty status line
func NewStatus() *Status {
	return &Status{now: time.Now}
}

// Set shows msg until StatusTTL elapses
func (s *Status) Set(msg string, kind StatusKind) {
	s.msg = msg
	s.kind = kind
	s.expires = s.now().Add(StatusTTL)
}

// Message returns the live message; empty once expired
func (s *Status) Message() (string, StatusKind) {
	if s.msg != "" && s.now().After(s.expires) {
		s.msg = ""
	}
	return s.msg, s.kind
}

// Observe converts workspace notices into status messages
func (s *Status) Observe(n workspace.Notice) {
	switch n.Kind {
	case workspace.NoticeCommitted:
		s.Set(fmt.Sprintf("shape %d added (%v)", n.Index+1, n.Shape.Size()), StatusSuccess)
	case workspace.NoticePlaced:
		msg := fmt.Sprintf("placed %d cell(s) at %v", len(n.Fit.Inside), n.Fit.Anchor)
		if n.Fit.Clipped > 0 {
			msg += fmt.Sprintf(", %d clipped", n.Fit.Clipped)
		}
		s.Set(msg, StatusSuccess)
	case workspace.NoticeRejected:
		s.Set(rejectText(n.Err), StatusError)
	}
}

func rejectText(err error) string {
	switch {
	case errors.Is(err, placement.ErrOutOfBoard):
		return "shape does not fit there"
	case errors.Is(err, palette.ErrUnknownShape):
		return "no such shape"
	case errors.Is(err, grid.ErrOutOfRange):
		return "outside the editing grid"
	case err != nil:
		return err.Error()
	default:
		return "rejected"
	}
}
