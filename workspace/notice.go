package workspace

import (
	"github.com/lixenwraith/shapeboard/placement"
	"github.com/lixenwraith/shapeboard/shape"
)

// NoticeKind identifies a workspace notice
type NoticeKind int

const (
	NoticeCommitted NoticeKind = iota // Shape, Index
	NoticePlaced                      // Shape, Fit
	NoticeRejected                    // Err
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeCommitted:
		return "Committed"
	case NoticePlaced:
		return "Placed"
	case NoticeRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Notice reports a completed or rejected command to observers
type Notice struct {
	Kind  NoticeKind
	Shape *shape.Shape
	Index int
	Fit   placement.Fit
	Err   error
}

// Observer receives notices synchronously, after state is updated
type Observer func(Notice)
