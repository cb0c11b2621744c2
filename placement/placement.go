// Package placement merges shapes into a target grid at an anchor cell
package placement

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/shapeboard/grid"
	"github.com/lixenwraith/shapeboard/shape"
)

// ErrOutOfBoard is returned under PolicyReject when a placement would clip
var ErrOutOfBoard = errors.New("placement leaves the board")

// Policy selects how sub-cells falling outside the board are handled
type Policy int

const (
	// PolicyClip drops out-of-board sub-cells and places the rest
	PolicyClip Policy = iota
	// PolicyReject refuses any placement that would clip
	PolicyReject
)

var policyNames = map[Policy]string{
	PolicyClip:   "clip",
	PolicyReject: "reject",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy resolves a policy name, case-insensitive; empty means clip
func ParsePolicy(name string) (Policy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return PolicyClip, nil
	}
	for p, n := range policyNames {
		if n == name {
			return p, nil
		}
	}
	return PolicyClip, fmt.Errorf("unknown placement policy %q", name)
}

// Fit describes where a shape lands for a given anchor
type Fit struct {
	Anchor  grid.Point
	Inside  []grid.Point // target cells within bounds, row-major
	Clipped int          // sub-cells that fell outside
}

// Footprint translates the active cells of s by anchor against a height x width target
func Footprint(s *shape.Shape, anchor grid.Point, height, width int) Fit {
	offsets := s.Offsets()
	fit := Fit{
		Anchor: anchor,
		Inside: make([]grid.Point, 0, len(offsets)),
	}
	for _, off := range offsets {
		p := anchor.Add(off)
		if p.Row < 0 || p.Row >= height || p.Col < 0 || p.Col >= width {
			fit.Clipped++
			continue
		}
		fit.Inside = append(fit.Inside, p)
	}
	return fit
}

// Overlaps counts footprint cells that are already active in board
func (f Fit) Overlaps(board grid.Grid) int {
	n := 0
	for _, p := range f.Inside {
		if board.At(p.Row, p.Col) {
			n++
		}
	}
	return n
}

// Place ORs the active cells of s into a copy of board with s's (0,0) at anchor
// Sub-cells outside the board are silently skipped; existing cells are kept
func Place(board grid.Grid, s *shape.Shape, anchor grid.Point) grid.Grid {
	fit := Footprint(s, anchor, board.Height(), board.Width())
	out, _ := board.WithActive(fit.Inside...)
	return out
}

// Apply places s under the given policy and reports the footprint used
// PolicyReject returns the board unchanged with ErrOutOfBoard on any clip
func Apply(board grid.Grid, s *shape.Shape, anchor grid.Point, policy Policy) (grid.Grid, Fit, error) {
	fit := Footprint(s, anchor, board.Height(), board.Width())
	if policy == PolicyReject && fit.Clipped > 0 {
		return board, fit, fmt.Errorf("anchor %v clips %d cell(s): %w", anchor, fit.Clipped, ErrOutOfBoard)
	}
	out, _ := board.WithActive(fit.Inside...)
	return out, fit, nil
}
