// Package palette holds the ordered list of shapes created in a session
package palette

import (
	"errors"
	"fmt"
	"iter"

	"github.com/lixenwraith/shapeboard/shape"
)

// ErrUnknownShape is returned for an index outside the palette
var ErrUnknownShape = errors.New("unknown shape")

// Palette is an append-only sequence of shapes in creation order
// The zero value is an empty palette
type Palette struct {
	shapes []*shape.Shape
}

// Append returns a palette with s added at the end
// The receiver keeps its contents; the backing array is never shared
func (p Palette) Append(s *shape.Shape) Palette {
	shapes := make([]*shape.Shape, len(p.shapes), len(p.shapes)+1)
	copy(shapes, p.shapes)
	return Palette{shapes: append(shapes, s)}
}

// Len returns the number of shapes
func (p Palette) Len() int {
	return len(p.shapes)
}

// At returns the shape at index i
func (p Palette) At(i int) (*shape.Shape, error) {
	if i < 0 || i >= len(p.shapes) {
		return nil, fmt.Errorf("index %d of %d: %w", i, len(p.shapes), ErrUnknownShape)
	}
	return p.shapes[i], nil
}

// All iterates shapes in insertion order
func (p Palette) All() iter.Seq2[int, *shape.Shape] {
	return func(yield func(int, *shape.Shape) bool) {
		for i, s := range p.shapes {
			if !yield(i, s) {
				return
			}
		}
	}
}
