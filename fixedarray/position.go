package fixedarray

import (
	"strconv"
	"strings"

	"github.com/robert-malhotra/go-fixedarray/internal/shape"
)

// Position is a multi-dimensional index built the same way an Array is:
// one index for the outermost axis plus, for every axis but the last, a
// nested Position over the remaining axes.
//
// An index equal to its extent is the end sentinel for that axis.
type Position struct {
	index  int
	extent int
	nested *Position
}

// newPosition returns the all-zero position for extents.
func newPosition(extents shape.Extents) *Position {
	if len(extents) == 0 {
		return nil
	}
	return &Position{
		extent: extents[0],
		nested: newPosition(extents.Inner()),
	}
}

// Rank returns the number of axes the position spans.
func (p *Position) Rank() int {
	n := 0
	for ; p != nil; p = p.nested {
		n++
	}
	return n
}

// Index returns the component for axis, counted from the outermost.
// It returns -1 when axis is not in [0, Rank()).
func (p *Position) Index(axis int) int {
	if axis < 0 {
		return -1
	}
	for ; axis > 0 && p != nil; axis-- {
		p = p.nested
	}
	if p == nil {
		return -1
	}
	return p.index
}

// Indices returns every component, outermost first.
func (p *Position) Indices() []int {
	out := make([]int, 0, p.Rank())
	for ; p != nil; p = p.nested {
		out = append(out, p.index)
	}
	return out
}

// Equal compares the index at this level and then the nested positions.
func (p *Position) Equal(other *Position) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.index != other.index {
		return false
	}
	return p.nested.Equal(other.nested)
}

func (p *Position) String() string {
	idx := p.Indices()
	parts := make([]string, len(idx))
	for i, n := range idx {
		parts[i] = strconv.Itoa(n)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

func (p *Position) clone() *Position {
	if p == nil {
		return nil
	}
	return &Position{
		index:  p.index,
		extent: p.extent,
		nested: p.nested.clone(),
	}
}

// setMax moves every axis to its last valid index.
func (p *Position) setMax() {
	for ; p != nil; p = p.nested {
		p.index = p.extent - 1
	}
}

// advanceFirstMajor steps so that the last axis varies fastest. It
// reports true when this level rolled past its extent.
func (p *Position) advanceFirstMajor() bool {
	if p.nested != nil {
		if !p.nested.advanceFirstMajor() {
			return false
		}
		p.nested.index = 0
	}
	p.index++
	return p.index == p.extent
}

// advanceLastMajor steps so that the first axis varies fastest. The
// innermost level never resets, so it alone reaches the end sentinel.
func (p *Position) advanceLastMajor() {
	p.index++
	if p.nested != nil && p.index == p.extent {
		p.index = 0
		p.nested.advanceLastMajor()
	}
}

// resolve finds the element p names in a, descending one nested array
// per level. Every level is bounds checked by a's own indexing.
func resolve[T any](a *Array[T], p *Position) (*T, error) {
	if p.nested == nil {
		return a.Ptr(p.index)
	}
	sub, err := a.Sub(p.index)
	if err != nil {
		return nil, err
	}
	return resolve(sub, p.nested)
}
