package fixedarray

import (
	"errors"
	"fmt"

	"github.com/robert-malhotra/go-fixedarray/internal/shape"
)

// Common errors
var (
	ErrOutOfRange    = errors.New("fixedarray: index out of range")
	ErrRank          = errors.New("fixedarray: operation not valid for this rank")
	ErrShapeMismatch = errors.New("fixedarray: extents do not match")
	ErrNoContainer   = errors.New("fixedarray: cursor has no container")

	// ErrInvalidExtent and ErrNoDimensions are returned by New when the
	// extent list is rejected.
	ErrInvalidExtent = shape.ErrInvalidExtent
	ErrNoDimensions  = shape.ErrNoDimensions
)

// IndexError is returned, or used as a panic value by cursor
// dereference, when an index falls outside [0, extent).
// It matches ErrOutOfRange with errors.Is.
type IndexError struct {
	Index  int
	Extent int
	Axis   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("fixedarray: index %d is out of range [0, %d) on axis %d", e.Index, e.Extent, e.Axis)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }
