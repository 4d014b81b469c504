package shape

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidExtent = errors.New("shape: extent must be positive")
	ErrNoDimensions  = errors.New("shape: at least one dimension is required")
)

// ExtentError reports the axis holding a non-positive extent.
type ExtentError struct {
	Axis   int
	Extent int
}

func (e *ExtentError) Error() string {
	return fmt.Sprintf("shape: dimension %d has extent %d, extents must be positive", e.Axis, e.Extent)
}

func (e *ExtentError) Unwrap() error { return ErrInvalidExtent }

// Extents is a validated, ordered list of axis sizes.
type Extents []int

// New validates dims and returns a private copy of them.
func New(dims ...int) (Extents, error) {
	if len(dims) == 0 {
		return nil, ErrNoDimensions
	}
	n := 1
	for axis, d := range dims {
		if d <= 0 {
			return nil, &ExtentError{Axis: axis, Extent: d}
		}
		if n > math.MaxInt/d {
			return nil, fmt.Errorf("%w: element count of %v overflows int", ErrInvalidExtent, dims)
		}
		n *= d
	}
	e := make(Extents, len(dims))
	copy(e, dims)
	return e, nil
}

// Rank returns the number of axes.
func (e Extents) Rank() int {
	return len(e)
}

// NumElements returns the product of all extents.
func (e Extents) NumElements() int {
	if len(e) == 0 {
		return 0
	}
	n := 1
	for _, d := range e {
		n *= d
	}
	return n
}

// Strides returns row-major element strides (last axis stride is 1).
func (e Extents) Strides() []int {
	if len(e) == 0 {
		return nil
	}
	strides := make([]int, len(e))
	strides[len(e)-1] = 1
	for i := len(e) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * e[i+1]
	}
	return strides
}

// Inner returns the extents below the outermost axis. The result shares
// storage with e and is nil for a single-axis list.
func (e Extents) Inner() Extents {
	if len(e) <= 1 {
		return nil
	}
	return e[1:]
}

// Equal reports whether both lists have the same rank and extents.
func (e Extents) Equal(other Extents) bool {
	if len(e) != len(other) {
		return false
	}
	for i := range e {
		if e[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy that does not share storage with e.
func (e Extents) Clone() Extents {
	if e == nil {
		return nil
	}
	c := make(Extents, len(e))
	copy(c, e)
	return c
}

// String formats the extents as "2x3x4".
func (e Extents) String() string {
	parts := make([]string, len(e))
	for i, d := range e {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, "x")
}

// Parse reads a comma or "x" separated extent list such as "2,3" or "2x3"
// and validates it with New.
func Parse(s string) (Extents, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == 'x' || r == ' '
	})
	dims := make([]int, 0, len(fields))
	for _, f := range fields {
		d, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("shape: parsing extent %q: %w", f, err)
		}
		dims = append(dims, d)
	}
	return New(dims...)
}
