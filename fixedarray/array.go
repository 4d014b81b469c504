package fixedarray

import (
	"fmt"

	"github.com/robert-malhotra/go-fixedarray/internal/shape"
)

// Array is a fixed-size multi-dimensional container of T.
//
// An Array over extents (d0, d1, ..., dk-1) holds d0 nested arrays over
// (d1, ..., dk-1), or d0 values of T when it has a single axis. All
// values live in one backing slice allocated by New; nested arrays
// returned by Sub are views into that slice, so writes through them are
// visible through the parent.
//
// Assigning an *Array copies the reference, not the values. Use Clone or
// CopyFrom for a deep copy.
type Array[T any] struct {
	extents shape.Extents
	strides []int
	data    []T
	axis    int // axis of extents[0] in the outermost array
}

// New returns a zero-valued array with the given extents.
// Every extent must be positive.
func New[T any](dims ...int) (*Array[T], error) {
	extents, err := shape.New(dims...)
	if err != nil {
		return nil, err
	}
	return &Array[T]{
		extents: extents,
		strides: extents.Strides(),
		data:    make([]T, extents.NumElements()),
	}, nil
}

// MustNew is like New but panics if the extents are invalid.
func MustNew[T any](dims ...int) *Array[T] {
	a, err := New[T](dims...)
	if err != nil {
		panic(err)
	}
	return a
}

// FromSlice returns an array with the given extents holding a copy of
// values in row-major order.
func FromSlice[T any](values []T, dims ...int) (*Array[T], error) {
	a, err := New[T](dims...)
	if err != nil {
		return nil, err
	}
	if len(values) != len(a.data) {
		return nil, fmt.Errorf("%w: %d values for extents %s", ErrShapeMismatch, len(values), a.extents)
	}
	copy(a.data, values)
	return a, nil
}

// Rank returns the number of axes.
func (a *Array[T]) Rank() int {
	return a.extents.Rank()
}

// Len returns the outermost extent.
func (a *Array[T]) Len() int {
	if len(a.extents) == 0 {
		return 0
	}
	return a.extents[0]
}

// Extents returns a copy of the extent list.
func (a *Array[T]) Extents() []int {
	return a.extents.Clone()
}

// Size returns the total number of elements.
func (a *Array[T]) Size() int {
	return len(a.data)
}

// IsLeaf reports whether the array has a single axis and therefore
// indexes values directly.
func (a *Array[T]) IsLeaf() bool {
	return len(a.extents) == 1
}

func (a *Array[T]) checkIndex(n int) error {
	if n < 0 || n >= a.Len() {
		return &IndexError{Index: n, Extent: a.Len(), Axis: a.axis}
	}
	return nil
}

// Sub returns the nested array at index n of the outermost axis.
// The result shares storage with a.
func (a *Array[T]) Sub(n int) (*Array[T], error) {
	if len(a.extents) < 2 {
		return nil, fmt.Errorf("%w: Sub on rank %d array", ErrRank, len(a.extents))
	}
	if err := a.checkIndex(n); err != nil {
		return nil, err
	}
	lo, hi := n*a.strides[0], (n+1)*a.strides[0]
	return &Array[T]{
		extents: a.extents.Inner(),
		strides: a.strides[1:],
		data:    a.data[lo:hi:hi],
		axis:    a.axis + 1,
	}, nil
}

// Ptr returns a pointer to the value at index n of a single-axis array.
func (a *Array[T]) Ptr(n int) (*T, error) {
	if len(a.extents) != 1 {
		return nil, fmt.Errorf("%w: element access on rank %d array", ErrRank, len(a.extents))
	}
	if err := a.checkIndex(n); err != nil {
		return nil, err
	}
	return &a.data[n], nil
}

// Get returns the value at index n of a single-axis array.
func (a *Array[T]) Get(n int) (T, error) {
	p, err := a.Ptr(n)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set stores v at index n of a single-axis array.
func (a *Array[T]) Set(n int, v T) error {
	p, err := a.Ptr(n)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// PtrAt returns a pointer to the value at the full multi-index idx.
// Each index is checked against its own axis.
func (a *Array[T]) PtrAt(idx ...int) (*T, error) {
	if len(idx) == 0 || len(idx) != len(a.extents) {
		return nil, fmt.Errorf("%w: %d indices for rank %d array", ErrRank, len(idx), len(a.extents))
	}
	cur := a
	for _, n := range idx[:len(idx)-1] {
		sub, err := cur.Sub(n)
		if err != nil {
			return nil, err
		}
		cur = sub
	}
	return cur.Ptr(idx[len(idx)-1])
}

// At returns the value at the full multi-index idx.
func (a *Array[T]) At(idx ...int) (T, error) {
	p, err := a.PtrAt(idx...)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// SetAt stores v at the full multi-index idx.
func (a *Array[T]) SetAt(v T, idx ...int) error {
	p, err := a.PtrAt(idx...)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Fill sets every element to v.
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Values returns a row-major copy of all elements.
func (a *Array[T]) Values() []T {
	out := make([]T, len(a.data))
	copy(out, a.data)
	return out
}

// Clone returns a deep copy of a. The copy is a standalone array even
// when a is a view returned by Sub.
func (a *Array[T]) Clone() *Array[T] {
	extents := a.extents.Clone()
	return &Array[T]{
		extents: extents,
		strides: extents.Strides(),
		data:    a.Values(),
	}
}

// CopyFrom copies every element of src into a. Both arrays must have the
// same extents.
func (a *Array[T]) CopyFrom(src *Array[T]) error {
	if a == src {
		return nil
	}
	if !a.extents.Equal(src.extents) {
		return fmt.Errorf("%w: cannot assign %s to %s", ErrShapeMismatch, src.extents, a.extents)
	}
	copy(a.data, src.data)
	return nil
}

// String formats the extents and element type, e.g. "Array[int](2x3)".
func (a *Array[T]) String() string {
	var zero T
	return fmt.Sprintf("Array[%T](%s)", zero, a.extents)
}

// Equal reports whether a and b have the same extents and elements.
func Equal[T comparable](a, b *Array[T]) bool {
	if !a.extents.Equal(b.extents) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}
