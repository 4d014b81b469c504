package fixedarray

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types with a built-in Go conversion
// between any two members.
type Number interface {
	constraints.Integer | constraints.Float
}

// Convert returns a new array with the extents of src whose elements are
// the elements of src converted to T.
//
//	ints := fixedarray.MustNew[int](2, 3)
//	floats := fixedarray.Convert[float64](ints)
func Convert[T, U Number](src *Array[U]) *Array[T] {
	return ConvertFunc(src, func(u U) T { return T(u) })
}

// AssignConverted converts every element of src to T and stores it in
// dst. Both arrays must have the same extents.
func AssignConverted[T, U Number](dst *Array[T], src *Array[U]) error {
	return AssignFunc(dst, src, func(u U) T { return T(u) })
}

// ConvertFunc is like Convert for element types without a built-in
// conversion; conv is applied to each element in row-major order.
func ConvertFunc[T, U any](src *Array[U], conv func(U) T) *Array[T] {
	extents := src.extents.Clone()
	dst := &Array[T]{
		extents: extents,
		strides: extents.Strides(),
		data:    make([]T, len(src.data)),
	}
	for i, u := range src.data {
		dst.data[i] = conv(u)
	}
	return dst
}

// AssignFunc is like AssignConverted for element types without a
// built-in conversion.
func AssignFunc[T, U any](dst *Array[T], src *Array[U], conv func(U) T) error {
	if !dst.extents.Equal(src.extents) {
		return fmt.Errorf("%w: cannot assign %s to %s", ErrShapeMismatch, src.extents, dst.extents)
	}
	for i, u := range src.data {
		dst.data[i] = conv(u)
	}
	return nil
}
