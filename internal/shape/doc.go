// Package shape validates and describes the extent list of a fixed-size
// multi-dimensional array.
//
// An extent list is the ordered sequence d0, d1, ..., dk-1 of axis sizes.
// Every extent must be strictly positive and the list must name at least
// one axis. The list is validated once by [New]; every other function in
// this package assumes a validated list.
//
// # Memory Order
//
// Elements are laid out row-major: the last axis is contiguous and the
// first axis has the largest stride. For extents (2, 3, 4):
//
//	strides = (12, 4, 1)
//	offset(i, j, k) = 12*i + 4*j + k
//
// A nested container over the inner axes d1..dk-1 is therefore a
// contiguous window of NumElements()/d0 elements in the backing slice.
package shape
