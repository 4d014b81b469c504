// Package fixedarray provides a generic multi-dimensional array whose
// extents are fixed when it is created.
//
// An [Array] over extents (d0, d1, ..., dk-1) is built recursively: it
// holds d0 nested arrays over (d1, ..., dk-1), and a single-axis array
// holds d0 values. All values share one backing slice, so nested arrays
// are windows into their parent rather than separate allocations.
//
// # Extents
//
// Go has no constant generic parameters, so extents are validated once by
// [New] instead of by the compiler. A zero or negative extent is rejected
// with an error matching [ErrInvalidExtent]; no degenerate empty array is
// ever produced.
//
//	a, err := fixedarray.New[float64](2, 3, 4)
//
// # Indexing
//
// [Array.Sub] selects a nested array and [Array.Get], [Array.Set] and
// [Array.Ptr] select a value of a single-axis array. Each call checks its
// index against its own axis and returns an [*IndexError] (matching
// [ErrOutOfRange]) when it falls outside [0, extent). [Array.At] and
// [Array.SetAt] take a full multi-index and descend one axis per index.
//
// # Copying
//
// [Array.Clone] and [Array.CopyFrom] make deep copies. [Convert] and
// [AssignConverted] copy between arrays of the same extents and different
// numeric element types; [ConvertFunc] and [AssignFunc] take an explicit
// conversion function for other element types.
//
// # Traversal
//
// Two cursor types walk every element exactly once:
//
//   - [FirstMajorCursor]: the last axis varies fastest (row-major order).
//   - [LastMajorCursor]: the first axis varies fastest.
//
// Each cursor pairs a borrowed array with a [Position]. A traversal runs
// from the begin cursor until it equals the end cursor:
//
//	end := a.FirstMajorEnd()
//	for c := a.FirstMajorBegin(); !c.Equal(end); c.Next() {
//		fmt.Println(c.Position(), c.Value())
//	}
//
// Cursors compare positions only and never check bounds while advancing.
// Dereferencing a cursor at or past its end panics with an [*IndexError].
// The two cursor types are distinct, so mixing orders in a comparison is a
// compile error. [Array.FirstMajor] and [Array.LastMajor] wrap the cursors
// as range-over-func iterators.
//
// # Concurrency
//
// Arrays and cursors have no internal locking. Concurrent writers, or a
// writer and readers, need external synchronization.
package fixedarray
