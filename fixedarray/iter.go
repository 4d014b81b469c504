package fixedarray

import "iter"

// FirstMajor iterates over every element with the last axis varying
// fastest. The yielded index slice is fresh for each element.
//
//	for idx, v := range a.FirstMajor() {
//		*v = idx[0]*10 + idx[1]
//	}
func (a *Array[T]) FirstMajor() iter.Seq2[[]int, *T] {
	return func(yield func([]int, *T) bool) {
		end := a.FirstMajorEnd()
		for c := a.FirstMajorBegin(); !c.Equal(end); c.Next() {
			if !yield(c.pos.Indices(), c.Ptr()) {
				return
			}
		}
	}
}

// LastMajor iterates over every element with the first axis varying
// fastest.
func (a *Array[T]) LastMajor() iter.Seq2[[]int, *T] {
	return func(yield func([]int, *T) bool) {
		end := a.LastMajorEnd()
		for c := a.LastMajorBegin(); !c.Equal(end); c.Next() {
			if !yield(c.pos.Indices(), c.Ptr()) {
				return
			}
		}
	}
}
