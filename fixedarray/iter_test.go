package fixedarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstMajorIterator(t *testing.T) {
	a := MustNew[int](2, 3)

	var got [][]int
	for idx, v := range a.FirstMajor() {
		got = append(got, idx)
		*v = idx[0]*10 + idx[1]
	}

	assert.Equal(t, expectedFirstMajor([]int{2, 3}), got)
	assert.Equal(t, []int{0, 1, 2, 10, 11, 12}, a.Values())
}

func TestLastMajorIterator(t *testing.T) {
	a := ordinals(t, 2, 3)

	var got []int
	for _, v := range a.LastMajor() {
		got = append(got, *v)
	}
	assert.Equal(t, []int{0, 3, 1, 4, 2, 5}, got)
}

func TestIteratorStopsEarly(t *testing.T) {
	a := ordinals(t, 4, 4)

	n := 0
	for range a.FirstMajor() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)

	n = 0
	for idx := range a.LastMajor() {
		if idx[1] == 1 {
			break
		}
		n++
	}
	assert.Equal(t, 4, n)
}

func TestIteratorOverZeroArray(t *testing.T) {
	var a Array[float64]
	for range a.FirstMajor() {
		t.Fatal("zero array must not yield")
	}
	for range a.LastMajor() {
		t.Fatal("zero array must not yield")
	}
}
