package fixedarray

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type celsius float64

func TestConvertNumeric(t *testing.T) {
	ints := ordinals(t, 2, 3)

	floats := Convert[float64](ints)
	assert.Equal(t, []int{2, 3}, floats.Extents())
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5}, floats.Values())

	// The result does not share storage with the source.
	require.NoError(t, ints.SetAt(100, 1, 1))
	v, _ := floats.At(1, 1)
	assert.Equal(t, 4.0, v)
}

func TestConvertTruncates(t *testing.T) {
	src, err := FromSlice([]float32{1.9, -2.7, 255.5, 0}, 2, 2)
	require.NoError(t, err)

	dst := Convert[int16](src)
	assert.Equal(t, []int16{1, -2, 255, 0}, dst.Values())
}

func TestConvertNamedType(t *testing.T) {
	src, err := FromSlice([]int{-40, 0, 100}, 3)
	require.NoError(t, err)

	dst := Convert[celsius](src)
	assert.Equal(t, []celsius{-40, 0, 100}, dst.Values())
}

func TestAssignConverted(t *testing.T) {
	src := ordinals(t, 2, 2, 2)
	dst := MustNew[uint8](2, 2, 2)
	dst.Fill(77)

	require.NoError(t, AssignConverted(dst, src))
	assert.Equal(t, []uint8{0, 1, 2, 3, 4, 5, 6, 7}, dst.Values())

	wrong := MustNew[uint8](2, 4)
	assert.ErrorIs(t, AssignConverted(wrong, src), ErrShapeMismatch)
	assert.Equal(t, make([]uint8, 8), wrong.Values(), "failed assignment must not write")
}

func TestConvertFunc(t *testing.T) {
	src := ordinals(t, 3, 2)

	dst := ConvertFunc(src, strconv.Itoa)
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5"}, dst.Values())

	v, err := dst.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, "5", v)
}

func TestAssignFunc(t *testing.T) {
	src, err := FromSlice([]string{"a", "bb", "ccc"}, 3)
	require.NoError(t, err)

	dst := MustNew[int](3)
	require.NoError(t, AssignFunc(dst, src, func(s string) int { return len(s) }))
	assert.Equal(t, []int{1, 2, 3}, dst.Values())

	other := MustNew[int](1, 3)
	assert.ErrorIs(t, AssignFunc(other, src, func(s string) int { return len(s) }), ErrShapeMismatch)
}
