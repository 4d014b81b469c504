package shape

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidates(t *testing.T) {
	tests := []struct {
		name    string
		dims    []int
		wantErr error
		axis    int
	}{
		{"single axis", []int{4}, nil, 0},
		{"three axes", []int{2, 3, 4}, nil, 0},
		{"zero outer", []int{0, 3}, ErrInvalidExtent, 0},
		{"zero inner", []int{2, 3, 0}, ErrInvalidExtent, 2},
		{"negative", []int{2, -1}, ErrInvalidExtent, 1},
		{"empty", nil, ErrNoDimensions, 0},
		{"count wraps to zero", []int{1 << (strconv.IntSize / 2), 1 << (strconv.IntSize / 2)}, ErrInvalidExtent, -1},
		{"count wraps negative", []int{3, 1 << (strconv.IntSize - 2)}, ErrInvalidExtent, -1},
		{"count at limit", []int{1, math.MaxInt}, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.dims...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, Extents(tt.dims), e)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, e)

			var extErr *ExtentError
			if tt.axis >= 0 && errors.As(err, &extErr) {
				assert.Equal(t, tt.axis, extErr.Axis)
				assert.Equal(t, tt.dims[tt.axis], extErr.Extent)
			}
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	dims := []int{2, 3}
	e, err := New(dims...)
	require.NoError(t, err)

	dims[0] = 99
	assert.Equal(t, 2, e[0])
}

func TestNumElementsAndStrides(t *testing.T) {
	e, err := New(2, 3, 4)
	require.NoError(t, err)

	assert.Equal(t, 3, e.Rank())
	assert.Equal(t, 24, e.NumElements())
	assert.Equal(t, []int{12, 4, 1}, e.Strides())
	assert.Equal(t, Extents{3, 4}, e.Inner())
	assert.Equal(t, "2x3x4", e.String())

	leaf, err := New(5)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, leaf.Strides())
	assert.Nil(t, leaf.Inner())
}

func TestEqualAndClone(t *testing.T) {
	a, _ := New(2, 3)
	b, _ := New(2, 3)
	c, _ := New(3, 2)
	d, _ := New(2, 3, 1)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))

	clone := a.Clone()
	clone[0] = 7
	assert.Equal(t, 2, a[0])
}

func TestParse(t *testing.T) {
	e, err := Parse("2,3,4")
	require.NoError(t, err)
	assert.Equal(t, Extents{2, 3, 4}, e)

	e, err = Parse("2x3")
	require.NoError(t, err)
	assert.Equal(t, Extents{2, 3}, e)

	_, err = Parse("2,zero")
	assert.Error(t, err)

	_, err = Parse("2,0")
	assert.ErrorIs(t, err, ErrInvalidExtent)

	_, err = Parse("")
	assert.ErrorIs(t, err, ErrNoDimensions)
}
