package sliceutil_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"algo/sliceutil"
)

func TestStridingBy(t *testing.T) {
	tests := []struct {
		name   string
		input  []int
		stride int
		want   []int
	}{
		{"Two", []int{1, 2, 3, 4, 5}, 2, []int{1, 3, 5}},
		{"Three", []int{1, 2, 3, 4, 5, 6}, 3, []int{1, 4}},
		{"One", []int{1, 2, 3}, 1, []int{1, 2, 3}},
		{"LargerThanInput", []int{1, 2, 3}, 10, []int{1}},
		{"Empty", []int{}, 3, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sliceutil.StridingBy(tt.input, tt.stride)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Length", func(t *testing.T) {
		for n := 0; n <= 20; n++ {
			input := make([]int, n)
			for k := 1; k <= 6; k++ {
				got, err := sliceutil.StridingBy(input, k)
				require.NoError(t, err)
				assert.Len(t, got, (n+k-1)/k)
				assert.Equal(t, len(got), cap(got), "result should be pre-sized")
			}
		}
	})

	t.Run("MaxIntStride", func(t *testing.T) {
		for _, stride := range []int{math.MaxInt, math.MaxInt - 1} {
			got, err := sliceutil.StridingBy([]int{7, 8, 9}, stride)
			require.NoError(t, err)
			assert.Equal(t, []int{7}, got)
		}
	})

	t.Run("InvalidStride", func(t *testing.T) {
		for _, stride := range []int{0, -2} {
			got, err := sliceutil.StridingBy([]int{1, 2}, stride)
			assert.ErrorIs(t, err, sliceutil.ErrInvalidArgument)
			assert.Nil(t, got)
		}
	})
}
