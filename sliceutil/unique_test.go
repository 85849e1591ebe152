package sliceutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"algo/sliceutil"
)

func TestUniqued(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []int
	}{
		{"Duplicates", []int{1, 2, 1, 3, 2, 4}, []int{1, 2, 3, 4}},
		{"NoDuplicates", []int{3, 2, 1}, []int{3, 2, 1}},
		{"AllSame", []int{5, 5, 5}, []int{5}},
		{"Empty", []int{}, []int{}},
		{"Nil", nil, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sliceutil.Uniqued(tt.input))
		})
	}
}

func TestUniquedOn(t *testing.T) {
	input := []string{"Go", "gopher", "Rust", "go", "rust", "Zig"}
	got := sliceutil.UniquedOn(input, strings.ToLower)
	assert.Equal(t, []string{"Go", "gopher", "Rust", "Zig"}, got)
	assert.Equal(t, []string{"Go", "gopher", "Rust", "go", "rust", "Zig"}, input)

	t.Run("Properties", func(t *testing.T) {
		mod5 := func(v int) int { return v % 5 }
		for seed := uint64(1); seed <= 40; seed++ {
			input := randomInts(seed, int(seed%30), 20)
			once := sliceutil.UniquedOn(input, mod5)

			keys := make(map[int]struct{})
			for _, v := range once {
				_, dup := keys[mod5(v)]
				assert.False(t, dup, "key %d appears twice", mod5(v))
				keys[mod5(v)] = struct{}{}
			}
			assert.Equal(t, once, sliceutil.UniquedOn(once, mod5), "UniquedOn should be idempotent")
		}
	})
}
