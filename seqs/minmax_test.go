package seqs_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/go-softwarelab/common/pkg/seq"
	"github.com/stretchr/testify/assert"

	"algo/seqs"
	"algo/sliceutil"
)

func randomInts(seed uint64, n, limit int) []int {
	rd := rand.New(rand.NewPCG(seed, seed))
	res := make([]int, n)
	for i := range res {
		res[i] = rd.IntN(limit)
	}
	return res
}

type ranked struct {
	id   int
	rank int
}

func TestMinMax(t *testing.T) {
	t.Run("Example", func(t *testing.T) {
		got := seqs.MinMaxOrdered(seq.Of(3, 1, 4, 1, 5, 9, 2, 6))
		assert.Equal(t, seqs.Bounds[int]{Min: 1, Max: 9}, got.MustGet())
	})

	t.Run("Empty", func(t *testing.T) {
		assert.True(t, seqs.MinMaxOrdered(seq.Empty[int]()).IsEmpty())
	})

	t.Run("Single", func(t *testing.T) {
		assert.Equal(t, seqs.Bounds[int]{Min: 4, Max: 4}, seqs.MinMaxOrdered(seq.Of(4)).MustGet())
	})

	t.Run("MatchesSliceVersion", func(t *testing.T) {
		byRank := func(a, b ranked) bool { return a.rank < b.rank }
		for seed := uint64(1); seed <= 60; seed++ {
			ranks := randomInts(seed, int(seed%25)+1, 6)
			input := make([]ranked, len(ranks))
			for i, r := range ranks {
				input[i] = ranked{id: i, rank: r}
			}

			want := sliceutil.MinMax(input, byRank).MustGet()
			got := seqs.MinMax(slices.Values(input), byRank).MustGet()
			assert.Equal(t, want, got, "seed=%d", seed)
		}
	})

	t.Run("ComparisonCount", func(t *testing.T) {
		for n := 1; n <= 40; n++ {
			calls := 0
			seqs.MinMax(slices.Values(randomInts(uint64(n), n, 100)), func(a, b int) bool {
				calls++
				return a < b
			})
			assert.LessOrEqual(t, calls, (3*n+1)/2, "n=%d", n)
		}
	})
}
