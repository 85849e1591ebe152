package seqs

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/is"
	"github.com/go-softwarelab/common/pkg/optional"
	"github.com/go-softwarelab/common/pkg/types"

	"algo/sliceutil"
)

// Bounds holds the smallest and largest element of a sequence.
type Bounds[T any] = sliceutil.Bounds[T]

// MinMax returns both the minimum and the maximum element of seq in a single traversal,
// pairing elements as they arrive so that at most ⌈3n/2⌉ comparisons are made.
// It picks the same elements as sliceutil.MinMax for the same order of input.
func MinMax[T any](seq iter.Seq[T], less func(a, b T) bool) optional.Value[Bounds[T]] {
	var (
		lowest, highest T
		pending         T
		seen            int
	)
	for v := range seq {
		seen++
		switch {
		case seen == 1:
			lowest = v
		case seen == 2:
			highest = v
			if less(highest, lowest) {
				lowest, highest = highest, lowest
			}
		case seen%2 == 1:
			pending = v
		default:
			low, high := pending, v
			if less(high, low) {
				low, high = high, low
			}
			if less(low, lowest) {
				lowest = low
			}
			if !less(high, highest) {
				highest = high
			}
		}
	}

	switch {
	case seen == 0:
		return optional.Empty[Bounds[T]]()
	case seen == 1:
		return optional.Some(Bounds[T]{Min: lowest, Max: lowest})
	case seen%2 == 1:
		if less(pending, lowest) {
			lowest = pending
		} else if !less(pending, highest) {
			highest = pending
		}
	}
	return optional.Some(Bounds[T]{Min: lowest, Max: highest})
}

// MinMaxOrdered is MinMax using the natural < order of T.
func MinMaxOrdered[T types.Ordered](seq iter.Seq[T]) optional.Value[Bounds[T]] {
	return MinMax(seq, is.Less[T])
}
