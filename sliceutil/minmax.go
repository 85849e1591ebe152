package sliceutil

import (
	"github.com/go-softwarelab/common/pkg/is"
	"github.com/go-softwarelab/common/pkg/optional"
	"github.com/go-softwarelab/common/pkg/types"
)

// Bounds holds the smallest and largest element of a sequence.
type Bounds[T any] struct {
	Min T
	Max T
}

// Lesser is implemented by types that define their own strict order.
// a.Less(b) must report whether a is ordered strictly before b.
type Lesser[T any] interface {
	Less(other T) bool
}

// MinMax returns both the minimum and the maximum element of the collection,
// using less as a strict "ordered before" relation.
//
// Elements are compared in pairs, so at most ⌈3n/2⌉ calls to less are made
// instead of the 2n of two separate scans. Among equal minimums the earliest
// is returned; among equal maximums, the latest.
// The result is empty if the collection is empty.
func MinMax[T any](collection []T, less func(a, b T) bool) optional.Value[Bounds[T]] {
	n := len(collection)
	if n == 0 {
		return optional.Empty[Bounds[T]]()
	}
	if n == 1 {
		return optional.Some(Bounds[T]{Min: collection[0], Max: collection[0]})
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[n-1]

	lowest, highest := collection[0], collection[1]
	if less(highest, lowest) {
		lowest, highest = highest, lowest
	}

	for i := 2; i+1 < n; i += 2 {
		low, high := collection[i], collection[i+1]
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

	if n%2 == 1 {
		last := collection[n-1]
		if less(last, lowest) {
			lowest = last
		} else if !less(last, highest) {
			highest = last
		}
	}

	return optional.Some(Bounds[T]{Min: lowest, Max: highest})
}

// MinMaxOrdered is MinMax using the natural < order of T.
func MinMaxOrdered[T types.Ordered](collection []T) optional.Value[Bounds[T]] {
	return MinMax(collection, is.Less[T])
}

// MinMaxOf is MinMax using the order defined by T's Less method.
func MinMaxOf[T Lesser[T]](collection []T) optional.Value[Bounds[T]] {
	return MinMax(collection, func(a, b T) bool {
		return a.Less(b)
	})
}
