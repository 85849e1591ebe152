package sliceutil

import "github.com/go-softwarelab/common/pkg/slices"

// UniquedOn returns the elements of the collection whose projected key has not been
// seen before, in their original order. The first occurrence of each key wins.
// The result is never nil.
func UniquedOn[T any, K comparable](collection []T, projection func(T) K) []T {
	return slices.UniqBy(collection, projection)
}

// Uniqued returns the distinct elements of the collection in first-occurrence order.
func Uniqued[T comparable](collection []T) []T {
	return slices.Uniq(collection)
}
