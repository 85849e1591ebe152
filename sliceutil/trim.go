package sliceutil

import (
	"slices"

	"github.com/go-softwarelab/common/pkg/is"
)

// TrimmingPrefix returns a copy of the collection without its leading run of
// elements that satisfy the predicate.
func TrimmingPrefix[T any](collection []T, predicate func(T) bool) []T {
	start := slices.IndexFunc(collection, is.Not(predicate))
	if start == -1 {
		return []T{}
	}
	return cloneRange(collection, start, len(collection))
}

// TrimmingSuffix returns a copy of the collection without its trailing run of
// elements that satisfy the predicate.
func TrimmingSuffix[T any](collection []T, predicate func(T) bool) []T {
	return cloneRange(collection, 0, trimmedEnd(collection, predicate))
}

// Trimming returns a copy of the collection with matching elements removed from both ends.
// The predicate is never called twice on the same element.
func Trimming[T any](collection []T, predicate func(T) bool) []T {
	end := trimmedEnd(collection, predicate)
	start := slices.IndexFunc(collection[:end], is.Not(predicate))
	if start == -1 {
		return []T{}
	}
	return cloneRange(collection, start, end)
}

// TrimPrefix removes the leading run of matching elements from *s in-place.
// The survivors are shifted to the front of the backing array and the vacated
// tail is zeroed so the GC can reclaim what it referenced.
func TrimPrefix[S ~[]T, T any](s *S, predicate func(T) bool) {
	collection := []T(*s)
	start := slices.IndexFunc(collection, is.Not(predicate))
	if start == -1 {
		clear(collection)
		*s = S(collection[:0])
		return
	}
	if start == 0 {
		return
	}
	n := copy(collection, collection[start:])
	clear(collection[n:])
	*s = S(collection[:n])
}

// TrimSuffix removes the trailing run of matching elements from *s in-place.
func TrimSuffix[S ~[]T, T any](s *S, predicate func(T) bool) {
	collection := []T(*s)
	end := trimmedEnd(collection, predicate)
	clear(collection[end:])
	*s = S(collection[:end])
}

// Trim removes matching elements from both ends of *s in-place.
func Trim[S ~[]T, T any](s *S, predicate func(T) bool) {
	TrimSuffix(s, predicate)
	TrimPrefix(s, predicate)
}

// trimmedEnd returns the length of the collection once its matching suffix is dropped.
func trimmedEnd[T any](collection []T, predicate func(T) bool) int {
	end := len(collection)
	for end > 0 && predicate(collection[end-1]) {
		end--
	}
	return end
}
