package seqs

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/seq"
)

// LazyUniquedOn returns a sequence that yields only the elements whose projected key
// has not been seen earlier in the same traversal.
// The seen-set is rebuilt on every iteration, so nothing is cached between traversals.
func LazyUniquedOn[T any, K comparable](source iter.Seq[T], projection func(T) K) iter.Seq[T] {
	return seq.UniqBy(source, projection)
}

// LazyUniqued returns a sequence that yields only unique elements.
func LazyUniqued[T comparable](source iter.Seq[T]) iter.Seq[T] {
	return seq.Uniq(source)
}
