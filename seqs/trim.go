package seqs

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/seq"
)

// TrimmingPrefix skips the leading run of elements that satisfy the predicate,
// then yields the rest unchanged.
func TrimmingPrefix[T any](source iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return seq.SkipWhile(source, predicate)
}

// TrimmingSuffix drops the trailing run of elements that satisfy the predicate.
// Matching elements are held back until a non-matching one proves they are not the
// suffix, so memory grows with the longest run of matches.
func TrimmingSuffix[T any](source iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		var pending []T
		for v := range source {
			if predicate(v) {
				pending = append(pending, v)
				continue
			}
			for _, p := range pending {
				if !yield(p) {
					return
				}
			}
			pending = pending[:0]
			if !yield(v) {
				return
			}
		}
	}
}

// Trimming drops matching elements from both ends of the sequence.
func Trimming[T any](source iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return TrimmingSuffix(TrimmingPrefix(source, predicate), predicate)
}
