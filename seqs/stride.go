package seqs

import (
	"fmt"
	"iter"

	"algo/sliceutil"
)

// StridingBy returns a lazy sequence of every stride-th element of the collection,
// starting with the first. Indices are computed on demand; elements past the point
// where the consumer stops are never touched.
func StridingBy[T any](collection []T, stride int) (iter.Seq[T], error) {
	if stride <= 0 {
		return nil, fmt.Errorf("seqs.StridingBy: stride must be greater than 0, got %d: %w", stride, sliceutil.ErrInvalidArgument)
	}
	return func(yield func(T) bool) {
		for i := 0; i < len(collection); i += stride {
			if !yield(collection[i]) {
				return
			}
			if stride >= len(collection)-i {
				return
			}
		}
	}, nil
}

// Stride returns a lazy sequence of every stride-th element of seq, starting with the first.
// Skipped elements are still pulled from seq, since an iterator cannot seek.
func Stride[T any](seq iter.Seq[T], stride int) (iter.Seq[T], error) {
	if stride <= 0 {
		return nil, fmt.Errorf("seqs.Stride: stride must be greater than 0, got %d: %w", stride, sliceutil.ErrInvalidArgument)
	}
	return func(yield func(T) bool) {
		skip := 0
		for v := range seq {
			if skip > 0 {
				skip--
				continue
			}
			if !yield(v) {
				return
			}
			skip = stride - 1
		}
	}, nil
}
