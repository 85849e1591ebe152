package seqs

import (
	"fmt"
	"iter"

	"algo/sliceutil"
)

// ChunkedBy groups runs of adjacent elements for which belongTogether(previous, current)
// holds. Each chunk is yielded once the first element of the next one is seen.
func ChunkedBy[T any](seq iter.Seq[T], belongTogether func(prev, next T) bool) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		var chunk []T
		for v := range seq {
			if len(chunk) > 0 && !belongTogether(chunk[len(chunk)-1], v) {
				if !yield(chunk) {
					return
				}
				chunk = nil
			}
			chunk = append(chunk, v)
		}
		if len(chunk) > 0 {
			yield(chunk)
		}
	}
}

// ChunkedOn groups runs of adjacent elements sharing the same projected key,
// yielding each key together with its run.
func ChunkedOn[T any, K comparable](seq iter.Seq[T], projection func(T) K) iter.Seq2[K, []T] {
	return func(yield func(K, []T) bool) {
		var (
			currentKey K
			chunk      []T
		)
		for v := range seq {
			key := projection(v)
			if len(chunk) > 0 && key != currentKey {
				if !yield(currentKey, chunk) {
					return
				}
				chunk = nil
			}
			currentKey = key
			chunk = append(chunk, v)
		}
		if len(chunk) > 0 {
			yield(currentKey, chunk)
		}
	}
}

// Chunked splits the input sequence into chunks of count elements.
// The last chunk may be smaller if there are not enough elements.
func Chunked[T any](seq iter.Seq[T], count int) (iter.Seq[[]T], error) {
	if count <= 0 {
		return nil, fmt.Errorf("seqs.Chunked: count must be greater than 0, got %d: %w", count, sliceutil.ErrInvalidArgument)
	}
	// count is caller-controlled; grow past the initial capacity on demand.
	initial := min(count, 64)
	return func(yield func([]T) bool) {
		batch := make([]T, 0, initial)

		for v := range seq {
			batch = append(batch, v)
			if len(batch) == count {
				if !yield(batch) {
					return
				}
				batch = make([]T, 0, initial)
			}
		}
		if len(batch) > 0 {
			yield(batch)
		}
	}, nil
}
