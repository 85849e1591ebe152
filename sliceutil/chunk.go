package sliceutil

import (
	"fmt"

	"github.com/go-softwarelab/common/pkg/types"
)

// ChunkedBy splits the collection into runs of adjacent elements.
// A new chunk starts whenever belongTogether(previous, current) returns false.
// Each chunk is a new slice; the collection is not modified.
func ChunkedBy[T any](collection []T, belongTogether func(prev, next T) bool) [][]T {
	if len(collection) == 0 {
		return [][]T{}
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	res := make([][]T, 0, 1)
	start := 0
	for i := 1; i < len(collection); i++ {
		if !belongTogether(collection[i-1], collection[i]) {
			res = append(res, cloneRange(collection, start, i))
			start = i
		}
	}
	return append(res, cloneRange(collection, start, len(collection)))
}

// ChunkedOn splits the collection into runs of adjacent elements sharing the same projected key.
// Keys are compared with ==, so a NaN float key never equals the previous one.
// Each pair holds the key in Left and the run in Right.
func ChunkedOn[T any, K comparable](collection []T, projection func(T) K) []types.Pair[K, []T] {
	return ChunkedOnFunc(collection, projection, func(a, b K) bool { return a == b })
}

// ChunkedOnFunc is like ChunkedOn but decides key sameness with the given function.
// Useful for keys that are not comparable, or need a looser notion of equality.
func ChunkedOnFunc[T, K any](collection []T, projection func(T) K, same func(a, b K) bool) []types.Pair[K, []T] {
	if len(collection) == 0 {
		return []types.Pair[K, []T]{}
	}
	_ = collection[len(collection)-1]

	res := make([]types.Pair[K, []T], 0, 1)
	currentKey := projection(collection[0])
	start := 0
	for i := 1; i < len(collection); i++ {
		key := projection(collection[i])
		if same(currentKey, key) {
			continue
		}
		res = append(res, types.Pair[K, []T]{Left: currentKey, Right: cloneRange(collection, start, i)})
		currentKey = key
		start = i
	}
	return append(res, types.Pair[K, []T]{Left: currentKey, Right: cloneRange(collection, start, len(collection))})
}

// Chunked splits a slice into consecutive chunks of count elements,
// creating new slices for each chunk.
// The last chunk may be smaller if there are not enough elements.
func Chunked[T any](collection []T, count int) ([][]T, error) {
	if count <= 0 {
		return nil, fmt.Errorf("sliceutil.Chunked: count must be greater than 0, got %d: %w", count, ErrInvalidArgument)
	}
	if len(collection) == 0 {
		return [][]T{}, nil
	}
	_ = collection[len(collection)-1]
	res := make([][]T, 0, ceilDiv(len(collection), count))
	for start := 0; start < len(collection); {
		end := len(collection)
		if count < end-start {
			end = start + count
		}
		res = append(res, cloneRange(collection, start, end))
		start = end
	}
	return res, nil
}

// MustChunked is like Chunked but panics on an invalid count.
func MustChunked[T any](collection []T, count int) [][]T {
	res, err := Chunked(collection, count)
	if err != nil {
		panic(err)
	}
	return res
}

// EvenlyChunked divides the collection into exactly numberOfChunks chunks whose sizes
// differ by at most one. The first len(collection) % numberOfChunks chunks get the extra element.
//
// An empty collection yields numberOfChunks empty chunks, including zero chunks for
// numberOfChunks == 0. A non-empty collection cannot be divided into zero chunks.
func EvenlyChunked[T any](collection []T, numberOfChunks int) ([][]T, error) {
	if numberOfChunks < 0 {
		return nil, fmt.Errorf("sliceutil.EvenlyChunked: cannot divide into %d chunks: %w", numberOfChunks, ErrInvalidArgument)
	}
	if numberOfChunks == 0 && len(collection) > 0 {
		return nil, fmt.Errorf("sliceutil.EvenlyChunked: cannot divide %d elements into 0 chunks: %w", len(collection), ErrInvalidArgument)
	}

	res := make([][]T, numberOfChunks)
	if len(collection) == 0 {
		for i := range res {
			res[i] = []T{}
		}
		return res, nil
	}

	base := len(collection) / numberOfChunks
	remainder := len(collection) % numberOfChunks
	start := 0
	for i := range res {
		size := base
		if i < remainder {
			size++
		}
		res[i] = cloneRange(collection, start, start+size)
		start += size
	}
	return res, nil
}

// MustEvenlyChunked is like EvenlyChunked but panics on an invalid chunk count.
func MustEvenlyChunked[T any](collection []T, numberOfChunks int) [][]T {
	res, err := EvenlyChunked(collection, numberOfChunks)
	if err != nil {
		panic(err)
	}
	return res
}

// ceilDiv returns ⌈n/d⌉ for n >= 0 and d > 0 without overflowing on large d.
func ceilDiv(n, d int) int {
	q := n / d
	if n%d != 0 {
		q++
	}
	return q
}

func cloneRange[T any](collection []T, start, end int) []T {
	chunk := make([]T, end-start)
	copy(chunk, collection[start:end])
	return chunk
}
