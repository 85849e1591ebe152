package sliceutil

import "fmt"

// StridingBy returns every stride-th element of the collection, starting with the first
// (indices 0, stride, 2*stride, ...). The result is allocated at its exact final size.
func StridingBy[T any](collection []T, stride int) ([]T, error) {
	if stride <= 0 {
		return nil, fmt.Errorf("sliceutil.StridingBy: stride must be greater than 0, got %d: %w", stride, ErrInvalidArgument)
	}
	if len(collection) == 0 {
		return []T{}, nil
	}
	_ = collection[len(collection)-1]

	res := make([]T, ceilDiv(len(collection), stride))
	for j := range res {
		res[j] = collection[j*stride]
	}
	return res, nil
}
