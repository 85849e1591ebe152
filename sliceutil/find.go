package sliceutil

import "github.com/go-softwarelab/common/pkg/optional"

// FirstNonNil returns the first result for which transform reports ok, scanning the
// collection in order. transform is not called for any element after that one.
// The result is empty if no element yields a value.
//
//	n := FirstNonNil([]string{"three", "3.14", "-5", "2"}, func(s string) (int, bool) {
//		v, err := strconv.Atoi(s)
//		return v, err == nil
//	})
//	// n.MustGet() == -5
func FirstNonNil[T, R any](collection []T, transform func(T) (R, bool)) optional.Value[R] {
	for _, v := range collection {
		if res, ok := transform(v); ok {
			return optional.Some(res)
		}
	}
	return optional.Empty[R]()
}

// FirstNonNilPtr is FirstNonNil for transforms that report a missing value with a nil pointer.
func FirstNonNilPtr[T, R any](collection []T, transform func(T) *R) optional.Value[R] {
	for _, v := range collection {
		if res := optional.OfPtr(transform(v)); res.IsPresent() {
			return res
		}
	}
	return optional.Empty[R]()
}
