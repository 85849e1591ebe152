package seqs

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/optional"
)

// FirstNonNil returns the first result for which transform reports ok.
// The traversal stops right there: later elements are neither produced nor transformed.
func FirstNonNil[T, R any](seq iter.Seq[T], transform func(T) (R, bool)) optional.Value[R] {
	for v := range seq {
		if res, ok := transform(v); ok {
			return optional.Some(res)
		}
	}
	return optional.Empty[R]()
}
