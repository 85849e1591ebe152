/*
Package sliceutil provides eager, allocation-aware algorithms over materialized slices.

Every function borrows its input for the duration of the call and returns freshly
allocated results, except the in-place trim helpers ([TrimPrefix], [TrimSuffix], [Trim]),
which rewrite the caller's slice.

  - **Grouping**: [ChunkedBy], [ChunkedOn], [Chunked], [EvenlyChunked].
  - **Bounds**: [MinMax], [MinMaxOrdered], [MinMaxOf] find both extremes in one pass
    using at most ⌈3n/2⌉ comparisons.
  - **Sampling**: [StridingBy].
  - **Trimming**: [TrimmingPrefix], [TrimmingSuffix], [Trimming] and their in-place forms.
  - **Deduplication**: [Uniqued], [UniquedOn].
  - **Search**: [FirstNonNil], [FirstNonNilPtr].

# Errors

Out-of-domain numeric arguments are reported with an error wrapping [ErrInvalidArgument].
A missing result (empty input, nothing matched) is an empty [optional.Value], never an error.

The lazily-evaluated counterparts over iter.Seq live in package seqs.

[optional.Value]: https://pkg.go.dev/github.com/go-softwarelab/common/pkg/optional#Value
*/
package sliceutil
