/*
Package seqs provides lazily-evaluated sequence algorithms over Go 1.23+ iterators (iter.Seq).

Each function returns a fresh iter.Seq whose state (indices, seen-sets, pending buffers)
is created when iteration starts, so the same sequence can be ranged over any number of
times and every traversal behaves identically. Nothing is computed before the consumer
asks for it, and breaking out of a range loop stops the producer immediately.

  - **Grouping**: [ChunkedBy], [ChunkedOn], [Chunked].
  - **Bounds**: [MinMax], [MinMaxOrdered].
  - **Sampling**: [StridingBy] over a slice, [Stride] over any sequence.
  - **Trimming**: [TrimmingPrefix], [TrimmingSuffix], [Trimming].
  - **Deduplication**: [LazyUniqued], [LazyUniquedOn].
  - **Search**: [FirstNonNil].

# Errors

Functions taking a size or stride validate it when they are called, not when the
returned sequence is first ranged over, and report an error wrapping
sliceutil.ErrInvalidArgument:

	evens, err := seqs.StridingBy(values, 2)
	if err != nil {
		return err
	}
	for v := range evens {
		// ...
	}

The eager counterparts over slices live in package sliceutil.
*/
package seqs
