// Package section builds titled groups of charts-with-code: rendered
// charts bundled with enough provenance to regenerate the exact source
// that produced them.
package section

import "iter"

// Chunked partitions seq into contiguous slices of size elements each.
// If the length is not evenly divisible by size, the remainder is
// included rather than truncated. The returned sequence is lazy and can
// be ranged over more than once; ranging restarts from the beginning.
// Empty input yields no chunks. A non-positive size panics.
func Chunked[S ~[]E, E any](seq S, size int) iter.Seq[S] {
	if size <= 0 {
		panic("section: chunk size must be positive")
	}
	return func(yield func(S) bool) {
		for start := 0; start < len(seq); start += size {
			end := min(start+size, len(seq))
			if !yield(seq[start:end]) {
				return
			}
		}
	}
}
