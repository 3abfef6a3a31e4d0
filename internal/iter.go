package internal

import (
	"iter"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterSeq2Range yields (index, names[index]) for every non-empty name,
// offset by base. It is used to describe a contiguous block of named
// registers.
func IterSeq2Range[T ~int](base T, names ...string) iter.Seq2[T, string] {
	return func(yield func(T, string) bool) {
		for n, name := range names {
			if len(name) == 0 {
				continue
			}
			if !yield(base+T(n), name) {
				return
			}
		}
	}
}
