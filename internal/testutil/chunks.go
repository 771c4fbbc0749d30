// Package testutil defines support code for unit tests.
package testutil

import (
	"iter"
	"math/rand/v2"
)

// Bytes splits s into chunks of one byte each.
func Bytes(s string) []string {
	out := make([]string, len(s))
	for i := range len(s) {
		out[i] = s[i : i+1]
	}
	return out
}

// Random splits s into chunks of between 1 and max bytes, using r to choose
// the chunk lengths.
func Random(r *rand.Rand, s string, max int) []string {
	var out []string
	for s != "" {
		n := min(1+r.IntN(max), len(s))
		out = append(out, s[:n])
		s = s[n:]
	}
	return out
}

// Partitions returns a sequence of ways to split s into non-empty chunks:
// the whole of s, every split into two chunks, every split into three chunks
// if s is short, single bytes, and some random splits. The random splits are
// deterministic for a given seed.
func Partitions(s string, seed uint64) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		if !yield([]string{s}) {
			return
		}
		for i := 1; i < len(s); i++ {
			if !yield([]string{s[:i], s[i:]}) {
				return
			}
		}
		if len(s) <= 24 {
			for i := 1; i < len(s); i++ {
				for j := i + 1; j < len(s); j++ {
					if !yield([]string{s[:i], s[i:j], s[j:]}) {
						return
					}
				}
			}
		}
		if !yield(Bytes(s)) {
			return
		}
		r := rand.New(rand.NewPCG(seed, uint64(len(s))))
		for range 16 {
			if !yield(Random(r, s, 7)) {
				return
			}
		}
	}
}
