// Package ssort implements in-place selection sort.
package ssort

import "cmp"

// Selection sorts s in place into non-decreasing order and returns s.
// Callers that need the original order must copy it first.
// The sort is not stable.
func Selection[S ~[]E, E cmp.Ordered](s S) S {
	return SelectionFunc(s, cmp.Compare[E])
}

// SelectionFunc sorts s in place using compare, which must return a negative
// number when a < b, zero when a == b and a positive number when a > b.
//
// For each position i it finds the first minimum of s[i:] and swaps it into
// place: O(n²) comparisons and at most n-1 exchanges.
func SelectionFunc[S ~[]E, E any](s S, compare func(a, b E) int) S {
	for i := 0; i < len(s)-1; i++ {
		minIndex := i
		for j := i + 1; j < len(s); j++ {
			if compare(s[minIndex], s[j]) > 0 {
				minIndex = j
			}
		}
		if minIndex != i {
			s[i], s[minIndex] = s[minIndex], s[i]
		}
	}
	return s
}
