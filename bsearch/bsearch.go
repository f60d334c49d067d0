// Package bsearch provides binary search functionality for sorted collections.
//
// Every search returns an index together with an error. On a miss the error is
// ErrNotFound and the index is the insertion point, i.e. the position at which
// the target would have to be inserted to keep the collection sorted. The input
// must be sorted in non-decreasing order; for unsorted input the result is
// unspecified and no error is reported.
package bsearch

import "cmp"

// BinarySearchBy performs a binary search on a sorted collection of size elements.
// The comparison function f should return:
//   - negative value if the element at index is less than the target
//   - zero if the element at index equals the target
//   - positive value if the element at index is greater than the target
//
// Returns the index if found, or ErrNotFound with the insertion point if not found.
func BinarySearchBy(size int, f func(int) int) (int, error) {
	left := 0
	right := size
	currentSize := size

	for left < right {
		mid := left + currentSize/2
		cmp := f(mid)
		if cmp < 0 {
			left = mid + 1
		} else if cmp > 0 {
			right = mid
		} else {
			return mid, nil
		}
		currentSize = right - left
	}
	return left, ErrNotFound
}

// Search looks for target in the sorted slice s.
// If target occurs more than once, any of its indexes may be returned.
func Search[S ~[]E, E cmp.Ordered](s S, target E) (int, error) {
	return BinarySearchBy(len(s), func(i int) int {
		return cmp.Compare(s[i], target)
	})
}

// SearchFunc is like Search but orders elements with compare, which reports
// how an element relates to target in the same way as cmp.Compare.
func SearchFunc[S ~[]E, E, T any](s S, target T, compare func(E, T) int) (int, error) {
	return BinarySearchBy(len(s), func(i int) int {
		return compare(s[i], target)
	})
}

// SearchRecursive is the recursive form of Search. It narrows a half-open
// range [lo, hi) over s instead of slicing, so the returned index is always
// relative to s. The recursion depth is bounded by log2(len(s)) + 1.
func SearchRecursive[S ~[]E, E cmp.Ordered](s S, target E) (int, error) {
	return searchRange(s, target, 0, len(s))
}

func searchRange[S ~[]E, E cmp.Ordered](s S, target E, lo, hi int) (int, error) {
	if lo >= hi {
		return lo, ErrNotFound
	}
	mid := lo + (hi-lo)/2
	switch c := cmp.Compare(s[mid], target); {
	case c == 0:
		return mid, nil
	case c > 0:
		return searchRange(s, target, lo, mid)
	default:
		return searchRange(s, target, mid+1, hi)
	}
}

// ErrNotFound is returned when a search does not find a matching element.
var ErrNotFound = &NotFoundError{}

// NotFoundError represents an error when an element is not found during binary search.
type NotFoundError struct{}

func (e *NotFoundError) Error() string {
	return "not found"
}
