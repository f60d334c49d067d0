// Package lsearch provides front-to-back linear search over slices.
//
// A miss is reported as index -1 together with ErrNotFound, so a match at
// index 0 is never confused with a miss.
package lsearch

import "errors"

// MaxRecursionDepth is the longest input SearchRecursive accepts.
// Each element visited costs one stack frame.
const MaxRecursionDepth = 1 << 14

var (
	// ErrNotFound is returned when no element matches.
	ErrNotFound = &NotFoundError{}

	// ErrRecursionLimit is returned by SearchRecursive for inputs longer
	// than MaxRecursionDepth.
	ErrRecursionLimit = errors.New("input exceeds recursion limit")
)

// NotFoundError represents an error when an element is not found during linear search.
type NotFoundError struct{}

func (e *NotFoundError) Error() string {
	return "not found"
}

// Search returns the index of the first element of s equal to target.
func Search[S ~[]E, E comparable](s S, target E) (int, error) {
	for i, v := range s {
		if v == target {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

// SearchFunc returns the index of the first element of s satisfying match.
func SearchFunc[S ~[]E, E any](s S, match func(E) bool) (int, error) {
	for i, v := range s {
		if match(v) {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

// SearchRecursive is the recursive form of Search. It walks s by position
// rather than by re-slicing, and refuses inputs longer than MaxRecursionDepth
// with ErrRecursionLimit. Within that limit it agrees with Search.
func SearchRecursive[S ~[]E, E comparable](s S, target E) (int, error) {
	if len(s) > MaxRecursionDepth {
		return -1, ErrRecursionLimit
	}
	return searchFrom(s, target, 0)
}

func searchFrom[S ~[]E, E comparable](s S, target E, pos int) (int, error) {
	if pos >= len(s) {
		return -1, ErrNotFound
	}
	if s[pos] == target {
		return pos, nil
	}
	return searchFrom(s, target, pos+1)
}
