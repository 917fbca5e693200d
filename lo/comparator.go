package lo

import (
	"github.com/iotaledger/ranges/constraints"
)

// Comparator is a generic comparator for two values. It returns 0 if the two values are equal, -1 if the first value is
// smaller and 1 if the first value is larger.
func Comparator[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CompareMethod turns the Compare method of a constraints.Comparable type into a comparator function.
func CompareMethod[T constraints.Comparable[T]](a, b T) int {
	return a.Compare(b)
}

// MinBy returns the smallest element of the collection according to the given comparator and false if the collection
// is empty. If multiple elements are equally small, the first one wins.
func MinBy[T any](collection []T, comparator func(a, b T) int) (minElem T, ok bool) {
	if len(collection) == 0 {
		return minElem, false
	}

	return Reduce(collection[1:], func(current, value T) T {
		return Cond(comparator(value, current) < 0, value, current)
	}, collection[0]), true
}

// MaxBy returns the largest element of the collection according to the given comparator and false if the collection
// is empty. If multiple elements are equally large, the first one wins.
func MaxBy[T any](collection []T, comparator func(a, b T) int) (maxElem T, ok bool) {
	if len(collection) == 0 {
		return maxElem, false
	}

	return Reduce(collection[1:], func(current, value T) T {
		return Cond(comparator(value, current) > 0, value, current)
	}, collection[0]), true
}
