package api

import "cmp"

// Comparator total order over keys of type K. Return negative if a
// sorts before b, zero if equal, positive if a sorts after b. Must
// satisfy totality, antisymmetry and transitivity, else tree behavior
// is undefined.
type Comparator[K any] func(a, b K) int

// OrderedCmp return the natural Comparator for key types that have a
// standard go ordering.
func OrderedCmp[K cmp.Ordered]() Comparator[K] {
	return func(a, b K) int {
		return cmp.Compare(a, b)
	}
}
