package llrb

import "cmp"

import "github.com/bnclabs/gotree/api"
import s "github.com/bnclabs/gosettings"

// Set is an ordered collection of unique values over the llrb engine,
// using the identity key projection. All engine operations, Upsert,
// Delete, DeleteMin, DeleteMax, Get, Contains, Iter, Validate, Stats
// and Destroy are available on the set.
type Set[V any] struct {
	tree[V, V]
}

// NewSet a new instance of ordered set, ordered by the natural order
// of V. Refer Defaultsettings() for the recognized settings.
func NewSet[V cmp.Ordered](name string, setts s.Settings) *Set[V] {
	return NewSetCmp[V](name, setts, api.OrderedCmp[V]())
}

// NewSetCmp a new instance of ordered set, ordered by cmp.
func NewSetCmp[V any](
	name string, setts s.Settings, cmp api.Comparator[V]) *Set[V] {

	set := &Set[V]{}
	keyof := func(v *V) V { return *v }
	set.init("Set", name, keyof, cmp, setts)
	return set
}
