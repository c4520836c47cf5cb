package llrb

import "cmp"

import "github.com/bnclabs/gotree/api"
import s "github.com/bnclabs/gosettings"

// Pair is the item stored by Map, ordering is by Key alone.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Map is an ordered collection of key,value pairs over the llrb
// engine, using the key-of-pair projection. Engine operations taking
// or returning whole items work on Pair values, the Set/Get/Delete
// family below unwraps them.
type Map[K, V any] struct {
	tree[Pair[K, V], K]
}

// NewMap a new instance of ordered map, ordered by the natural order
// of K. Refer Defaultsettings() for the recognized settings.
func NewMap[K cmp.Ordered, V any](name string, setts s.Settings) *Map[K, V] {
	return NewMapCmp[K, V](name, setts, api.OrderedCmp[K]())
}

// NewMapCmp a new instance of ordered map, ordered by cmp.
func NewMapCmp[K, V any](
	name string, setts s.Settings, cmp api.Comparator[K]) *Map[K, V] {

	m := &Map[K, V]{}
	keyof := func(p *Pair[K, V]) K { return p.Key }
	m.init("Map", name, keyof, cmp, setts)
	return m
}

// Set upsert value under key, returning any displaced value.
func (m *Map[K, V]) Set(key K, value V) (old V, updated bool, err error) {
	oldp, updated, err := m.Upsert(Pair[K, V]{Key: key, Value: value})
	return oldp.Value, updated, err
}

// Get return the value stored under key.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	nd, ok := m.getkey(m.root, key)
	if ok {
		return nd.item.Value, true
	}
	return value, false
}

// Delete remove key and return the value stored under it. Missing key
// is not an error, it reports ok as false with the map unchanged.
func (m *Map[K, V]) Delete(key K) (value V, ok bool) {
	removed, ok := m.tree.Delete(key)
	return removed.Value, ok
}

// DeleteMin remove and return the pair with the least key.
func (m *Map[K, V]) DeleteMin() (key K, value V, ok bool) {
	removed, ok := m.tree.DeleteMin()
	return removed.Key, removed.Value, ok
}

// DeleteMax remove and return the pair with the highest key.
func (m *Map[K, V]) DeleteMax() (key K, value V, ok bool) {
	removed, ok := m.tree.DeleteMax()
	return removed.Key, removed.Value, ok
}

// Keys return an ascending view over the map's keys, a projection of
// the same traversal as Iter().
func (m *Map[K, V]) Keys() *KeysView[K, V] {
	return &KeysView[K, V]{iter: m.Iter()}
}

// Values return a key-ascending view over the map's values.
func (m *Map[K, V]) Values() *ValuesView[K, V] {
	return &ValuesView[K, V]{iter: m.Iter()}
}

// KeysView projects keys out of an ascending pair iterator.
type KeysView[K, V any] struct {
	iter *Iterator[Pair[K, V]]
}

// Next return the next key in ascending order.
func (kv *KeysView[K, V]) Next() (key K, ok bool) {
	pair, ok := kv.iter.Next()
	return pair.Key, ok
}

// Close the underlying iterator.
func (kv *KeysView[K, V]) Close() {
	kv.iter.Close()
}

// ValuesView projects values out of an ascending pair iterator.
type ValuesView[K, V any] struct {
	iter *Iterator[Pair[K, V]]
}

// Next return the next value in ascending key order.
func (vv *ValuesView[K, V]) Next() (value V, ok bool) {
	pair, ok := vv.iter.Next()
	return pair.Value, ok
}

// Close the underlying iterator.
func (vv *ValuesView[K, V]) Close() {
	vv.iter.Close()
}
