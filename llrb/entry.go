package llrb

import "github.com/bnclabs/gotree/api"
import "github.com/bnclabs/gotree/lib"

// Entry is a find-or-insert handle over a single map slot, located by
// one descent. An occupied entry wraps the node holding the key, a
// vacant entry holds the path recorded during the descent, ending at
// the empty child slot where the key belongs, so that an insert can
// replay rebalancing along the path instead of searching again.
//
// A vacant entry accepts exactly one Insert. The map must not be
// mutated between Entry() and the consuming call.
type Entry[K, V any] struct {
	m        *Map[K, V]
	nd       *node[Pair[K, V]] // non-nil for an occupied entry
	path     *lib.Stack[**node[Pair[K, V]]]
	key      K
	consumed bool
}

// Entry locate key with a single descent, recording the traversed
// child slots for a later insert.
func (m *Map[K, V]) Entry(key K) *Entry[K, V] {
	if m.dead {
		panic(api.ErrorDeadTree)
	}

	e := &Entry[K, V]{m: m, key: key}
	e.path = lib.NewStack[**node[Pair[K, V]]](maxtreeheight)
	slot := &m.root
	for *slot != nil {
		e.path.Push(slot)
		nd := *slot
		if c := m.cmp(nd.item.Key, key); c > 0 {
			slot = &nd.left
		} else if c < 0 {
			slot = &nd.right
		} else {
			e.nd = nd
			return e
		}
	}
	e.path.Push(slot) // the empty slot where key belongs
	return e
}

// Occupied return whether the key was present when the entry was
// created.
func (e *Entry[K, V]) Occupied() bool {
	return e.nd != nil
}

// Key return the entry's key, the stored key when occupied, the
// pending key when vacant.
func (e *Entry[K, V]) Key() K {
	if e.nd != nil {
		return e.nd.item.Key
	}
	return e.key
}

// Value return the stored value, ok is false for a vacant entry.
func (e *Entry[K, V]) Value() (value V, ok bool) {
	if e.nd != nil {
		return e.nd.item.Value, true
	}
	return value, false
}

// Insert value at this entry. On an occupied entry the previous value
// is replaced, handed to the release hook, and returned. On a vacant
// entry the key is inserted by replaying rebalancing along the
// recorded path, a single linear pass instead of a second search;
// reusing an already consumed vacant entry fails with
// api.ErrorEntryConsumed, inserting beyond capacity fails with
// api.ErrorOutofMemory, both leaving the map untouched.
func (e *Entry[K, V]) Insert(value V) (old V, err error) {
	if e.nd != nil { // occupied, replace in place
		old, e.nd.item.Value = e.nd.item.Value, value
		e.m.upsertcounts(true /*updated*/)
		e.m.releaseitem(Pair[K, V]{Key: e.nd.item.Key, Value: old})
		return old, nil
	}

	if e.consumed {
		return old, api.ErrorEntryConsumed
	}
	if e.m.n_count >= e.m.capacity {
		return old, api.ErrorOutofMemory
	}

	// new leaf at the recorded empty slot.
	leafslot := e.path.Top()
	*(*leafslot) = e.m.newnode(Pair[K, V]{Key: e.key, Value: value})
	depth := int64(e.path.Len())

	// unwind the recorded path from the leaf up to the root, applying
	// the same rebalance plain upsert would on its way back up.
	for {
		slot, err2 := e.path.Pop()
		if err2 != nil {
			break
		}
		*slot = e.m.walkuprot23(*slot)
	}
	e.m.root.setblack()
	e.m.upsertcounts(false /*updated*/)
	e.m.h_upsertdepth.Add(depth)
	e.consumed = true

	if e.m.validateopt {
		e.m.validate(e.m.root)
	}
	return old, nil
}

// Modify the stored value in place through fn and return the entry for
// chaining. No-op on a vacant entry.
func (e *Entry[K, V]) Modify(fn func(*V)) *Entry[K, V] {
	if e.nd != nil {
		fn(&e.nd.item.Value)
		e.m.upsertcounts(true /*updated*/)
	}
	return e
}
