package llrb

import "github.com/bnclabs/gotree/lib"

// per-frame state of the traversal, cycling left -> value -> right ->
// pop, which reproduces in-order traversal without recursion.
type phase byte

const (
	phaseleft phase = iota
	phasevalue
	phaseright
	phasepop
)

type frame[I any] struct {
	nd *node[I]
	ph phase
}

// Iterator walk the tree in ascending key order. Auxiliary memory is
// bound by a fixed capacity stack of frames, no recursion and no
// allocation per step. The tree must not be mutated while an iterator
// derived from it is alive, violating that is undefined behavior.
type Iterator[I any] struct {
	stack  *lib.Stack[frame[I]]
	pool   chan *Iterator[I]
	closed bool
}

// Next return the next item in ascending key order, ok is false once
// the iterator is exhausted.
func (iter *Iterator[I]) Next() (item I, ok bool) {
	if iter.closed {
		panic("cannot iterate over a closed iterator")
	}
	for {
		top := iter.stack.Top()
		if top == nil {
			return item, false
		}
		switch top.ph {
		case phaseleft:
			top.ph = phasevalue
			if left := top.nd.left; left != nil {
				iter.stack.Push(frame[I]{nd: left})
			}

		case phasevalue:
			top.ph = phaseright
			return top.nd.item, true

		case phaseright:
			top.ph = phasepop
			if right := top.nd.right; right != nil {
				iter.stack.Push(frame[I]{nd: right})
			}

		case phasepop:
			iter.stack.Pop()
		}
	}
}

// Close this iterator and release it back to the tree's pool. Calling
// Next after Close panics.
func (iter *Iterator[I]) Close() {
	iter.closed = true
	iter.stack.Reset()

	// give it back to the pool if not overflowing.
	select {
	case iter.pool <- iter:
	default:
	}
}

// Iter return an ascending iterator over every item in the tree.
func (t *tree[I, K]) Iter() *Iterator[I] {
	iter := t.getiterator()
	if t.root != nil {
		iter.stack.Push(frame[I]{nd: t.root})
	}
	return iter
}

func (t *tree[I, K]) getiterator() *Iterator[I] {
	select {
	case iter := <-t.iterpool:
		iter.closed = false
		return iter
	default:
		return &Iterator[I]{
			stack: lib.NewStack[frame[I]](maxtreeheight),
			pool:  t.iterpool,
		}
	}
}
