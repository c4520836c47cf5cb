package llrb

import "errors"
import "fmt"
import "math"

import "github.com/bnclabs/gotree/lib"

// LLRB rule, from sedgewick's paper.
var redafterred = errors.New("consecutive red spotted")

// LLRB rule, a red right link must come with a red left link.
var rightleaning = errors.New("right leaning red link")

// LLRB rule, from sedgewick's paper.
func unbalancedblacks(lblacks, rblacks int64) error {
	return fmt.Errorf("unbalancedblacks {%v,%v}", lblacks, rblacks)
}

// height of the tree cannot exceed a certain limit. For example if the
// tree holds 1-million entries, a fully balanced tree shall have a
// height of 20 levels. maxheight provide some breathing space on top
// of ideal height.
func maxheight(entries int64) float64 {
	if entries < 5 {
		return (3 * (math.Log2(float64(entries)) + 1)) // 3x breathing space.
	}
	return 2 * math.Log2(float64(entries)) // 2x breathing space
}

// Validate walk the full tree checking llrb invariants: no consecutive
// red edges, left leaning red edges, equal black count on every path,
// sorted order and sane height. Panics on the first violation, a
// broken balancing contract has no defined recovery.
func (t *tree[I, K]) Validate() {
	if t.dead {
		return
	}
	t.validate(t.root)
}

func (t *tree[I, K]) validate(root *node[I]) {
	if isred(root) {
		panic(fmt.Errorf("validate(): root edge is red"))
	}

	h := lib.NewhistorgramInt64(1, 256, 1)
	nblacks := t.validatetree(root, isred(root), 0 /*blacks*/, 1 /*depth*/, h)
	debugf("%v found %v blacks on both sides\n", t.logprefix, nblacks)

	if samples := h.Samples(); samples != t.n_count {
		fmsg := "expected h_height.samples:%v to be same as Count():%v"
		panic(fmt.Errorf(fmsg, samples, t.n_count))
	}
	// height should not exceed the maxheight bound, which gives some
	// breathing room over the ideal height.
	if h.Samples() > 8 {
		if float64(h.Max()) > maxheight(t.n_count) {
			fmsg := "validate(): max height %v exceeds <factor>*log2(%v)"
			panic(fmt.Errorf(fmsg, float64(h.Max()), t.n_count))
		}
	}
	t.validatestats()
}

func (t *tree[I, K]) validatetree(
	nd *node[I], fromred bool, blacks, depth int64,
	h *lib.HistogramInt64) (nblacks int64) {

	if nd == nil {
		return blacks
	}
	h.Add(depth)

	if fromred && isred(nd) {
		panic(redafterred)
	}
	if isred(nd.right) && !isred(nd.left) {
		panic(rightleaning)
	}
	if !isred(nd) {
		blacks++
	}

	lblacks := t.validatetree(nd.left, isred(nd), blacks, depth+1, h)
	rblacks := t.validatetree(nd.right, isred(nd), blacks, depth+1, h)
	if lblacks != rblacks {
		panic(unbalancedblacks(lblacks, rblacks))
	}

	key := t.keyof(&nd.item)
	if nd.left != nil && t.cmp(t.keyof(&nd.left.item), key) >= 0 {
		fmsg := "validate(): sort order, left node %v is >= node %v"
		panic(fmt.Errorf(fmsg, nd.left.repr(), nd.repr()))
	}
	if nd.right != nil && t.cmp(t.keyof(&nd.right.item), key) <= 0 {
		fmsg := "validate(): sort order, right node %v is <= node %v"
		panic(fmt.Errorf(fmsg, nd.right.repr(), nd.repr()))
	}
	return lblacks
}

func (t *tree[I, K]) validatestats() {
	// n_count should match (n_inserts - n_deletes)
	n_count := t.n_count
	n_inserts, n_deletes := t.n_inserts, t.n_deletes
	if n_count != (n_inserts - n_deletes) {
		fmsg := "validatestats(): n_count:%v != (n_inserts:%v - n_deletes:%v)"
		panic(fmt.Errorf(fmsg, n_count, n_inserts, n_deletes))
	}
	// n_nodes should match n_inserts
	n_nodes := t.n_nodes
	if n_inserts != n_nodes {
		fmsg := "validatestats(): n_inserts:%v != n_nodes:%v"
		panic(fmt.Errorf(fmsg, n_inserts, n_nodes))
	}
	// every delete frees exactly one node
	n_frees := t.n_frees
	if n_deletes != n_frees {
		fmsg := "validatestats(): n_deletes:%v != n_frees:%v"
		panic(fmt.Errorf(fmsg, n_deletes, n_frees))
	}
}
