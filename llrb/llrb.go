package llrb

import "fmt"
import "io"
import "strings"

import "github.com/bnclabs/gotree/api"
import "github.com/bnclabs/gotree/lib"
import s "github.com/bnclabs/gosettings"

// worst case path length of a balanced llrb tree, counting red links,
// within the int64 count domain.
const maxtreeheight = 128

// tree is the engine shared by Set and Map. keyof projects a stored
// item to its ordering key and cmp is a total order over keys, the two
// together are what make one rebalancing engine serve both containers.
type tree[I, K any] struct {
	llrbstats

	name     string
	root     *node[I]
	keyof    func(*I) K
	cmp      api.Comparator[K]
	release  func(I)
	dead     bool
	iterpool chan *Iterator[I]

	// settings
	iterpoolsize int64
	capacity     int64
	validateopt  bool
	setts        s.Settings
	logprefix    string
}

func (t *tree[I, K]) init(
	kind, name string, keyof func(*I) K, cmp api.Comparator[K],
	setts s.Settings) {

	t.name, t.keyof, t.cmp = name, keyof, cmp
	t.logprefix = fmt.Sprintf("%v [%v]", kind, name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	t.readsettings(setts)
	t.iterpool = make(chan *Iterator[I], t.iterpoolsize)
	t.setts = setts

	// statistics
	t.h_upsertdepth = lib.NewhistorgramInt64(1, 256, 8)

	infof("%v started ...\n", t.logprefix)
}

func (t *tree[I, K]) readsettings(setts s.Settings) {
	t.iterpoolsize = setts.Int64("iterpool.size")
	t.capacity = setts.Int64("capacity")
	t.validateopt = setts.Bool("validate")
	if t.capacity <= 0 {
		panicerr("capacity cannot be ZERO")
	}
	if t.iterpoolsize < 0 {
		panicerr("iterpool.size cannot be negative")
	}
}

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}

// ID return the name of this tree instance.
func (t *tree[I, K]) ID() string {
	return t.name
}

// Count return the number of items in the tree.
func (t *tree[I, K]) Count() int64 {
	return t.n_count
}

// Isactive return false after the tree is destroyed.
func (t *tree[I, K]) Isactive() bool {
	return t.dead == false
}

// Setrelease register fn as the ownership hook for items leaving the
// tree: displaced by an upsert, removed by a delete, or torn down by
// Destroy. nil, the default, means items are not owned by the tree.
func (t *tree[I, K]) Setrelease(fn func(I)) {
	t.release = fn
}

// Upsert insert item into the tree, or replace the item stored under
// an equal key, returning the displaced item. Fails with
// api.ErrorOutofMemory when inserting beyond the configured capacity,
// leaving the tree untouched.
func (t *tree[I, K]) Upsert(item I) (old I, updated bool, err error) {
	if t.dead {
		panic(api.ErrorDeadTree)
	}
	if t.validateopt {
		t.validate(t.root)
	}

	root, old, updated, err := t.upsert(t.root, 1 /*depth*/, item)
	if err != nil {
		return old, false, err
	}
	root.setblack()
	t.root = root
	t.upsertcounts(updated)
	if updated {
		t.releaseitem(old)
	}

	if t.validateopt {
		t.validate(t.root)
	}
	return old, updated, nil
}

// Delete remove the item stored under key and return it. Missing key
// is not an error, it reports ok as false with the tree unchanged.
func (t *tree[I, K]) Delete(key K) (removed I, ok bool) {
	if t.dead {
		panic(api.ErrorDeadTree)
	}
	if t.validateopt {
		t.validate(t.root)
	}

	root, deleted := t.delete(t.root, key)
	if root != nil {
		root.setblack()
	}
	t.root = root
	t.delcounts(deleted)
	if deleted == nil {
		return removed, false
	}
	removed = deleted.item
	t.releaseitem(removed)
	t.freenode(deleted)

	if t.validateopt {
		t.validate(t.root)
	}
	return removed, true
}

// DeleteMin remove and return the item with the least key.
func (t *tree[I, K]) DeleteMin() (removed I, ok bool) {
	if t.dead {
		panic(api.ErrorDeadTree)
	}
	if t.validateopt {
		t.validate(t.root)
	}

	root, deleted := t.deletemin(t.root)
	if root != nil {
		root.setblack()
	}
	t.root = root
	t.delcounts(deleted)
	if deleted == nil {
		return removed, false
	}
	removed = deleted.item
	t.releaseitem(removed)
	t.freenode(deleted)

	if t.validateopt {
		t.validate(t.root)
	}
	return removed, true
}

// DeleteMax remove and return the item with the highest key.
func (t *tree[I, K]) DeleteMax() (removed I, ok bool) {
	if t.dead {
		panic(api.ErrorDeadTree)
	}
	if t.validateopt {
		t.validate(t.root)
	}

	root, deleted := t.deletemax(t.root)
	if root != nil {
		root.setblack()
	}
	t.root = root
	t.delcounts(deleted)
	if deleted == nil {
		return removed, false
	}
	removed = deleted.item
	t.releaseitem(removed)
	t.freenode(deleted)

	if t.validateopt {
		t.validate(t.root)
	}
	return removed, true
}

// Get return the item stored under key.
func (t *tree[I, K]) Get(key K) (item I, ok bool) {
	nd, ok := t.getkey(t.root, key)
	if ok {
		return nd.item, true
	}
	return item, false
}

// Contains return whether key is present in the tree.
func (t *tree[I, K]) Contains(key K) bool {
	_, ok := t.getkey(t.root, key)
	return ok
}

// Destroy tear down the tree, handing every remaining item to the
// release hook, and mark this instance dead. Subsequent mutations
// panic with api.ErrorDeadTree.
func (t *tree[I, K]) Destroy() {
	if t.dead {
		return
	}
	t.logstatistics()
	t.destroytree(t.root)
	t.root, t.dead = nil, true
	t.n_count = 0
	infof("%v destroyed\n", t.logprefix)
}

// Dotdump to convert whole tree into dot script that can be visualized
// using graphviz.
func (t *tree[I, K]) Dotdump(buffer io.Writer) {
	lines := []string{
		"digraph llrb {",
		"  node[shape=record];\n",
		"}",
	}
	buffer.Write([]byte(strings.Join(lines[:len(lines)-1], "\n")))
	nid := 0
	t.root.dotdump(buffer, &nid)
	buffer.Write([]byte(lines[len(lines)-1]))
}

//---- recursive tree operations

// returns root, displaced item, updated, err
func (t *tree[I, K]) upsert(
	nd *node[I], depth int64,
	item I) (newnd *node[I], old I, updated bool, err error) {

	if nd == nil {
		// allocation happens before any structural mutation of the
		// path, so a capacity failure leaves the tree untouched.
		if t.n_count >= t.capacity {
			return nil, old, false, api.ErrorOutofMemory
		}
		newnd := t.newnode(item)
		t.h_upsertdepth.Add(depth)
		return newnd, old, false, nil
	}

	nd = t.walkdownrot23(nd)

	key := t.keyof(&item)
	if c := t.cmp(t.keyof(&nd.item), key); c > 0 {
		nd.left, old, updated, err = t.upsert(nd.left, depth+1, item)
	} else if c < 0 {
		nd.right, old, updated, err = t.upsert(nd.right, depth+1, item)
	} else {
		old, nd.item, updated = nd.item, item, true
		t.h_upsertdepth.Add(depth)
	}
	if err != nil {
		return nd, old, false, err
	}

	nd = t.walkuprot23(nd)
	return nd, old, updated, nil
}

// using 2-3 trees
func (t *tree[I, K]) deletemin(nd *node[I]) (newnd, deleted *node[I]) {
	if nd == nil {
		return nil, nil
	}
	if nd.left == nil {
		return nil, nd
	}
	if !isred(nd.left) && !isred(nd.left.left) {
		nd = t.moveredleft(nd)
	}
	nd.left, deleted = t.deletemin(nd.left)
	return t.fixup(nd), deleted
}

// using 2-3 trees
func (t *tree[I, K]) deletemax(nd *node[I]) (newnd, deleted *node[I]) {
	if nd == nil {
		return nil, nil
	}
	if isred(nd.left) {
		nd = t.rotateright(nd)
	}
	if nd.right == nil {
		return nil, nd
	}
	if !isred(nd.right) && !isred(nd.right.left) {
		nd = t.moveredright(nd)
	}
	nd.right, deleted = t.deletemax(nd.right)
	return t.fixup(nd), deleted
}

func (t *tree[I, K]) delete(nd *node[I], key K) (newnd, deleted *node[I]) {
	if nd == nil {
		return nil, nil
	}

	if t.cmp(t.keyof(&nd.item), key) > 0 {
		if nd.left == nil { // key not present. Nothing to delete
			return nd, nil
		}
		if !isred(nd.left) && !isred(nd.left.left) {
			nd = t.moveredleft(nd)
		}
		nd.left, deleted = t.delete(nd.left, key)

	} else {
		if isred(nd.left) {
			nd = t.rotateright(nd)
		}
		// if key matches and there is no right children
		if t.cmp(t.keyof(&nd.item), key) == 0 && nd.right == nil {
			return nil, nd
		}
		if nd.right != nil && !isred(nd.right) && !isred(nd.right.left) {
			nd = t.moveredright(nd)
		}
		// if key matches, right subtree is guaranteed non-trivial, so
		// replace with the inorder successor instead of removing an
		// internal node.
		if t.cmp(t.keyof(&nd.item), key) == 0 {
			var subdeleted *node[I]
			nd.right, subdeleted = t.deletemin(nd.right)
			if subdeleted == nil {
				panic("delete(): fatal logic, call the programmer")
			}
			subdeleted.left, subdeleted.right = nd.left, nd.right
			subdeleted.black = nd.black
			deleted, nd = nd, subdeleted
		} else { // else, key is bigger than nd
			nd.right, deleted = t.delete(nd.right, key)
		}
	}
	return t.fixup(nd), deleted
}

func (t *tree[I, K]) getkey(nd *node[I], key K) (*node[I], bool) {
	for nd != nil {
		if c := t.cmp(t.keyof(&nd.item), key); c > 0 {
			nd = nd.left
		} else if c < 0 {
			nd = nd.right
		} else {
			return nd, true
		}
	}
	return nil, false
}

// rotation routines for 2-3 algorithm

func (t *tree[I, K]) walkdownrot23(nd *node[I]) *node[I] {
	return nd
}

func (t *tree[I, K]) walkuprot23(nd *node[I]) *node[I] {
	if isred(nd.right) && !isred(nd.left) {
		nd = t.rotateleft(nd)
	}
	if isred(nd.left) && isred(nd.left.left) {
		nd = t.rotateright(nd)
	}
	if isred(nd.left) && isred(nd.right) {
		t.flip(nd)
	}
	return nd
}

func (t *tree[I, K]) rotateleft(nd *node[I]) *node[I] {
	y := nd.right
	if isblack(y) {
		panic("rotateleft(): rotating a black link ? call the programmer")
	}
	nd.right = y.left
	y.left = nd
	y.black = nd.black
	nd.setred()
	return y
}

func (t *tree[I, K]) rotateright(nd *node[I]) *node[I] {
	x := nd.left
	if isblack(x) {
		panic("rotateright(): rotating a black link ? call the programmer")
	}
	nd.left = x.right
	x.right = nd
	x.black = nd.black
	nd.setred()
	return x
}

// REQUIRE: Left and Right children must be present
func (t *tree[I, K]) flip(nd *node[I]) {
	nd.black = !nd.black
	nd.left.black = !nd.left.black
	nd.right.black = !nd.right.black
}

// REQUIRE: Left and Right children must be present
func (t *tree[I, K]) moveredleft(nd *node[I]) *node[I] {
	t.flip(nd)
	if isred(nd.right.left) {
		nd.right = t.rotateright(nd.right)
		nd = t.rotateleft(nd)
		t.flip(nd)
	}
	return nd
}

// REQUIRE: Left and Right children must be present
func (t *tree[I, K]) moveredright(nd *node[I]) *node[I] {
	t.flip(nd)
	if isred(nd.left.left) {
		nd = t.rotateright(nd)
		t.flip(nd)
	}
	return nd
}

// fixup is the post-order rebalance applied on every return path of
// the delete variants, same guarded tests as walkuprot23.
func (t *tree[I, K]) fixup(nd *node[I]) *node[I] {
	if nd == nil {
		return nil
	}
	return t.walkuprot23(nd)
}

//---- local functions

func (t *tree[I, K]) newnode(item I) *node[I] {
	nd := &node[I]{item: item}
	nd.setred()
	t.n_nodes++
	return nd
}

func (t *tree[I, K]) freenode(nd *node[I]) {
	if nd != nil {
		nd.left, nd.right = nil, nil
		t.n_frees++
	}
}

func (t *tree[I, K]) releaseitem(item I) {
	if t.release != nil {
		t.release(item)
	}
}

func (t *tree[I, K]) destroytree(nd *node[I]) {
	if nd == nil {
		return
	}
	t.destroytree(nd.left)
	t.destroytree(nd.right)
	t.releaseitem(nd.item)
	t.freenode(nd)
}
