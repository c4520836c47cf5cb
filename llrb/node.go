package llrb

import "fmt"
import "io"

// node defines a node in LLRB tree. The color bit records the color of
// the incoming edge from this node's parent, not of the node itself.
// Every node exclusively owns its left and right subtrees.
type node[I any] struct {
	left  *node[I]
	right *node[I]
	item  I
	black bool
}

func isred[I any](nd *node[I]) bool {
	if nd == nil {
		return false
	}
	return nd.black == false
}

func isblack[I any](nd *node[I]) bool {
	return !isred(nd)
}

func (nd *node[I]) setred() *node[I] {
	nd.black = false
	return nd
}

func (nd *node[I]) setblack() *node[I] {
	nd.black = true
	return nd
}

func (nd *node[I]) repr() string {
	color := "black"
	if isred(nd) {
		color = "red"
	}
	return fmt.Sprintf("%v-%v", color, nd.item)
}

func (nd *node[I]) dotdump(buffer io.Writer, nid *int) int {
	if nd == nil {
		return -1
	}
	id := *nid
	*nid = *nid + 1
	color := "black"
	if isred(nd) {
		color = "red"
	}
	fmt.Fprintf(buffer, "  %v [label=\"{%v}\" color=%v];\n", id, nd.item, color)
	if lid := nd.left.dotdump(buffer, nid); lid >= 0 {
		fmt.Fprintf(buffer, "  %v -> %v;\n", id, lid)
	}
	if rid := nd.right.dotdump(buffer, nid); rid >= 0 {
		fmt.Fprintf(buffer, "  %v -> %v;\n", id, rid)
	}
	return id
}
