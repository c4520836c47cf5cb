package llrb

import "math/rand"
import "testing"

import s "github.com/bnclabs/gosettings"

func TestValidateAfterMutations(t *testing.T) {
	set := NewSet[int]("validate", testsettings())
	defer set.Destroy()

	// "validate" settings already walks the tree around every
	// mutation; interleave inserts and deletes to churn rotations.
	rnd := rand.New(rand.NewSource(31))
	keys := rnd.Perm(2048)
	for i, key := range keys {
		set.Upsert(key)
		if i%3 == 0 {
			set.Delete(keys[rnd.Intn(i+1)])
		}
	}
	set.Validate()
}

func TestValidateRedAfterRed(t *testing.T) {
	set := NewSet[int]("redred", s.Settings{})
	defer set.Destroy()

	// hand-craft a tree with two consecutive red edges.
	a, b, c := set.newnode(1), set.newnode(2), set.newnode(3)
	c.setblack()
	c.left, b.left = b, a
	set.root = c
	set.n_count, set.n_inserts = 3, 3

	defer func() {
		if recover() != redafterred {
			t.Errorf("expected %v", redafterred)
		}
	}()
	set.Validate()
}

func TestValidateRightLeaning(t *testing.T) {
	set := NewSet[int]("rightlean", s.Settings{})
	defer set.Destroy()

	// a red right edge without a red left edge is not left-leaning.
	parent, right := set.newnode(1), set.newnode(2)
	parent.setblack()
	parent.right = right
	set.root = parent
	set.n_count, set.n_inserts = 2, 2

	defer func() {
		if recover() != rightleaning {
			t.Errorf("expected %v", rightleaning)
		}
	}()
	set.Validate()
}

func TestValidateUnbalancedBlacks(t *testing.T) {
	set := NewSet[int]("unbalanced", s.Settings{})
	defer set.Destroy()

	// left path carries one more black edge than the right path.
	root, left, leftleft := set.newnode(10), set.newnode(5), set.newnode(1)
	root.setblack()
	left.setblack()
	leftleft.setblack()
	root.left, left.left = left, leftleft
	set.root = root
	set.n_count, set.n_inserts = 3, 3

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	set.Validate()
}

func TestValidateRedRoot(t *testing.T) {
	set := NewSet[int]("redroot", s.Settings{})
	defer set.Destroy()

	set.root = set.newnode(1) // fresh nodes carry a red incoming edge
	set.n_count, set.n_inserts = 1, 1

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	set.Validate()
}
