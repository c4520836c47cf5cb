package llrb

import "math/rand"
import "testing"

func TestIteratorEmpty(t *testing.T) {
	set := NewSet[int]("iterempty", testsettings())
	defer set.Destroy()

	iter := set.Iter()
	defer iter.Close()
	if _, ok := iter.Next(); ok {
		t.Errorf("expected exhausted iterator")
	}
	// exhausted iterators stay exhausted.
	if _, ok := iter.Next(); ok {
		t.Errorf("expected exhausted iterator")
	}
}

func TestIteratorAscending(t *testing.T) {
	set := NewSet[int]("iterasc", testsettings())
	defer set.Destroy()

	rnd := rand.New(rand.NewSource(29))
	n := 1000
	for _, key := range rnd.Perm(n) {
		set.Upsert(key)
	}

	iter := set.Iter()
	defer iter.Close()
	for i := 0; i < n; i++ {
		if item, ok := iter.Next(); ok == false {
			t.Fatalf("premature end at %v", i)
		} else if item != i {
			t.Errorf("expected %v, got %v", i, item)
		}
	}
	if _, ok := iter.Next(); ok {
		t.Errorf("expected exactly %v items", n)
	}
}

func TestIteratorClosed(t *testing.T) {
	set := NewSet[int]("iterclosed", testsettings())
	defer set.Destroy()

	set.Upsert(1)
	iter := set.Iter()
	iter.Close()

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic")
		}
	}()
	iter.Next()
}

func TestIteratorPool(t *testing.T) {
	set := NewSet[int]("iterpool", testsettings())
	defer set.Destroy()

	for i := 0; i < 100; i++ {
		set.Upsert(i)
	}

	iter := set.Iter()
	iter.Close()

	// a closed iterator goes back to the pool and is handed out again.
	again := set.Iter()
	defer again.Close()
	if iter != again {
		t.Errorf("expected pooled iterator to be reused")
	}
	for i := 0; i < 100; i++ {
		if item, ok := again.Next(); ok == false || item != i {
			t.Errorf("expected %v, got {%v,%v}", i, item, ok)
		}
	}
}

func TestIteratorPartial(t *testing.T) {
	set := NewSet[int]("iterpartial", testsettings())
	defer set.Destroy()

	for i := 0; i < 64; i++ {
		set.Upsert(i)
	}
	iter := set.Iter()
	for i := 0; i < 10; i++ {
		iter.Next()
	}
	iter.Close() // closing midway resets the traversal stack

	again := set.Iter()
	defer again.Close()
	if item, ok := again.Next(); ok == false || item != 0 {
		t.Errorf("expected fresh traversal, got {%v,%v}", item, ok)
	}
}
