package llrb

import "math/rand"
import "sort"
import "strings"
import "testing"

func TestMapScenario(t *testing.T) {
	m := NewMap[int, string]("scenario", testsettings())
	defer m.Destroy()

	for _, key := range []int{5, 1, 0, 2, 4, 3} {
		if _, updated, err := m.Set(key, strings.Repeat("x", key)); err != nil {
			t.Fatalf("unexpected %v", err)
		} else if updated {
			t.Errorf("unexpected update for %v", key)
		}
	}

	iter := m.Iter()
	defer iter.Close()
	for i := 0; i <= 5; i++ {
		pair, ok := iter.Next()
		if ok == false {
			t.Fatalf("premature end at %v", i)
		} else if pair.Key != i {
			t.Errorf("expected %v, got %v", i, pair.Key)
		} else if pair.Value != strings.Repeat("x", i) {
			t.Errorf("unexpected %v", pair.Value)
		}
	}
	if _, ok := iter.Next(); ok {
		t.Errorf("expected exhausted iterator")
	}
}

func TestMapSetGetDelete(t *testing.T) {
	m := NewMap[string, int]("crosscheck", testsettings())
	defer m.Destroy()

	// cross-check against a reference map.
	ref := map[string]int{}
	rnd := rand.New(rand.NewSource(17))
	for i := 0; i < 2000; i++ {
		key := string(rune('a'+rnd.Intn(26))) + string(rune('a'+rnd.Intn(26)))
		value := rnd.Intn(10000)
		_, exists := ref[key]
		if old, updated, err := m.Set(key, value); err != nil {
			t.Fatalf("unexpected %v", err)
		} else if updated != exists {
			t.Errorf("expected %v, got %v", exists, updated)
		} else if exists && old != ref[key] {
			t.Errorf("expected %v, got %v", ref[key], old)
		}
		ref[key] = value
	}
	if x := m.Count(); x != int64(len(ref)) {
		t.Errorf("expected %v, got %v", len(ref), x)
	}
	for key, value := range ref {
		if v, ok := m.Get(key); ok == false {
			t.Errorf("missing %v", key)
		} else if v != value {
			t.Errorf("expected %v, got %v", value, v)
		}
	}

	// ascending iteration matches the sorted reference keys.
	keys := make([]string, 0, len(ref))
	for key := range ref {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	kiter := m.Keys()
	defer kiter.Close()
	for _, refkey := range keys {
		if key, ok := kiter.Next(); ok == false {
			t.Fatalf("premature end at %v", refkey)
		} else if key != refkey {
			t.Errorf("expected %v, got %v", refkey, key)
		}
	}

	// delete everything, each delete returns the value last stored.
	for key, value := range ref {
		if v, ok := m.Delete(key); ok == false {
			t.Errorf("missing %v", key)
		} else if v != value {
			t.Errorf("expected %v, got %v", value, v)
		}
	}
	if x := m.Count(); x != 0 {
		t.Errorf("unexpected %v", x)
	}
}

func TestMapDeleteMinMax(t *testing.T) {
	m := NewMap[int, int]("minmax", testsettings())
	defer m.Destroy()

	if _, _, ok := m.DeleteMin(); ok {
		t.Errorf("expected empty tree")
	}
	if _, _, ok := m.DeleteMax(); ok {
		t.Errorf("expected empty tree")
	}

	rnd := rand.New(rand.NewSource(19))
	for _, key := range rnd.Perm(500) {
		m.Set(key, key*10)
	}
	for i := 0; i < 250; i++ {
		if key, value, ok := m.DeleteMin(); ok == false {
			t.Fatalf("premature empty at %v", i)
		} else if key != i || value != i*10 {
			t.Errorf("expected {%v,%v}, got {%v,%v}", i, i*10, key, value)
		}
	}
	for i := 499; i >= 250; i-- {
		if key, value, ok := m.DeleteMax(); ok == false {
			t.Fatalf("premature empty at %v", i)
		} else if key != i || value != i*10 {
			t.Errorf("expected {%v,%v}, got {%v,%v}", i, i*10, key, value)
		}
	}
	if x := m.Count(); x != 0 {
		t.Errorf("unexpected %v", x)
	}
}

func TestMapValuesView(t *testing.T) {
	m := NewMap[int, string]("values", testsettings())
	defer m.Destroy()

	words := []string{"zero", "one", "two", "three"}
	for i, word := range words {
		m.Set(i, word)
	}

	viter := m.Values()
	defer viter.Close()
	for _, word := range words {
		if value, ok := viter.Next(); ok == false {
			t.Fatalf("premature end at %v", word)
		} else if value != word {
			t.Errorf("expected %v, got %v", word, value)
		}
	}
	if _, ok := viter.Next(); ok {
		t.Errorf("expected exhausted view")
	}
}

func TestMapCmp(t *testing.T) {
	nocase := func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}
	m := NewMapCmp[string, int]("nocase", testsettings(), nocase)
	defer m.Destroy()

	m.Set("Alpha", 1)
	if old, updated, err := m.Set("ALPHA", 2); err != nil {
		t.Fatalf("unexpected %v", err)
	} else if updated == false {
		t.Errorf("expected update")
	} else if old != 1 {
		t.Errorf("unexpected %v", old)
	}
	if x := m.Count(); x != 1 {
		t.Errorf("unexpected %v", x)
	}
	if value, ok := m.Get("alpha"); ok == false || value != 2 {
		t.Errorf("unexpected {%v,%v}", value, ok)
	}
}
