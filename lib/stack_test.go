package lib

import "testing"

func TestStackBasic(t *testing.T) {
	s := NewStack[int](8)
	if x := s.Cap(); x != 8 {
		t.Errorf("unexpected %v", x)
	} else if x := s.Len(); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if top := s.Top(); top != nil {
		t.Errorf("unexpected %v", top)
	}

	if _, err := s.Pop(); err != ErrorStackEmpty {
		t.Errorf("expected %v, got %v", ErrorStackEmpty, err)
	}

	for i := 0; i < 8; i++ {
		s.Push(i)
	}
	if x := s.Len(); x != 8 {
		t.Errorf("unexpected %v", x)
	} else if top := s.Top(); *top != 7 {
		t.Errorf("unexpected %v", *top)
	}
	for i := 7; i >= 0; i-- {
		frame, err := s.Pop()
		if err != nil {
			t.Fatalf("unexpected %v", err)
		} else if frame != i {
			t.Errorf("expected %v, got %v", i, frame)
		}
	}
	if x := s.Len(); x != 0 {
		t.Errorf("unexpected %v", x)
	}
}

func TestStackTopMutate(t *testing.T) {
	s := NewStack[int](4)
	s.Push(10)
	*s.Top() = 20
	if frame, _ := s.Pop(); frame != 20 {
		t.Errorf("unexpected %v", frame)
	}
}

func TestStackReset(t *testing.T) {
	s := NewStack[string](4)
	s.Push("a")
	s.Push("b")
	s.Reset()
	if x := s.Len(); x != 0 {
		t.Errorf("unexpected %v", x)
	}
	s.Push("c")
	if top := s.Top(); *top != "c" {
		t.Errorf("unexpected %v", *top)
	}
}

func TestStackOverflow(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic")
		}
	}()
	s := NewStack[int](1)
	s.Push(1)
	s.Push(2)
}
