package lib

import "errors"

// ErrorStackEmpty popping or peeking an empty stack.
var ErrorStackEmpty = errors.New("stack.empty")

// Stack of frames backed by an array whose capacity is fixed at
// construction time. Pushes never allocate, hence a stack sized to the
// worst case path length of a balanced tree can be used for traversal
// without touching the heap.
type Stack[T any] struct {
	frames []T
	depth  int
}

// NewStack return a stack that can hold upto capacity frames.
func NewStack[T any](capacity int) *Stack[T] {
	return &Stack[T]{frames: make([]T, capacity)}
}

// Push a frame on top of the stack. Pushing beyond capacity means the
// caller's sizing argument is broken, treated as fatal.
func (s *Stack[T]) Push(frame T) {
	if s.depth == len(s.frames) {
		panic("stack overflow, call the programmer")
	}
	s.frames[s.depth] = frame
	s.depth++
}

// Pop the top frame.
func (s *Stack[T]) Pop() (frame T, err error) {
	if s.depth == 0 {
		return frame, ErrorStackEmpty
	}
	s.depth--
	frame = s.frames[s.depth]
	var empty T
	s.frames[s.depth] = empty
	return frame, nil
}

// Top return a reference to the top frame, nil if the stack is empty.
// The reference is valid until the frame is popped.
func (s *Stack[T]) Top() *T {
	if s.depth == 0 {
		return nil
	}
	return &s.frames[s.depth-1]
}

// Len return the number of frames in the stack.
func (s *Stack[T]) Len() int {
	return s.depth
}

// Cap return the fixed capacity of the stack.
func (s *Stack[T]) Cap() int {
	return len(s.frames)
}

// Reset truncate the stack to empty, retaining its backing array for
// reuse.
func (s *Stack[T]) Reset() {
	var empty T
	for i := 0; i < s.depth; i++ {
		s.frames[i] = empty
	}
	s.depth = 0
}
