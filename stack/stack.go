// Package stack implements a parameterized Last-In-First-Out (LIFO) container.
package stack

import "errors"

// ErrEmpty is returned by Pop and Top when the stack holds no elements.
var ErrEmpty = errors.New("stack is empty")

// Stack is a slice-backed LIFO container over an arbitrary element type.
//
// A Stack owns its elements exclusively from Push until they are removed by
// Pop or discarded by Clear. It must not be copied after first use; share a
// *Stack instead.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack. The zero value is also ready to use.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push appends a new element to the top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the topmost element of the stack.
// It returns ErrEmpty when the stack holds no elements.
func (s *Stack[T]) Pop() (item T, err error) {
	if len(s.items) == 0 {
		err = ErrEmpty
		return
	}
	idx := len(s.items) - 1
	item = s.items[idx]

	// Release the slot so the stack no longer retains the element.
	var zero T
	s.items[idx] = zero
	s.items = s.items[:idx]
	return
}

// Top returns the topmost element without removing it.
// It returns ErrEmpty when the stack holds no elements.
func (s *Stack[T]) Top() (item T, err error) {
	if len(s.items) == 0 {
		err = ErrEmpty
		return
	}
	return s.items[len(s.items)-1], nil
}

// Len returns the total number of elements currently stored in the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool {
	return len(s.items) == 0
}

// Clear removes all elements from the stack, resetting it to an empty state.
func (s *Stack[T]) Clear() {
	s.items = nil
}

// Items returns a bottom-to-top snapshot of the stored elements.
func (s *Stack[T]) Items() []T {
	snapshot := make([]T, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}
