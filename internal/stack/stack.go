// Package stack provides a growable, bounds-checked LIFO stack used for both
// the parse stack and the runtime value stack.
package stack

import "github.com/emirpasic/gods/lists/arraylist"

// Stack is a LIFO stack of values of type T. Index 0 of the backing list is
// the bottom of the stack.
type Stack[T any] struct {
	list *arraylist.List
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{list: arraylist.New()}
}

// Push places value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.list.Add(value)
}

// Pop removes and returns the top value. The boolean is false when the stack
// is empty.
func (s *Stack[T]) Pop() (T, bool) {
	value, ok := s.Peek(0)
	if !ok {
		return value, false
	}
	s.list.Remove(s.list.Size() - 1)
	return value, true
}

// PopN removes the top n values. It removes nothing and returns false if
// fewer than n values are present.
func (s *Stack[T]) PopN(n int) bool {
	if n < 0 || n > s.list.Size() {
		return false
	}
	for i := 0; i < n; i++ {
		s.list.Remove(s.list.Size() - 1)
	}
	return true
}

// Peek returns the value n positions below the top without removing it;
// Peek(0) is the top of the stack.
func (s *Stack[T]) Peek(n int) (T, bool) {
	var zero T
	if n < 0 {
		return zero, false
	}
	value, ok := s.list.Get(s.list.Size() - 1 - n)
	if !ok {
		return zero, false
	}
	// A nil interface value asserts to the zero T.
	v, _ := value.(T)
	return v, true
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int {
	return s.list.Size()
}

// Empty reports whether the stack holds no values.
func (s *Stack[T]) Empty() bool {
	return s.list.Empty()
}

// Values returns the stack contents ordered bottom to top.
func (s *Stack[T]) Values() []T {
	values := make([]T, 0, s.list.Size())
	s.list.Each(func(_ int, value interface{}) {
		v, _ := value.(T)
		values = append(values, v)
	})
	return values
}

// Clear removes every value.
func (s *Stack[T]) Clear() {
	s.list.Clear()
}
