package core

import "iter"

// minSequenceCap is the first backing allocation size
const minSequenceCap = 4

// Sequence is a growable contiguous container of a single element type
// Element size is fixed by T, so mixing element types cannot happen
// Pointers returned by Append and At stay valid until the next growth
type Sequence[T any] struct {
	items []T
}

// NewSequence creates an empty sequence with an optional capacity hint
func NewSequence[T any](capacity int) *Sequence[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Sequence[T]{items: make([]T, 0, capacity)}
}

// Append copies v into backing storage and returns the address of the copy
func (s *Sequence[T]) Append(v T) *T {
	if len(s.items) == cap(s.items) {
		s.grow()
	}
	s.items = s.items[:len(s.items)+1]
	idx := len(s.items) - 1
	s.items[idx] = v
	return &s.items[idx]
}

// grow doubles capacity, amortizing Append to O(1)
func (s *Sequence[T]) grow() {
	newCap := cap(s.items) * 2
	if newCap < minSequenceCap {
		newCap = minSequenceCap
	}
	items := make([]T, len(s.items), newCap)
	copy(items, s.items)
	s.items = items
}

// Get copies out the element at index i
func (s *Sequence[T]) Get(i int) T {
	s.checkIndex(i)
	return s.items[i]
}

// At returns the address of the element at index i
func (s *Sequence[T]) At(i int) *T {
	s.checkIndex(i)
	return &s.items[i]
}

// Set overwrites the element at index i
func (s *Sequence[T]) Set(i int, v T) {
	s.checkIndex(i)
	s.items[i] = v
}

// Delete removes the element at index i, preserving order of the rest
func (s *Sequence[T]) Delete(i int) {
	s.checkIndex(i)
	copy(s.items[i:], s.items[i+1:])
	var zero T
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
}

// IndexFunc returns the first index satisfying fn, or -1
func (s *Sequence[T]) IndexFunc(fn func(T) bool) int {
	for i := range s.items {
		if fn(s.items[i]) {
			return i
		}
	}
	return -1
}

// Len returns the element count
func (s *Sequence[T]) Len() int {
	return len(s.items)
}

// Cap returns the current backing capacity
func (s *Sequence[T]) Cap() int {
	return cap(s.items)
}

// Clear drops all elements, keeping capacity
func (s *Sequence[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// All iterates elements in order
// The sequence must not be mutated during iteration, use Slice to iterate a copy
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements
func (s *Sequence[T]) Slice() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Sequence[T]) checkIndex(i int) {
	Assertf(i >= 0 && i < len(s.items), "sequence index %d out of range [0,%d)", i, len(s.items))
}
