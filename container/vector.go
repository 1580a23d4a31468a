// Package container provides generic containers whose storage comes from a
// region.Allocator. Growing a container abandons its old storage to the
// arena (Deallocate is a no-op), so every container is released together
// with its arena and never before.
//
// Element types follow the arena's garbage-collection rule: they must not
// hold the only reference to Go heap memory.
package container

import (
	"iter"

	"github.com/pavanmanishd/region"
)

const minVectorCap = 4

// Vector is a growable sequence backed by arena memory.
type Vector[T any] struct {
	al   region.Allocator[T]
	data []T
}

// NewVector returns an empty Vector allocating from al.
func NewVector[T any](al region.Allocator[T]) *Vector[T] {
	return &Vector[T]{al: al}
}

// Allocator returns the handle the vector allocates from.
func (v *Vector[T]) Allocator() region.Allocator[T] { return v.al }

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return len(v.data) }

// Cap returns the number of elements the current storage can hold.
func (v *Vector[T]) Cap() int { return cap(v.data) }

// Reserve makes room for at least n elements without further growth.
func (v *Vector[T]) Reserve(n int) error {
	if n <= cap(v.data) {
		return nil
	}
	buf, err := v.al.Allocate(n)
	if err != nil {
		return err
	}
	copy(buf, v.data)
	v.al.Deallocate(v.data)
	v.data = buf[:len(v.data)]
	return nil
}

// Push appends x, doubling the storage when full. It panics if the new
// capacity cannot be represented.
func (v *Vector[T]) Push(x T) {
	if len(v.data) == cap(v.data) {
		if err := v.Reserve(max(minVectorCap, 2*cap(v.data))); err != nil {
			panic(err)
		}
	}
	v.data = append(v.data, x)
}

// At returns the i-th element.
func (v *Vector[T]) At(i int) T { return v.data[i] }

// Set replaces the i-th element.
func (v *Vector[T]) Set(i int, x T) { v.data[i] = x }

// Slice exposes the elements. The slice aliases arena memory.
func (v *Vector[T]) Slice() []T { return v.data }

// All iterates over index/element pairs.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.data {
			if !yield(i, x) {
				return
			}
		}
	}
}
