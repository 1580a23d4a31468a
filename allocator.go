package region

import (
	"errors"
	"math"
	"unsafe"
)

// ErrLengthOverflow is returned by Allocator.Allocate when the requested
// element count is negative or its byte size is not representable.
var ErrLengthOverflow = errors.New("region: allocation length overflows")

// ArenaHandle is anything bound to an Arena.
type ArenaHandle interface {
	Arena() *Arena
}

// Allocator is a lightweight handle that lets generic containers obtain
// memory for elements of type T from an Arena it does not own. Copies share
// the arena; Rebind produces a handle for another element type on the same
// arena. An Allocator is only valid while its arena is.
type Allocator[T any] struct {
	arena *Arena
}

// NewAllocator returns an Allocator for T backed by a.
func NewAllocator[T any](a *Arena) Allocator[T] {
	if a == nil {
		panic("region: NewAllocator with nil arena")
	}
	return Allocator[T]{arena: a}
}

// Rebind returns an Allocator for U bound to the same arena as al, so
// container internals (nodes, buckets) share one arena with the values.
func Rebind[U, T any](al Allocator[T]) Allocator[U] {
	return Allocator[U]{arena: al.arena}
}

// Arena returns the arena al allocates from.
func (al Allocator[T]) Arena() *Arena { return al.arena }

// Allocate returns uninitialized storage for n elements of T, aligned for T.
// Returns nil for n == 0 and ErrLengthOverflow if n is negative or
// n*sizeof(T) exceeds math.MaxInt.
func (al Allocator[T]) Allocate(n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	if n < 0 || (size != 0 && uintptr(n) > math.MaxInt/size) {
		return nil, ErrLengthOverflow
	}
	p := al.arena.AllocRaw(size*uintptr(n), unsafe.Alignof(zero))
	return unsafe.Slice((*T)(p), n), nil
}

// Deallocate is a no-op. The arena is monotonic: storage a container gives
// back stays allocated until the arena is cleared.
func (al Allocator[T]) Deallocate([]T) {}

// Equal reports whether al and other draw from the same arena instance.
// The arenas' contents and configuration are irrelevant.
func (al Allocator[T]) Equal(other ArenaHandle) bool {
	return other != nil && al.arena == other.Arena()
}
