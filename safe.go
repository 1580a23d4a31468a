package region

import (
	"runtime"
	"sync"
)

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// Every call takes the lock, so contended use serializes. Pointers it hands
// out are not themselves protected.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a locked arena whose blocks are at least blockSize
// bytes. If blockSize <= 0, DefaultBlockSize is used.
func NewSafeArena(blockSize int, opts ...Option) *SafeArena {
	return &SafeArena{a: NewArena(blockSize, opts...)}
}

// with runs fn on the wrapped arena while holding the lock.
func with[R any](s *SafeArena, fn func(*Arena) R) R {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.a)
}

func (s *SafeArena) do(fn func(*Arena)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.a)
}

// AllocBytes is Arena.AllocBytes under the lock.
func (s *SafeArena) AllocBytes(n int) []byte {
	return with(s, func(a *Arena) []byte { return a.AllocBytes(n) })
}

// EnsureCapacity is Arena.EnsureCapacity under the lock.
func (s *SafeArena) EnsureCapacity(n int) {
	s.do(func(a *Arena) { a.EnsureCapacity(n) })
}

// Clear runs pending destructors and rewinds the arena.
func (s *SafeArena) Clear() { s.do((*Arena).Clear) }

// Release drops all blocks and makes the arena unusable.
func (s *SafeArena) Release() { s.do((*Arena).Release) }

// SafeNew is New under the lock.
func SafeNew[T any](s *SafeArena, v T) *T {
	return with(s, func(a *Arena) *T { return New(a, v) })
}

// SafeAlloc is Alloc under the lock.
func SafeAlloc[T any](s *SafeArena) *T {
	return with(s, Alloc[T])
}

// SafeAllocUninitialized is AllocUninitialized under the lock.
func SafeAllocUninitialized[T any](s *SafeArena) *T {
	return with(s, AllocUninitialized[T])
}

// SafeAllocSlice is AllocSlice under the lock.
func SafeAllocSlice[T any](s *SafeArena, n int) []T {
	return with(s, func(a *Arena) []T { return AllocSlice[T](a, n) })
}

// SafeAllocSliceZeroed is AllocSliceZeroed under the lock.
func SafeAllocSliceZeroed[T any](s *SafeArena, n int) []T {
	return with(s, func(a *Arena) []T { return AllocSliceZeroed[T](a, n) })
}

// SafePtrAndKeepAlive returns t and keeps the wrapped arena reachable.
func SafePtrAndKeepAlive[T any](s *SafeArena, t *T) *T {
	s.do(func(a *Arena) { runtime.KeepAlive(a) })
	return t
}
