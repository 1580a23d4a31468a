package region

import (
	"runtime"
	"unsafe"
)

// New copies v into the arena and returns a pointer to the copy. If *T
// implements Destroyer, its Destroy method is registered and runs on the
// next Clear or Release, in reverse construction order. Types without a
// Destroy method carry no bookkeeping.
//
// The arena is not scanned by the garbage collector: T must not hold the
// only reference to Go heap memory.
func New[T any](a *Arena, v T) *T {
	p := (*T)(a.AllocRaw(unsafe.Sizeof(v), unsafe.Alignof(v)))
	*p = v
	register(a, p)
	return p
}

// Make allocates a zeroed T in the arena and initializes it in place with
// init. If init panics the panic propagates, no destructor is registered
// and the bytes stay allocated until the next Clear.
func Make[T any](a *Arena, init func(*T)) *T {
	p := allocZeroed[T](a)
	if init != nil {
		init(p)
	}
	register(a, p)
	return p
}

// Alloc returns a pointer to a zero T stored inside the arena. Like New it
// registers Destroy when *T implements Destroyer.
func Alloc[T any](a *Arena) *T {
	p := allocZeroed[T](a)
	register(a, p)
	return p
}

// AllocUninitialized returns a *T located in the arena without zeroing memory.
// This is faster than Alloc but the memory contents are undefined.
// No destructor is registered; the caller owns initialization and teardown.
func AllocUninitialized[T any](a *Arena) *T {
	var zero T
	return (*T)(a.AllocRaw(unsafe.Sizeof(zero), unsafe.Alignof(zero)))
}

// AllocSlice allocates a slice of n elements of type T inside the arena.
// The slice elements are not initialized (contain garbage data).
// Returns nil if n <= 0.
func AllocSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	p := a.AllocRaw(unsafe.Sizeof(zero)*uintptr(n), unsafe.Alignof(zero))
	return unsafe.Slice((*T)(p), n)
}

// AllocSliceZeroed allocates a slice of n elements of type T with zeroed memory.
// This is slower than AllocSlice but ensures clean initialization.
func AllocSliceZeroed[T any](a *Arena, n int) []T {
	s := AllocSlice[T](a, n)
	clear(s)
	return s
}

// PtrAndKeepAlive returns t and calls runtime.KeepAlive on the arena.
// This is useful to prevent the arena from being garbage collected
// while the pointer is still in use in unsafe code.
func PtrAndKeepAlive[T any](a *Arena, t *T) *T {
	runtime.KeepAlive(a)
	return t
}

func allocZeroed[T any](a *Arena) *T {
	var zero T
	p := (*T)(a.AllocRaw(unsafe.Sizeof(zero), unsafe.Alignof(zero)))
	*p = zero
	return p
}

// register records p's destructor if *T has one.
func register[T any](a *Arena, p *T) {
	if _, ok := any(p).(Destroyer); ok {
		a.pushDestructor(destroy[T], unsafe.Pointer(p))
	}
}
