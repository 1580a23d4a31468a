package region

import "unsafe"

// DestructorChunkSize is the number of destructor records held by one chunk.
const DestructorChunkSize = 32

// Destroyer is implemented by values whose teardown has observable side
// effects. New, Make and Alloc register Destroy for such values and the
// arena calls it on Clear or Release, newest first.
//
// Destroy must not panic and must not allocate from the arena being cleared.
type Destroyer interface {
	Destroy()
}

// destructor is a type-erased destroy call: fn is an instantiation of
// destroy[T] and obj points at the T inside the arena.
type destructor struct {
	fn  func(unsafe.Pointer)
	obj unsafe.Pointer
}

// destructorChunk is one link in the chain of pending destructors.
// Records are appended in order; prev points at the older chunk.
type destructorChunk struct {
	nodes [DestructorChunkSize]destructor
	n     int
	prev  *destructorChunk
}

func destroy[T any](p unsafe.Pointer) {
	any((*T)(p)).(Destroyer).Destroy()
}

// pushDestructor records fn(obj) to be run on the next Clear.
func (a *Arena) pushDestructor(fn func(unsafe.Pointer), obj unsafe.Pointer) {
	c := a.dtors
	if c == nil || c.n == DestructorChunkSize {
		c = a.newDestructorChunk()
	}
	c.nodes[c.n] = destructor{fn: fn, obj: obj}
	c.n++
	a.pending++
}

// newDestructorChunk links a fresh chunk as the new head, reusing one left
// over from a previous Clear when possible.
func (a *Arena) newDestructorChunk() *destructorChunk {
	c := a.spare
	if c != nil {
		a.spare = c.prev
	} else {
		c = new(destructorChunk)
	}
	c.prev = a.dtors
	a.dtors = c
	return c
}

// runDestructors drains the chain newest chunk first and, inside each chunk,
// last record first. The chain is detached before any Destroy runs so a
// panicking destructor can never cause a second call on the same object.
func (a *Arena) runDestructors() {
	c := a.dtors
	a.dtors = nil
	a.pending = 0
	for c != nil {
		for i := c.n; i > 0; i-- {
			d := c.nodes[i-1]
			c.nodes[i-1] = destructor{}
			d.fn(d.obj)
		}
		prev := c.prev
		c.n = 0
		c.prev = a.spare
		a.spare = c
		c = prev
	}
}
