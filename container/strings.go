package container

import (
	"iter"
	"unsafe"

	"github.com/cespare/xxhash/v2"

	"github.com/pavanmanishd/region"
)

// Strings is a vector of strings whose bytes and headers both live in the
// arena, so it is safe to keep in arena memory.
type Strings struct {
	bytes region.Allocator[byte]
	vec   *Vector[string]
}

// NewStrings returns an empty string vector allocating from al's arena.
func NewStrings[E any](al region.Allocator[E]) *Strings {
	return &Strings{
		bytes: region.Rebind[byte](al),
		vec:   NewVector(region.Rebind[string](al)),
	}
}

// Append copies s into the arena and returns its index.
func (s *Strings) Append(str string) int {
	s.vec.Push(copyString(s.bytes, str))
	return s.vec.Len() - 1
}

// At returns the i-th string. It aliases arena memory.
func (s *Strings) At(i int) string { return s.vec.At(i) }

// Len returns the number of strings.
func (s *Strings) Len() int { return s.vec.Len() }

// All iterates over index/string pairs.
func (s *Strings) All() iter.Seq2[int, string] { return s.vec.All() }

// Interner deduplicates strings into an arena. Equal inputs return the same
// arena-resident string. Entries are bucketed by their xxhash digest.
type Interner struct {
	bytes   region.Allocator[byte]
	buckets *Map[uint64, int32] // digest -> newest entry
	entries *Vector[internEntry]
}

type internEntry struct {
	s    string
	next int32 // index of the next entry with the same digest, or -1
}

// NewInterner returns an empty interner allocating from al's arena.
func NewInterner[E any](al region.Allocator[E]) *Interner {
	return &Interner{
		bytes:   region.Rebind[byte](al),
		buckets: NewMap[uint64, int32](al),
		entries: NewVector(region.Rebind[internEntry](al)),
	}
}

// Intern returns the arena copy of str, copying it on first sight.
func (in *Interner) Intern(str string) string {
	h := xxhash.Sum64String(str)
	head := int32(-1)
	if i, ok := in.buckets.Get(h); ok {
		head = i
		for i := head; i >= 0; i = in.entries.At(int(i)).next {
			if e := in.entries.At(int(i)); e.s == str {
				return e.s
			}
		}
	}
	s := copyString(in.bytes, str)
	in.entries.Push(internEntry{s: s, next: head})
	in.buckets.Put(h, int32(in.entries.Len()-1))
	return s
}

// Len returns the number of distinct strings.
func (in *Interner) Len() int { return in.entries.Len() }

func copyString(al region.Allocator[byte], str string) string {
	if str == "" {
		return ""
	}
	b, err := al.Allocate(len(str))
	if err != nil {
		panic(err)
	}
	copy(b, str)
	return unsafe.String(unsafe.SliceData(b), len(b))
}
