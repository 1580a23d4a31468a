package container

import (
	"hash/maphash"
	"iter"

	"github.com/pavanmanishd/region"
)

const minMapSlots = 8

type slot[K comparable, V any] struct {
	key  K
	val  V
	used bool
}

// Map is an open-addressing hash map (linear probing, backward-shift
// deletion) whose slot table is allocated from an arena. The table doubles
// once it is three quarters full; the old table is abandoned to the arena.
type Map[K comparable, V any] struct {
	slots region.Allocator[slot[K, V]]
	table []slot[K, V]
	seed  maphash.Seed
	n     int
}

// NewMap returns an empty map whose slots come from al's arena. The type
// parameter of al only selects the arena; it is rebound internally.
func NewMap[K comparable, V, E any](al region.Allocator[E]) *Map[K, V] {
	return &Map[K, V]{
		slots: region.Rebind[slot[K, V]](al),
		seed:  maphash.MakeSeed(),
	}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.n }

// Get returns the value stored under k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if m.n == 0 {
		var zero V
		return zero, false
	}
	i, ok := m.find(k)
	if !ok {
		var zero V
		return zero, false
	}
	return m.table[i].val, true
}

// Put stores v under k, replacing any previous value.
func (m *Map[K, V]) Put(k K, v V) {
	if (m.n+1)*4 > len(m.table)*3 {
		m.resize(max(minMapSlots, 2*len(m.table)))
	}
	i, ok := m.find(k)
	if !ok {
		m.table[i] = slot[K, V]{key: k, used: true}
		m.n++
	}
	m.table[i].val = v
}

// Delete removes k and reports whether it was present.
func (m *Map[K, V]) Delete(k K) bool {
	if m.n == 0 {
		return false
	}
	i, ok := m.find(k)
	if !ok {
		return false
	}
	mask := len(m.table) - 1
	// Shift later members of the probe run back so lookups never stop early.
	for j := (i + 1) & mask; m.table[j].used; j = (j + 1) & mask {
		home := m.home(m.table[j].key)
		if (j-home)&mask >= (j-i)&mask {
			m.table[i] = m.table[j]
			i = j
		}
	}
	m.table[i] = slot[K, V]{}
	m.n--
	return true
}

// All iterates over entries in table order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.table {
			if s := &m.table[i]; s.used && !yield(s.key, s.val) {
				return
			}
		}
	}
}

func (m *Map[K, V]) home(k K) int {
	return int(maphash.Comparable(m.seed, k) & uint64(len(m.table)-1))
}

// find returns the slot holding k, or the empty slot where k belongs.
func (m *Map[K, V]) find(k K) (int, bool) {
	mask := len(m.table) - 1
	for i := m.home(k); ; i = (i + 1) & mask {
		s := &m.table[i]
		if !s.used {
			return i, false
		}
		if s.key == k {
			return i, true
		}
	}
}

func (m *Map[K, V]) resize(n int) {
	table, err := m.slots.Allocate(n)
	if err != nil {
		panic(err)
	}
	clear(table)
	old := m.table
	m.table = table
	for i := range old {
		if s := &old[i]; s.used {
			j, _ := m.find(s.key)
			m.table[j] = *s
		}
	}
	m.slots.Deallocate(old)
}
