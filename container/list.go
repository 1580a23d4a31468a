package container

import (
	"iter"
	"unsafe"

	"github.com/pavanmanishd/region"
)

// Node is an element of a List. Nodes live in the arena.
type Node[T any] struct {
	Value      T
	prev, next *Node[T]
}

// Next returns the following node or nil.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the preceding node or nil.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// List is a doubly linked list whose nodes are allocated from an arena.
type List[T any] struct {
	nodes      region.Allocator[Node[T]]
	head, tail *Node[T]
	n          int
}

// NewList returns an empty list. Its nodes are allocated through al
// rebound to the node type.
func NewList[T any](al region.Allocator[T]) *List[T] {
	return &List[T]{nodes: region.Rebind[Node[T]](al)}
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.n }

// Front returns the first node or nil.
func (l *List[T]) Front() *Node[T] { return l.head }

// Back returns the last node or nil.
func (l *List[T]) Back() *Node[T] { return l.tail }

// PushBack appends v and returns its node.
func (l *List[T]) PushBack(v T) *Node[T] {
	nd := l.newNode(v)
	nd.prev = l.tail
	if l.tail != nil {
		l.tail.next = nd
	} else {
		l.head = nd
	}
	l.tail = nd
	l.n++
	return nd
}

// PushFront prepends v and returns its node.
func (l *List[T]) PushFront(v T) *Node[T] {
	nd := l.newNode(v)
	nd.next = l.head
	if l.head != nil {
		l.head.prev = nd
	} else {
		l.tail = nd
	}
	l.head = nd
	l.n++
	return nd
}

// Remove unlinks nd, which must belong to l, and returns its value.
// The node's memory is not reused.
func (l *List[T]) Remove(nd *Node[T]) T {
	if nd.prev != nil {
		nd.prev.next = nd.next
	} else {
		l.head = nd.next
	}
	if nd.next != nil {
		nd.next.prev = nd.prev
	} else {
		l.tail = nd.prev
	}
	nd.prev, nd.next = nil, nil
	l.n--
	l.nodes.Deallocate(unsafe.Slice(nd, 1))
	return nd.Value
}

// All iterates front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for nd := l.head; nd != nil; nd = nd.next {
			if !yield(nd.Value) {
				return
			}
		}
	}
}

func (l *List[T]) newNode(v T) *Node[T] {
	s, err := l.nodes.Allocate(1)
	if err != nil {
		panic(err)
	}
	nd := &s[0]
	*nd = Node[T]{Value: v}
	return nd
}
