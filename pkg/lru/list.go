package lru

import "errors"

var (
	ErrNilNode     = errors.New("node to insert as head cannot be nil")
	ErrForeignNode = errors.New("node belongs to another list")
	ErrEmptyList   = errors.New("list is empty")
)

// Node is an element of a List. It does not know the key it is indexed
// under; the cache supplies keys externally.
type Node[T any] struct {
	value T

	prev *Node[T]
	next *Node[T]

	// list is the List the node is linked into, nil when detached.
	list *List[T]
}

// NewNode returns a detached node holding v.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{value: v}
}

func (n *Node[T]) Value() T { return n.value }

// Prev returns the neighbour closer to the head, or nil.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// Next returns the neighbour closer to the tail, or nil.
func (n *Node[T]) Next() *Node[T] { return n.next }

// List is a doubly-linked list ordered by recency: head is the most recently
// used node, tail the least recently used.
//
// The zero value is an empty list ready to use. List is not safe for
// concurrent use.
type List[T any] struct {
	head *Node[T]
	tail *Node[T]
	len  int
}

func NewList[T any]() *List[T] {
	return &List[T]{}
}

func (l *List[T]) Head() *Node[T] { return l.head }

func (l *List[T]) Tail() *Node[T] { return l.tail }

func (l *List[T]) Len() int { return l.len }

// InsertAsHead makes n the head of the list.
//
// Inserting the current head is a no-op. A node already linked into l is
// moved to the head without changing Len.
func (l *List[T]) InsertAsHead(n *Node[T]) error {
	if n == nil {
		return ErrNilNode
	}
	if n == l.head {
		return nil
	}
	switch n.list {
	case nil:
	case l:
		l.unlink(n)
	default:
		return ErrForeignNode
	}

	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	n.list = l
	l.len++
	return nil
}

// RemoveHead unlinks the head and returns its value.
func (l *List[T]) RemoveHead() (T, error) {
	n := l.head
	if n == nil {
		var zero T
		return zero, ErrEmptyList
	}
	l.unlink(n)
	return n.value, nil
}

// RemoveTail unlinks the tail and returns its value.
func (l *List[T]) RemoveTail() (T, error) {
	n := l.tail
	if n == nil {
		var zero T
		return zero, ErrEmptyList
	}
	l.unlink(n)
	return n.value, nil
}

// Remove unlinks n and reports whether it was part of l. Membership is
// decided by node identity, so equal values held by different nodes are
// never confused.
func (l *List[T]) Remove(n *Node[T]) bool {
	if n == nil || n.list != l {
		return false
	}
	switch n {
	case l.tail:
		_, _ = l.RemoveTail()
	case l.head:
		_, _ = l.RemoveHead()
	default:
		l.unlink(n)
	}
	return true
}

// Values returns the contained values from head to tail.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.len)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// ValuesBackward returns the contained values from tail to head.
func (l *List[T]) ValuesBackward() []T {
	out := make([]T, 0, l.len)
	for n := l.tail; n != nil; n = n.prev {
		out = append(out, n.value)
	}
	return out
}

// unlink detaches n, which must be linked into l.
func (l *List[T]) unlink(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = nil
	n.next = nil
	n.list = nil
	l.len--
}
