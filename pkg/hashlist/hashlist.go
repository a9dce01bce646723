// Package hashlist implements a persistent, structurally-shared singly
// linked list of hashes, used to carry a move's repetition history across
// branching successor states without copying.
//
// Go has no reference-counted Arc: a *node is ordinary garbage-collected
// memory, immutable once constructed, so sharing a tail across two forked
// histories is just sharing a pointer. The GC keeps shared history alive
// for exactly as long as any branch still references it.
package hashlist

type node struct {
	elem uint64
	next *node
	len  int
}

// List is an immutable singly linked list of uint64 hashes. The zero value
// is the empty list.
type List struct {
	head *node
}

// Append returns a new list with elem prepended, sharing the rest of the
// structure with l.
func (l List) Append(elem uint64) List {
	return List{head: &node{elem: elem, next: l.head, len: l.Len() + 1}}
}

// Head returns the most recently appended hash, if any.
func (l List) Head() (uint64, bool) {
	if l.head == nil {
		return 0, false
	}
	return l.head.elem, true
}

// Tail returns the list with the most recent hash removed.
func (l List) Tail() List {
	if l.head == nil {
		return l
	}
	return List{head: l.head.next}
}

// Len returns the number of elements in the list.
func (l List) Len() int {
	if l.head == nil {
		return 0
	}
	return l.head.len
}

func (l List) IsEmpty() bool {
	return l.head == nil
}

// CountEqual returns how many elements of the list equal hash.
func (l List) CountEqual(hash uint64) int {
	count := 0
	for n := l.head; n != nil; n = n.next {
		if n.elem == hash {
			count++
		}
	}
	return count
}

// ContainsAtLeastTwice reports whether hash occurs at least twice in the
// list.
func (l List) ContainsAtLeastTwice(hash uint64) bool {
	count := 0
	for n := l.head; n != nil; n = n.next {
		if n.elem == hash {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}
