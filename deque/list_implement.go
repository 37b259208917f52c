package deque

import (
	"hxforge/model"
)

var _ Deque = (*ListDeque)(nil)

type ListDeque struct {
	head *node
	tail *node

	size     int
	capacity int
}

type node struct {
	val  model.Calculation
	pre  *node
	next *node
}

// 工厂方法
func NewListDeque(capacity int) *ListDeque {
	if capacity < 0 {
		capacity = 0
	}
	head := &node{}
	tail := &node{}
	head.next = tail
	tail.pre = head

	return &ListDeque{
		head:     head,
		tail:     tail,
		size:     0,
		capacity: capacity,
	}
}

func (ld *ListDeque) Size() int {
	return ld.size
}

func (ld *ListDeque) Capacity() int {
	return ld.capacity
}

func (ld *ListDeque) Get(i int) model.Calculation {
	if i < 0 || i >= ld.size {
		panic("index out of length")
	}
	iter := ld.head.next
	for k := 0; k < i; k++ {
		iter = iter.next
	}
	return iter.val
}

func (ld *ListDeque) Traverse(f func(i int, item model.Calculation)) {
	i := 0
	for iter := ld.head.next; iter != ld.tail; iter = iter.next {
		f(i, iter.val)
		i++
	}
}

func (ld *ListDeque) AddFirst(item model.Calculation) bool {
	if ld.IsFull() {
		return false
	}
	ld.insertAfter(ld.head, item)
	return true
}

func (ld *ListDeque) AddLast(item model.Calculation) bool {
	if ld.IsFull() {
		return false
	}
	ld.insertAfter(ld.tail.pre, item)
	return true
}

func (ld *ListDeque) RemoveFirst() (model.Calculation, bool) {
	if ld.IsEmpty() {
		return model.Calculation{}, false
	}
	return ld.unlink(ld.head.next), true
}

func (ld *ListDeque) RemoveLast() (model.Calculation, bool) {
	if ld.IsEmpty() {
		return model.Calculation{}, false
	}
	return ld.unlink(ld.tail.pre), true
}

func (ld *ListDeque) IsFull() bool {
	return ld.size >= ld.capacity
}

func (ld *ListDeque) IsEmpty() bool {
	return ld.size == 0
}

func (ld *ListDeque) insertAfter(at *node, item model.Calculation) {
	newNode := &node{
		val:  item,
		pre:  at,
		next: at.next,
	}
	at.next.pre = newNode
	at.next = newNode
	ld.size++
}

func (ld *ListDeque) unlink(n *node) model.Calculation {
	n.pre.next = n.next
	n.next.pre = n.pre
	n.pre, n.next = nil, nil
	ld.size--
	return n.val
}
