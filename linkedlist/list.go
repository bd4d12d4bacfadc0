// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

// Package linkedlist provides a doubly linked list of integers with 1-based
// indexed access.
//
// A [DoublyLinkedList] is not safe for concurrent use. Nodes removed from a
// list have their links cleared and belong to the caller.
package linkedlist

import (
	"github.com/DataDog/dsa-course-go/internal/config"
	"github.com/DataDog/dsa-course-go/log"
)

type (
	// DoublyLinkedList is an ordered sequence of integers tracked by its head,
	// its tail and its length. The zero value is an empty list ready to use.
	DoublyLinkedList struct {
		head   *Node
		tail   *Node
		length int

		cfg config.ContainerConfig
	}

	// Node is an element of a [DoublyLinkedList].
	Node struct {
		next  *Node
		prev  *Node
		Value int
	}
)

// New creates a list holding the single given value. The configuration is
// read from the environment, see [config.NewContainerConfig].
func New(value int) *DoublyLinkedList {
	return newList(value, config.NewContainerConfig())
}

// newList allows creating a list with an explicit configuration, which is
// useful for testing.
func newList(value int, cfg config.ContainerConfig) *DoublyLinkedList {
	node := &Node{Value: value}
	l := &DoublyLinkedList{head: node, tail: node, length: 1, cfg: cfg}
	l.mutated("New")
	return l
}

// Head returns the first node of the list, or nil if the list is empty.
func (l *DoublyLinkedList) Head() *Node {
	return l.head
}

// Tail returns the last node of the list, or nil if the list is empty.
func (l *DoublyLinkedList) Tail() *Node {
	return l.tail
}

// Len returns the number of nodes in the list.
func (l *DoublyLinkedList) Len() int {
	return l.length
}

// Append adds a new node holding value after the current tail.
func (l *DoublyLinkedList) Append(value int) {
	node := &Node{Value: value}
	if l.length == 0 {
		l.head = node
		l.tail = node
	} else {
		node.prev = l.tail
		l.tail.next = node
		l.tail = node
	}
	l.length++
	l.mutated("Append")
}

// Prepend adds a new node holding value before the current head.
func (l *DoublyLinkedList) Prepend(value int) {
	node := &Node{Value: value}
	if l.length == 0 {
		l.head = node
		l.tail = node
	} else {
		node.next = l.head
		l.head.prev = node
		l.head = node
	}
	l.length++
	l.mutated("Prepend")
}

// RemoveLast unlinks the tail node and returns it with its links cleared. It
// returns nil if the list is empty.
func (l *DoublyLinkedList) RemoveLast() *Node {
	if l.length == 0 {
		if l.cfg.TraceOperations {
			log.Trace("linkedlist: RemoveLast on an empty list")
		}
		return nil
	}

	node := l.tail
	if l.length == 1 {
		l.head = nil
		l.tail = nil
	} else {
		l.tail = node.prev
		l.tail.next = nil
		node.prev = nil
	}
	l.length--
	l.mutated("RemoveLast")
	return node
}

// RemoveFirst unlinks the head node and returns it with its links cleared. It
// returns nil if the list is empty.
func (l *DoublyLinkedList) RemoveFirst() *Node {
	if l.length == 0 {
		if l.cfg.TraceOperations {
			log.Trace("linkedlist: RemoveFirst on an empty list")
		}
		return nil
	}

	node := l.head
	if l.length == 1 {
		l.head = nil
		l.tail = nil
	} else {
		l.head = node.next
		l.head.prev = nil
		node.next = nil
	}
	l.length--
	l.mutated("RemoveFirst")
	return node
}

// Get returns the node at the given 1-based index. Valid indices range from 1
// to [DoublyLinkedList.Len] inclusive; any other index yields an [*IndexError].
func (l *DoublyLinkedList) Get(index int) (*Node, error) {
	return l.nodeAt("Get", index)
}

// Set replaces the value held at the given 1-based index. It follows the same
// bounds rules as [DoublyLinkedList.Get] and leaves the list untouched on
// error.
func (l *DoublyLinkedList) Set(index int, value int) error {
	node, err := l.nodeAt("Set", index)
	if err != nil {
		return err
	}
	node.Value = value
	l.mutated("Set")
	return nil
}

// Values returns a copy of the values held by the list, from head to tail. It
// is never nil.
func (l *DoublyLinkedList) Values() []int {
	values := make([]int, 0, l.length)
	for node := l.head; node != nil; node = node.next {
		values = append(values, node.Value)
	}
	return values
}

// nodeAt walks index-1 steps from the head, after checking index is within
// 1..length.
func (l *DoublyLinkedList) nodeAt(op string, index int) (*Node, error) {
	if index < 1 || index > l.length {
		err := &IndexError{Index: index, Length: l.length}
		if l.cfg.TraceOperations {
			log.Debug("linkedlist: %s rejected: %v", op, err)
		}
		return nil, err
	}

	node := l.head
	for range index - 1 {
		node = node.next
	}
	return node, nil
}

// mutated runs the configured post-mutation hooks.
func (l *DoublyLinkedList) mutated(op string) {
	if l.cfg.TraceOperations {
		log.Trace("linkedlist: %s done, length is %d", op, l.length)
	}
	if !l.cfg.CheckInvariants {
		return
	}
	if err := l.Verify(); err != nil {
		panic(log.Criticalf("linkedlist: %s left the list inconsistent: %w", op, err))
	}
}

// Next returns the node following n, or nil if n is the tail.
func (n *Node) Next() *Node {
	return n.next
}

// Prev returns the node preceding n, or nil if n is the head.
func (n *Node) Prev() *Node {
	return n.prev
}
