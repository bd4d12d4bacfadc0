// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package linkedlist

// Verify checks the structural invariants of the list and returns an error
// wrapping [ErrCorrupted] describing the first violation found. Traversals are
// bounded by the recorded length, so a cycle is reported rather than looped
// on.
func (l *DoublyLinkedList) Verify() error {
	if l.length < 0 {
		return corrupted("negative length %d", l.length)
	}

	if l.length == 0 {
		if l.head != nil || l.tail != nil {
			return corrupted("empty list still references a head or a tail")
		}
		return nil
	}

	if l.head == nil || l.tail == nil {
		return corrupted("list of length %d is missing its head or its tail", l.length)
	}
	if (l.length == 1) != (l.head == l.tail) {
		return corrupted("head and tail identity disagrees with length %d", l.length)
	}
	if l.head.prev != nil {
		return corrupted("head has a previous node")
	}
	if l.tail.next != nil {
		return corrupted("tail has a next node")
	}

	// Forward, every node must point back at the node we came from.
	var (
		count int
		prev  *Node
	)
	for node := l.head; node != nil; node = node.next {
		count++
		if count > l.length {
			return corrupted("forward traversal visits more than %d nodes", l.length)
		}
		if node.prev != prev {
			return corrupted("node %d does not link back to node %d", count, count-1)
		}
		prev = node
	}
	if count != l.length {
		return corrupted("forward traversal visits %d nodes, want %d", count, l.length)
	}
	if prev != l.tail {
		return corrupted("forward traversal does not end at the tail")
	}

	count = 0
	for node := l.tail; node != nil; node = node.prev {
		count++
		if count > l.length {
			return corrupted("backward traversal visits more than %d nodes", l.length)
		}
	}
	if count != l.length {
		return corrupted("backward traversal visits %d nodes, want %d", count, l.length)
	}

	return nil
}
