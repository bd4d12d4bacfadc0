// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

// Package queue provides a FIFO queue of integers backed by a singly linked
// list, and a [Synchronized] variant safe for concurrent use.
package queue

import (
	"errors"
	"fmt"

	"github.com/DataDog/dsa-course-go/internal/config"
	"github.com/DataDog/dsa-course-go/log"
)

// ErrCorrupted is wrapped by the errors returned from [LinkedQueue.Verify].
var ErrCorrupted = errors.New("queue invariant violated")

type (
	// LinkedQueue is a first-in first-out sequence of integers. Values are
	// enqueued at the end and dequeued from the start. The zero value is an
	// empty queue ready to use. It is not safe for concurrent use.
	LinkedQueue struct {
		start *Node // Oldest node, next to be dequeued
		end   *Node // Newest node

		cfg config.ContainerConfig
	}

	// Node is an element of a [LinkedQueue].
	Node struct {
		next  *Node
		Value int
	}
)

// New creates an empty queue. The configuration is read from the environment,
// see [config.NewContainerConfig].
func New() *LinkedQueue {
	return newQueue(config.NewContainerConfig())
}

// newQueue allows creating a queue with an explicit configuration, which is
// useful for testing.
func newQueue(cfg config.ContainerConfig) *LinkedQueue {
	return &LinkedQueue{cfg: cfg}
}

// Enqueue adds a new node holding value at the end of the queue.
func (q *LinkedQueue) Enqueue(value int) {
	node := &Node{Value: value}
	if q.start == nil {
		q.start = node
		q.end = node
	} else {
		q.end.next = node
		q.end = node
	}
	q.mutated("Enqueue")
}

// Dequeue unlinks the node at the start of the queue and returns it with its
// link cleared. It returns nil if the queue is empty.
func (q *LinkedQueue) Dequeue() *Node {
	if q.start == nil {
		if q.cfg.TraceOperations {
			log.Trace("queue: Dequeue on an empty queue")
		}
		return nil
	}

	node := q.start
	q.start = node.next
	if q.start == nil {
		// Last node out, the end must not keep pointing at it.
		q.end = nil
	}
	node.next = nil
	q.mutated("Dequeue")
	return node
}

// Peek returns the node at the start of the queue without removing it, or nil
// if the queue is empty.
func (q *LinkedQueue) Peek() *Node {
	return q.start
}

// IsEmpty reports whether the queue holds no node.
func (q *LinkedQueue) IsEmpty() bool {
	return q.start == nil
}

// Values returns a copy of the queued values, oldest first. It is never nil.
func (q *LinkedQueue) Values() []int {
	values := make([]int, 0)
	for node := q.start; node != nil; node = node.next {
		values = append(values, node.Value)
	}
	return values
}

// Verify checks the structural invariants of the queue and returns an error
// wrapping [ErrCorrupted] describing the first violation found.
func (q *LinkedQueue) Verify() error {
	if (q.start == nil) != (q.end == nil) {
		return fmt.Errorf("%w: exactly one of start and end is set", ErrCorrupted)
	}
	if q.end == nil {
		return nil
	}
	if q.end.next != nil {
		return fmt.Errorf("%w: end has a next node", ErrCorrupted)
	}

	// Floyd's cycle detection, so a corrupted chain cannot loop forever.
	slow, fast := q.start, q.start
	for fast != nil && fast.next != nil {
		slow, fast = slow.next, fast.next.next
		if slow == fast {
			return fmt.Errorf("%w: the chain from start loops", ErrCorrupted)
		}
	}

	for node := q.start; node != nil; node = node.next {
		if node == q.end {
			return nil
		}
	}
	return fmt.Errorf("%w: end is not reachable from start", ErrCorrupted)
}

// mutated runs the configured post-mutation hooks.
func (q *LinkedQueue) mutated(op string) {
	if q.cfg.TraceOperations {
		log.Trace("queue: %s done", op)
	}
	if !q.cfg.CheckInvariants {
		return
	}
	if err := q.Verify(); err != nil {
		panic(log.Criticalf("queue: %s left the queue inconsistent: %w", op, err))
	}
}

// Next returns the node queued right after n, or nil if n is the end.
func (n *Node) Next() *Node {
	return n.next
}
