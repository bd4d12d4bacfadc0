// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package queue

import (
	"sync"

	"github.com/DataDog/dsa-course-go/internal/config"
	"go.uber.org/atomic"
)

// Synchronized is a [LinkedQueue] guarded by a mutex. Only values cross the
// lock boundary, nodes never escape. The length is tracked atomically so that
// [Synchronized.Len] does not contend with writers.
type Synchronized struct {
	mu    sync.Mutex
	queue LinkedQueue
	count atomic.Int64
}

// NewSynchronized creates an empty [Synchronized] queue.
func NewSynchronized() *Synchronized {
	return newSynchronized(config.NewContainerConfig())
}

func newSynchronized(cfg config.ContainerConfig) *Synchronized {
	return &Synchronized{queue: LinkedQueue{cfg: cfg}}
}

// Enqueue adds value at the end of the queue.
func (s *Synchronized) Enqueue(value int) {
	s.mu.Lock()
	s.queue.Enqueue(value)
	s.count.Inc()
	s.mu.Unlock()
}

// Dequeue removes and returns the oldest value. The boolean is false if the
// queue was empty.
func (s *Synchronized) Dequeue() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	node := s.queue.Dequeue()
	if node == nil {
		return 0, false
	}
	s.count.Dec()
	return node.Value, true
}

// Peek returns the oldest value without removing it. The boolean is false if
// the queue is empty.
func (s *Synchronized) Peek() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	node := s.queue.Peek()
	if node == nil {
		return 0, false
	}
	return node.Value, true
}

// Len returns the number of queued values.
func (s *Synchronized) Len() int {
	return int(s.count.Load())
}
