// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package linkedlist

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfBounds is matched by every [*IndexError].
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrCorrupted is wrapped by the errors returned from
	// [DoublyLinkedList.Verify].
	ErrCorrupted = errors.New("list invariant violated")
)

// IndexError reports an index outside of 1..Length.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("linkedlist: index %d is out of bounds, the list has %d elements", e.Index, e.Length)
}

// Unwrap makes errors.Is(err, ErrIndexOutOfBounds) hold.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}

func corrupted(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorrupted, fmt.Sprintf(format, args...))
}
