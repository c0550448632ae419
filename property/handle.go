// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package property

import "sync"

// Handle is a thread-safe single-slot holder for one value.
// It is the storage behind a [Property]; swapping the handle of a
// property with [Property.SetHandle] replaces its storage wholesale.
type Handle[T any] struct {
	mu    sync.RWMutex
	value T
}

// NewHandle returns a new handle holding the given value.
func NewHandle[T any](value T) *Handle[T] {
	return &Handle[T]{value: value}
}

// Get returns the value in the handle.
func (h *Handle[T]) Get() T {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.value
}

// Set replaces the value in the handle.
func (h *Handle[T]) Set(value T) {
	h.mu.Lock()
	h.value = value
	h.mu.Unlock()
}
