// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap implements an ordered map that keeps the order in which
// keys were first added, while also providing fast key-based lookup.
//
// The slice holds the keys and values in order and the map holds the
// index of each key into the slice. Adding and lookup are fast; deleting
// is slower because the indexes above the deleted item are renumbered.
package ordmap

import (
	"fmt"
	"iter"
	"slices"
)

// KeyValue represents a key-value pair.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a generic ordered map. The zero value is an empty map ready to use.
type Map[K comparable, V any] struct {

	// Order is the list of keys and values in the order they were added.
	Order []KeyValue[K, V]

	// index maps each key to its position in Order.
	index map[K]int
}

// New returns a new ordered map with the given key-value pairs.
func New[K comparable, V any](kvs ...KeyValue[K, V]) *Map[K, V] {
	om := &Map[K, V]{}
	for _, kv := range kvs {
		om.Add(kv.Key, kv.Value)
	}
	return om
}

// Add sets the value for the given key. If the key already exists,
// its value is replaced in place, otherwise it is added to the end.
// It returns whether the key is new.
func (om *Map[K, V]) Add(key K, val V) bool {
	if om.index == nil {
		om.index = make(map[K]int)
	}
	if idx, has := om.index[key]; has {
		om.Order[idx].Value = val
		return false
	}
	om.index[key] = len(om.Order)
	om.Order = append(om.Order, KeyValue[K, V]{Key: key, Value: val})
	return true
}

// Value returns the value for the given key and whether it exists.
func (om *Map[K, V]) Value(key K) (V, bool) {
	if idx, ok := om.index[key]; ok {
		return om.Order[idx].Value, true
	}
	var zv V
	return zv, false
}

// IndexOf returns the index of the given key, or -1 if it does not exist.
func (om *Map[K, V]) IndexOf(key K) int {
	if idx, ok := om.index[key]; ok {
		return idx
	}
	return -1
}

// Len returns the number of items in the map.
func (om *Map[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.Order)
}

// Delete removes the item with the given key and
// returns false if the key does not exist.
func (om *Map[K, V]) Delete(key K) bool {
	idx, ok := om.index[key]
	if !ok {
		return false
	}
	for o := idx + 1; o < len(om.Order); o++ {
		om.index[om.Order[o].Key] = o - 1
	}
	delete(om.index, key)
	om.Order = slices.Delete(om.Order, idx, idx+1)
	return true
}

// Keys returns the keys in order.
func (om *Map[K, V]) Keys() []K {
	kl := make([]K, om.Len())
	for i, kv := range om.Order {
		kl[i] = kv.Key
	}
	return kl
}

// All returns a sequence over the keys and values in order.
func (om *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, kv := range om.Order {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
}

// String returns a string representation of the map.
func (om *Map[K, V]) String() string {
	return fmt.Sprintf("%v", om.Order)
}
