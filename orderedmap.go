// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package orderedmap

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Entry is a key/value pair.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Reader is the read-only contract shared by Map and MutableMap.
type Reader[K comparable, V any] interface {
	// Get returns the value for key and whether it was present.
	Get(key K) (V, bool)

	// Has reports whether key is present.
	Has(key K) bool

	// IndexOf returns the position of key, or -1 if absent.
	IndexOf(key K) int

	// KeyAt returns the key at position i.
	KeyAt(i int) (K, error)

	// ValueAt returns the value at position i.
	ValueAt(i int) (V, error)

	// EntryAt returns the entry at position i.
	EntryAt(i int) (Entry[K, V], error)

	// Len returns the number of entries.
	Len() int

	// Keys iterates keys in order.
	Keys() iter.Seq[K]

	// Values iterates values in key order.
	Values() iter.Seq[V]

	// All iterates entries from the first position to the last.
	All() iter.Seq2[K, V]

	// Backward iterates entries from the last position to the first.
	Backward() iter.Seq2[K, V]

	// Indexed iterates positions with their entries in forward order.
	Indexed() iter.Seq2[int, Entry[K, V]]
}

// Map is an immutable insertion-ordered map.
//
// Keys must equal themselves: a float NaN key can be stored but never
// found again, and every Set of NaN appends a new entry.
//
// The zero value is an empty map ready to use.
type Map[K comparable, V any] struct {
	order []K
	index map[K]V
}

var _ Reader[string, any] = (*Map[string, any])(nil)

// New returns an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// Of builds a Map from entries in the given order.
// A repeated key keeps its first position and takes its last value.
func Of[K comparable, V any](entries ...Entry[K, V]) *Map[K, V] {
	mm := NewMutable[K, V](len(entries))
	for _, e := range entries {
		mm.Set(e.Key, e.Value)
	}
	return mm.Snapshot()
}

// Collect builds a Map from seq in iteration order.
// Repeated keys are handled as in Of.
func Collect[K comparable, V any](seq iter.Seq2[K, V]) *Map[K, V] {
	mm := NewMutable[K, V](0)
	for k, v := range seq {
		mm.Set(k, v)
	}
	return mm.Snapshot()
}

// FromMap builds a Map from an unordered Go map, ordering keys ascending.
func FromMap[K cmp.Ordered, V any](src map[K]V) *Map[K, V] {
	return fromKeys(src, slices.Sorted(maps.Keys(src)))
}

// FromMapFunc builds a Map from an unordered Go map, ordering keys with
// compare. compare must be a strict total order over the keys of src for
// the result to be reproducible.
func FromMapFunc[K comparable, V any](src map[K]V, compare func(a, b K) int) *Map[K, V] {
	return fromKeys(src, slices.SortedFunc(maps.Keys(src), compare))
}

// FromMapKeys builds a Map from an unordered Go map using an explicit key
// order. keys must list every key of src exactly once.
func FromMapKeys[K comparable, V any](src map[K]V, keys []K) (*Map[K, V], error) {
	if len(keys) != len(src) {
		return nil, fmt.Errorf("orderedmap: FromMapKeys: %w: got %d keys for %d entries", ErrKeyMismatch, len(keys), len(src))
	}
	seen := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := src[k]; !ok {
			return nil, fmt.Errorf("orderedmap: FromMapKeys: %w: unknown key %v", ErrKeyMismatch, k)
		}
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("orderedmap: FromMapKeys: %w: repeated key %v", ErrKeyMismatch, k)
		}
		seen[k] = struct{}{}
	}
	return fromKeys(src, slices.Clone(keys)), nil
}

// fromKeys takes ownership of keys, which must be the key set of src.
func fromKeys[K comparable, V any](src map[K]V, keys []K) *Map[K, V] {
	return &Map[K, V]{order: keys, index: maps.Clone(src)}
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.index[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.index[key]
	return ok
}

// IndexOf returns the position of key, or -1 if key is absent.
// It runs in time linear in the position.
func (m *Map[K, V]) IndexOf(key K) int {
	if !m.Has(key) {
		return -1
	}
	return slices.Index(m.order, key)
}

// KeyAt returns the key at position i.
func (m *Map[K, V]) KeyAt(i int) (K, error) {
	if err := checkIndex("KeyAt", i, len(m.order)); err != nil {
		var zero K
		return zero, err
	}
	return m.order[i], nil
}

// ValueAt returns the value at position i.
func (m *Map[K, V]) ValueAt(i int) (V, error) {
	if err := checkIndex("ValueAt", i, len(m.order)); err != nil {
		var zero V
		return zero, err
	}
	return m.index[m.order[i]], nil
}

// EntryAt returns the entry at position i.
func (m *Map[K, V]) EntryAt(i int) (Entry[K, V], error) {
	if err := checkIndex("EntryAt", i, len(m.order)); err != nil {
		return Entry[K, V]{}, err
	}
	k := m.order[i]
	return Entry[K, V]{Key: k, Value: m.index[k]}, nil
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.order)
}

// Keys returns an iterator over the keys in order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range m.order {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, k := range m.order {
			if !yield(m.index[k]) {
				return
			}
		}
	}
}

// All returns an iterator over the entries in order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.order {
			if !yield(k, m.index[k]) {
				return
			}
		}
	}
}

// Backward returns an iterator over the entries from the last position to
// the first.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range slices.Backward(m.order) {
			if !yield(k, m.index[k]) {
				return
			}
		}
	}
}

// ReverseKeys returns an iterator over the keys from last to first.
func (m *Map[K, V]) ReverseKeys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range slices.Backward(m.order) {
			if !yield(k) {
				return
			}
		}
	}
}

// ReverseValues returns an iterator over the values from last to first.
func (m *Map[K, V]) ReverseValues() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, k := range slices.Backward(m.order) {
			if !yield(m.index[k]) {
				return
			}
		}
	}
}

// Indexed returns an iterator over positions and their entries in forward
// order. Breaking out of the loop stops the iteration.
func (m *Map[K, V]) Indexed() iter.Seq2[int, Entry[K, V]] {
	return func(yield func(int, Entry[K, V]) bool) {
		for i, k := range m.order {
			if !yield(i, Entry[K, V]{Key: k, Value: m.index[k]}) {
				return
			}
		}
	}
}

// Entries returns a copy of the entries in order.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(m.order))
	for k, v := range m.All() {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	return out
}

// ToMap returns an unordered copy of the contents.
func (m *Map[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(m.index))
	maps.Copy(out, m.index)
	return out
}

// Clone returns a Map with the same contents. Maps are immutable, so the
// clone shares storage with m.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{order: m.order, index: m.index}
}

// Mutable returns a MutableMap initialized with the contents of m.
// Storage is copied on the first mutation.
func (m *Map[K, V]) Mutable() *MutableMap[K, V] {
	return newShared(m.order, m.index)
}

// String formats the map like fmt does for Go maps, following key order.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("map[")
	for i, k := range m.order {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", k, m.index[k])
	}
	b.WriteByte(']')
	return b.String()
}
