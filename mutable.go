// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package orderedmap

import (
	"maps"
	"slices"
)

// Writer extends Reader with structural mutation.
type Writer[K comparable, V any] interface {
	Reader[K, V]

	// Set stores value for key. An existing key keeps its position;
	// a new key is appended.
	Set(key K, value V)

	// SetAt replaces the value at position i.
	SetAt(i int, value V) error

	// InsertAt inserts a new key at position i, shifting later entries.
	InsertAt(i int, key K, value V) error

	// RemoveAt removes the entry at position i, shifting later entries.
	RemoveAt(i int) (Entry[K, V], error)

	// Delete removes key if present.
	Delete(key K) bool

	// DeleteAll removes every listed key that is present.
	DeleteAll(keys ...K) int

	// Move relocates the entry at position from to position to.
	Move(from, to int) error

	// Clear removes all entries.
	Clear()

	// Merge sets every entry of other, in other's order.
	Merge(other Reader[K, V])

	// Replace clears the map and merges other.
	Replace(other Reader[K, V])
}

// MutableMap is an insertion-ordered map supporting edits by key and by
// position. All read operations of Map are available on it.
//
// The zero value is an empty map ready to use. A MutableMap must not be
// modified while one of its iterators is running.
type MutableMap[K comparable, V any] struct {
	mapBase[K, V]

	// shared is set while order and index are referenced by a Map or
	// another MutableMap; the next mutation copies them first.
	shared bool
}

// mapBase hides the embedded Map behind an unexported field so callers
// cannot reach the shared storage without going through Snapshot or Clone.
type mapBase[K comparable, V any] struct {
	Map[K, V]
}

var _ Writer[string, any] = (*MutableMap[string, any])(nil)

// NewMutable returns an empty MutableMap with room for capacity entries.
// capacity is only a hint.
func NewMutable[K comparable, V any](capacity int) *MutableMap[K, V] {
	capacity = max(capacity, 0)
	return &MutableMap[K, V]{mapBase: mapBase[K, V]{Map[K, V]{
		order: make([]K, 0, capacity),
		index: make(map[K]V, capacity),
	}}}
}

// newShared returns a MutableMap over storage owned by someone else.
func newShared[K comparable, V any](order []K, index map[K]V) *MutableMap[K, V] {
	return &MutableMap[K, V]{mapBase: mapBase[K, V]{Map[K, V]{order: order, index: index}}, shared: true}
}

// own makes the storage private to mm.
func (mm *MutableMap[K, V]) own() {
	if mm.shared {
		mm.order = slices.Clone(mm.order)
		mm.index = maps.Clone(mm.index)
		mm.shared = false
	}
	if mm.index == nil {
		mm.index = make(map[K]V)
	}
}

// Snapshot returns an immutable Map with the current contents.
// Storage is shared until mm is next modified.
func (mm *MutableMap[K, V]) Snapshot() *Map[K, V] {
	mm.shared = true
	return &Map[K, V]{order: mm.order, index: mm.index}
}

// Clone returns an independent MutableMap with the same contents.
func (mm *MutableMap[K, V]) Clone() *MutableMap[K, V] {
	mm.shared = true
	return newShared(mm.order, mm.index)
}

// Mutable is equivalent to Clone.
func (mm *MutableMap[K, V]) Mutable() *MutableMap[K, V] {
	return mm.Clone()
}

// Grow ensures room for n more entries without reallocating.
func (mm *MutableMap[K, V]) Grow(n int) {
	if n <= 0 {
		return
	}
	mm.own()
	mm.order = slices.Grow(mm.order, n)
	if len(mm.index) == 0 {
		mm.index = make(map[K]V, n)
	}
}

// Set stores value for key. If key is present its value is replaced and its
// position is unchanged; otherwise key is appended at the end.
func (mm *MutableMap[K, V]) Set(key K, value V) {
	mm.own()
	if _, ok := mm.index[key]; !ok {
		mm.order = append(mm.order, key)
	}
	mm.index[key] = value
}

// SetAt replaces the value at position i, keeping its key.
func (mm *MutableMap[K, V]) SetAt(i int, value V) error {
	if err := checkIndex("SetAt", i, len(mm.order)); err != nil {
		return err
	}
	mm.own()
	mm.index[mm.order[i]] = value
	return nil
}

// InsertAt inserts key at position i, shifting the entries at i and after
// one position later. i may equal Len to append. Inserting a key that is
// already present fails with ErrDuplicateKey; use Set to update it, or
// Delete it first to reposition it.
func (mm *MutableMap[K, V]) InsertAt(i int, key K, value V) error {
	if err := checkInsertIndex("InsertAt", i, len(mm.order)); err != nil {
		return err
	}
	if mm.Has(key) {
		return duplicateKeyError(key)
	}
	mm.own()
	mm.order = slices.Insert(mm.order, i, key)
	mm.index[key] = value
	return nil
}

// RemoveAt removes and returns the entry at position i. Later entries shift
// one position earlier.
func (mm *MutableMap[K, V]) RemoveAt(i int) (Entry[K, V], error) {
	if err := checkIndex("RemoveAt", i, len(mm.order)); err != nil {
		return Entry[K, V]{}, err
	}
	mm.own()
	return mm.removeAt(i), nil
}

func (mm *MutableMap[K, V]) removeAt(i int) Entry[K, V] {
	k := mm.order[i]
	e := Entry[K, V]{Key: k, Value: mm.index[k]}
	mm.order = slices.Delete(mm.order, i, i+1)
	delete(mm.index, k)
	return e
}

// Delete removes key and reports whether it was present.
func (mm *MutableMap[K, V]) Delete(key K) bool {
	i := mm.IndexOf(key)
	if i < 0 {
		return false
	}
	mm.own()
	mm.removeAt(i)
	return true
}

// DeleteAll removes each listed key that is present and returns how many
// entries were removed. Absent keys are skipped.
func (mm *MutableMap[K, V]) DeleteAll(keys ...K) int {
	n := 0
	for _, k := range keys {
		if mm.Delete(k) {
			n++
		}
	}
	return n
}

// Move relocates the entry at position from so that it ends at position to.
// Entries in between shift by one to fill the gap.
func (mm *MutableMap[K, V]) Move(from, to int) error {
	if err := checkIndex("Move", from, len(mm.order)); err != nil {
		return err
	}
	if err := checkIndex("Move", to, len(mm.order)); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	mm.own()
	k := mm.order[from]
	if from < to {
		copy(mm.order[from:to], mm.order[from+1:to+1])
	} else {
		copy(mm.order[to+1:from+1], mm.order[to:from])
	}
	mm.order[to] = k
	return nil
}

// Clear removes all entries. Later appends start again at index 0.
func (mm *MutableMap[K, V]) Clear() {
	if mm.shared {
		mm.order = nil
		mm.index = nil
		mm.shared = false
		return
	}
	clear(mm.order)
	mm.order = mm.order[:0]
	clear(mm.index)
}

// Merge sets each entry of other in other's order. Keys already in mm keep
// their position and take other's value; new keys are appended.
func (mm *MutableMap[K, V]) Merge(other Reader[K, V]) {
	for k, v := range other.All() {
		mm.Set(k, v)
	}
}

// Replace makes mm's contents and order equal to other's.
func (mm *MutableMap[K, V]) Replace(other Reader[K, V]) {
	var entries []Entry[K, V]
	for k, v := range other.All() {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	mm.Clear()
	mm.Grow(len(entries))
	for _, e := range entries {
		mm.Set(e.Key, e.Value)
	}
}
