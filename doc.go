// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package orderedmap provides maps that remember the order of their keys.
//
// A [Map] is an immutable dictionary whose keys keep the order in which they
// were inserted. Entries can be looked up by key in constant expected time or
// by their zero-based position, and iterated forward, backward or together
// with their positions.
//
// A [MutableMap] adds structural edits on top of the same contract:
//
//	m := orderedmap.NewMutable[string, int](0)
//	m.Set("a", 1)
//	m.Set("b", 2)
//	m.Set("a", 99)          // updates in place, "a" stays at index 0
//	_ = m.InsertAt(1, "x", 7) // order is now a, x, b
//
//	for k, v := range m.All() {
//		fmt.Println(k, v)
//	}
//
// Setting an existing key replaces its value without moving it; setting a
// new key appends it. [MutableMap.InsertAt] refuses keys that are already
// present with [ErrDuplicateKey], and every positional operation rejects bad
// indices with an [*IndexError] that wraps [ErrIndexOutOfRange]. A failed
// call never modifies the map.
//
// Equality is order sensitive: see [Equal] and [EqualFunc].
//
// [MutableMap.Snapshot] and [Map.Mutable] share storage and copy it lazily
// on the first mutation, so converting back and forth is cheap and no edit is
// ever visible through another instance.
//
// None of the types are safe for concurrent mutation. A [Map] is never
// modified after construction and may be read from multiple goroutines.
package orderedmap
