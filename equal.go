// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package orderedmap

// Equal reports whether a and b hold the same entries in the same order.
// Maps with the same entries in a different order are not equal.
func Equal[K, V comparable](a, b Reader[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is like Equal but compares values with eq. Keys are compared
// with ==.
func EqualFunc[K comparable, V1, V2 any](a Reader[K, V1], b Reader[K, V2], eq func(V1, V2) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, ea := range a.Indexed() {
		eb, err := b.EntryAt(i)
		if err != nil || ea.Key != eb.Key || !eq(ea.Value, eb.Value) {
			return false
		}
	}
	return true
}
