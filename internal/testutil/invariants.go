// SPDX-License-Identifier: MIT

package testutil

import (
	"fmt"

	"github.com/albertocavalcante/orderedmap"
)

// CheckInvariants verifies that the key order of r has no duplicates, that
// every ordered key resolves through Get and IndexOf, and that positional,
// forward and backward access agree. If r exposes ToMap, its key set must
// match the order exactly.
func CheckInvariants[K comparable, V any](r orderedmap.Reader[K, V]) error {
	n := r.Len()
	keys := make([]K, 0, n)
	seen := make(map[K]int, n)
	for k := range r.Keys() {
		if j, dup := seen[k]; dup {
			return fmt.Errorf("key %v appears at %d and %d", k, j, len(keys))
		}
		seen[k] = len(keys)
		keys = append(keys, k)
	}
	if len(keys) != n {
		return fmt.Errorf("length is %d, but key iteration yielded %d keys", n, len(keys))
	}

	for i, k := range keys {
		if !r.Has(k) {
			return fmt.Errorf("key %v at %d has no value", k, i)
		}
		if got := r.IndexOf(k); got != i {
			return fmt.Errorf("key %v reports position %d, want %d", k, got, i)
		}
		if got, err := r.KeyAt(i); err != nil || got != k {
			return fmt.Errorf("key at %d is %v (err %v), want %v", i, got, err, k)
		}
	}

	j := n - 1
	for k := range r.Backward() {
		if j < 0 || keys[j] != k {
			return fmt.Errorf("backward iteration yielded %v at position %d", k, j)
		}
		j--
	}
	if j != -1 {
		return fmt.Errorf("backward iteration stopped early at position %d", j)
	}

	if tm, ok := r.(interface{ ToMap() map[K]V }); ok {
		if m := tm.ToMap(); len(m) != n {
			return fmt.Errorf("value map holds %d keys, order holds %d", len(m), n)
		}
	}
	return nil
}
