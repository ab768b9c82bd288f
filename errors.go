// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package orderedmap

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned by positional operations given an
	// index outside the valid range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDuplicateKey is returned by InsertAt when the key is already present.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrKeyMismatch is returned by FromMapKeys when the explicit key order
	// does not list every key of the source map exactly once.
	ErrKeyMismatch = errors.New("key order does not match map keys")
)

// IndexError describes a rejected positional access.
type IndexError struct {
	// Op is the operation that failed (e.g., "KeyAt", "InsertAt").
	Op string

	// Index is the index the caller passed.
	Index int

	// Len is the map length at the time of the call.
	Len int

	// Inclusive reports whether Len itself was a valid index (inserts).
	Inclusive bool
}

func (e *IndexError) Error() string {
	closing := ")"
	if e.Inclusive {
		closing = "]"
	}
	return fmt.Sprintf("orderedmap: %s: index %d out of range [0,%d%s", e.Op, e.Index, e.Len, closing)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// checkIndex validates 0 <= i < n.
func checkIndex(op string, i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{Op: op, Index: i, Len: n}
	}
	return nil
}

// checkInsertIndex validates 0 <= i <= n.
func checkInsertIndex(op string, i, n int) error {
	if i < 0 || i > n {
		return &IndexError{Op: op, Index: i, Len: n, Inclusive: true}
	}
	return nil
}

func duplicateKeyError[K comparable](key K) error {
	return fmt.Errorf("orderedmap: InsertAt: %w: %v", ErrDuplicateKey, key)
}
