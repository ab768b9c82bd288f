// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package orderedmap_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/albertocavalcante/orderedmap"
	"github.com/albertocavalcante/orderedmap/internal/testutil"
)

type entry = orderedmap.Entry[string, int]

// derivations lists every exported way of getting another map out of a
// MutableMap.
var derivations = []struct {
	name   string
	derive func(*orderedmap.MutableMap[string, int]) orderedmap.Reader[string, int]
}{
	{"Snapshot", func(mm *orderedmap.MutableMap[string, int]) orderedmap.Reader[string, int] {
		return mm.Snapshot()
	}},
	{"Clone", func(mm *orderedmap.MutableMap[string, int]) orderedmap.Reader[string, int] {
		return mm.Clone()
	}},
	{"Mutable", func(mm *orderedmap.MutableMap[string, int]) orderedmap.Reader[string, int] {
		return mm.Mutable()
	}},
	{"Snapshot.Clone", func(mm *orderedmap.MutableMap[string, int]) orderedmap.Reader[string, int] {
		return mm.Snapshot().Clone()
	}},
	{"Snapshot.Mutable", func(mm *orderedmap.MutableMap[string, int]) orderedmap.Reader[string, int] {
		return mm.Snapshot().Mutable()
	}},
	{"Clone.Snapshot", func(mm *orderedmap.MutableMap[string, int]) orderedmap.Reader[string, int] {
		return mm.Clone().Snapshot()
	}},
	{"Collect", func(mm *orderedmap.MutableMap[string, int]) orderedmap.Reader[string, int] {
		return orderedmap.Collect(mm.All())
	}},
	{"Of", func(mm *orderedmap.MutableMap[string, int]) orderedmap.Reader[string, int] {
		return orderedmap.Of(mm.Entries()...)
	}},
}

func entriesOf(r orderedmap.Reader[string, int]) []entry {
	var out []entry
	for _, e := range r.Indexed() {
		out = append(out, e)
	}
	return out
}

func TestDerivedMapsIgnoreLaterEdits(t *testing.T) {
	want := []entry{{Key: "a", Value: 1}, {Key: "b", Value: 2}}

	for _, d := range derivations {
		t.Run(d.name, func(t *testing.T) {
			mm := orderedmap.NewMutable[string, int](4)
			mm.Set("a", 1)
			mm.Set("b", 2)

			got := d.derive(mm)
			mm.Set("a", 100)
			mm.Delete("b")
			mm.Set("c", 3)

			if diff := cmp.Diff(want, entriesOf(got)); diff != "" {
				t.Errorf("derived map changed (-want +got):\n%s", diff)
			}
			if err := testutil.CheckInvariants(got); err != nil {
				t.Errorf("derived map: %v", err)
			}
			if v, ok := got.Get("a"); !ok || v != 1 {
				t.Errorf("Get(a) = %d, %v; want 1, true", v, ok)
			}
			if !got.Has("b") {
				t.Error("derived map lost b")
			}
		})
	}
}

func TestEditsOnDerivedMapsStayLocal(t *testing.T) {
	for _, d := range derivations {
		t.Run(d.name, func(t *testing.T) {
			mm := orderedmap.NewMutable[string, int](4)
			mm.Set("a", 1)
			mm.Set("b", 2)

			w, ok := d.derive(mm).(orderedmap.Writer[string, int])
			if !ok {
				t.Skip("derived map is read-only")
			}
			w.Set("a", 100)
			w.Delete("b")
			if err := w.InsertAt(0, "z", 26); err != nil {
				t.Fatalf("InsertAt() error: %v", err)
			}

			want := []entry{{Key: "a", Value: 1}, {Key: "b", Value: 2}}
			if diff := cmp.Diff(want, entriesOf(mm)); diff != "" {
				t.Errorf("source map changed (-want +got):\n%s", diff)
			}
			if err := testutil.CheckInvariants[string, int](mm); err != nil {
				t.Errorf("source map: %v", err)
			}
		})
	}
}
