// SPDX-License-Identifier: MIT

package testutil

import (
	"iter"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/albertocavalcante/orderedmap"
)

func TestParseCase(t *testing.T) {
	tests := []struct {
		name    string
		archive string
		wantErr string
	}{
		{
			name:    "valid",
			archive: "desc\n-- script --\nset a 1\n-- want --\n> set a 1\n",
		},
		{
			name:    "missing script",
			archive: "-- want --\nx\n",
			wantErr: "missing script",
		},
		{
			name:    "missing want",
			archive: "-- script --\nlen\n",
			wantErr: "missing want",
		},
		{
			name:    "unexpected file",
			archive: "-- script --\nlen\n-- want --\n0\n-- extra --\n",
			wantErr: "unexpected file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCase(tt.name, txtar.Parse([]byte(tt.archive)))
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "desc\n", c.Description)
			assert.Equal(t, "set a 1\n", string(c.Script))
			assert.Equal(t, "> set a 1\n", string(c.Want))
		})
	}
}

func TestReplay(t *testing.T) {
	script := `
# comments and blank lines are skipped
set a 1
set b 2
get b
insert 9 x 0
dump
`
	want := `> set a 1
> set b 2
> get b
2
> insert 9 x 0
error: orderedmap: InsertAt: index 9 out of range [0,2]
> dump
0 a=1
1 b=2
`
	got, err := Replay([]byte(script))
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}

func TestReplay_BadScripts(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		wantErr string
	}{
		{name: "unknown command", script: "frobnicate", wantErr: `line 1: unknown command "frobnicate"`},
		{name: "missing argument", script: "set a", wantErr: "line 1: set: got 1 arguments, want 2"},
		{name: "bad index", script: "len\nremove-at one", wantErr: `line 2: bad index "one"`},
		{name: "bad pair", script: "merge a", wantErr: `bad pair "a"`},
		{name: "unknown snapshot", script: "dump nope", wantErr: `unknown snapshot "nope"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Replay([]byte(tt.script))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestWriteGolden(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.txtar")
	require.NoError(t, os.WriteFile(path, []byte("desc\n-- script --\nlen\n-- want --\nstale\n"), 0o644))

	ar, err := txtar.ParseFile(path)
	require.NoError(t, err)
	c, err := ParseCase("case", ar)
	require.NoError(t, err)
	lc := &LoadedCase{Case: c, Path: path, Archive: ar}

	require.NoError(t, lc.WriteGolden([]byte("> len\n0")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "desc\n-- script --\nlen\n-- want --\n> len\n0\n", string(data))
	assert.Equal(t, "> len\n0\n", string(lc.Want))
}

func TestLoadTestCases(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b", "a"} {
		body := "-- script --\nlen\n-- want --\n> len\n0\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".txtar"), []byte(body), 0o644))
	}

	cases := LoadTestCases(t, dir)
	require.Len(t, cases, 2)
	assert.Equal(t, "a", cases[0].Name)
	assert.Equal(t, "b", cases[1].Name)
	assert.Equal(t, filepath.Join(dir, "a.txtar"), cases[0].Path)

	cases[0].Run(t, Replay)
}

func TestNormalizeContent(t *testing.T) {
	assert.Equal(t, "a\nb", normalizeContent([]byte("a  \r\nb\t\n\n\n")))
}

func TestCheckInvariants(t *testing.T) {
	m := orderedmap.Of(
		orderedmap.Entry[string, int]{Key: "a", Value: 1},
		orderedmap.Entry[string, int]{Key: "b", Value: 2},
	)
	assert.NoError(t, CheckInvariants[string, int](m))
	assert.NoError(t, CheckInvariants[string, int](m.Mutable()))

	err := CheckInvariants[string, int](brokenReader{m})
	assert.ErrorContains(t, err, "key a appears at 0 and 1")
}

// brokenReader reports a key twice.
type brokenReader struct {
	*orderedmap.Map[string, int]
}

func (b brokenReader) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = yield("a") && yield("a")
	}
}
