// SPDX-License-Identifier: MIT

// Package testutil provides testing utilities for orderedmap.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// Case represents a parsed test case from a txtar archive.
type Case struct {
	// Name is the test case name (typically the filename without extension).
	Name string

	// Description is the comment block before any files.
	Description string

	// Script is the contents of "script": one operation per line.
	Script []byte

	// Want is the contents of "want": the expected transcript.
	Want []byte
}

// ParseCase parses a txtar archive into a test Case.
// The archive should contain:
//   - A description comment (text before first file)
//   - A "script" file with the operations to replay
//   - A "want" file with the expected transcript
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
	}

	for _, f := range ar.Files {
		switch f.Name {
		case "script":
			c.Script = f.Data
		case "want":
			c.Want = f.Data
		default:
			return nil, fmt.Errorf("unexpected file in archive: %q (expected script or want)", f.Name)
		}
	}

	if c.Script == nil {
		return nil, fmt.Errorf("missing script in archive")
	}

	if c.Want == nil {
		return nil, fmt.Errorf("missing want in archive")
	}

	return c, nil
}

// ReplayFunc turns a script into a transcript.
type ReplayFunc func(script []byte) ([]byte, error)

// Run executes the test case using the provided replay function and compares
// the transcript against the expected one.
func (c *Case) Run(t *testing.T, replay ReplayFunc) {
	t.Helper()

	got, err := replay(c.Script)
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}

	if diff := cmp.Diff(normalizeContent(c.Want), normalizeContent(got)); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
}

// normalizeContent trims trailing whitespace from each line and trailing
// newlines from the whole content.
func normalizeContent(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// LoadedCase pairs a Case with the archive and path it came from.
type LoadedCase struct {
	*Case

	// Path is the archive file path.
	Path string

	// Archive is the parsed archive.
	Archive *txtar.Archive
}

// LoadTestCases loads all txtar test cases from a directory.
func LoadTestCases(t *testing.T, dir string) []*LoadedCase {
	t.Helper()

	pattern := filepath.Join(dir, "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}

	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}

	var cases []*LoadedCase
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %q: %v", file, err)
		}

		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		c, err := ParseCase(name, ar)
		if err != nil {
			t.Fatalf("parse case %q: %v", name, err)
		}

		cases = append(cases, &LoadedCase{Case: c, Path: file, Archive: ar})
	}

	slices.SortFunc(cases, func(a, b *LoadedCase) int {
		return strings.Compare(a.Name, b.Name)
	})

	return cases
}

// WriteGolden rewrites the archive on disk with got as the new "want",
// keeping the description and script. Used with the -update flag.
func (c *LoadedCase) WriteGolden(got []byte) error {
	if len(got) > 0 && got[len(got)-1] != '\n' {
		got = append(got, '\n')
	}
	ar := &txtar.Archive{
		Comment: c.Archive.Comment,
		Files: []txtar.File{
			{Name: "script", Data: c.Script},
			{Name: "want", Data: got},
		},
	}
	if err := os.WriteFile(c.Path, txtar.Format(ar), 0o644); err != nil {
		return fmt.Errorf("write golden %q: %w", c.Path, err)
	}
	c.Want = got
	return nil
}
