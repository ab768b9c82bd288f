// SPDX-License-Identifier: MIT

package testutil

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/albertocavalcante/orderedmap"
)

// Replay runs script against a fresh MutableMap[string, string] and returns
// the transcript. Every line of the script is echoed with a "> " prefix and
// followed by its output. Blank lines and lines starting with "#" are
// skipped.
//
// Commands:
//
//	set K V            set-at I V         insert I K V
//	remove-at I        delete K...        move FROM TO
//	clear              merge K=V...       replace K=V...
//	get K              key-at I           value-at I
//	index-of K         len                dump [NAME]
//	reverse            snapshot NAME      restore NAME
//
// Failed operations print "error: " and the message. The invariants are
// checked after every command; a violation aborts the replay.
func Replay(script []byte) ([]byte, error) {
	r := &replayer{
		m:         orderedmap.NewMutable[string, string](0),
		snapshots: make(map[string]*orderedmap.Map[string, string]),
	}

	sc := bufio.NewScanner(bytes.NewReader(script))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fmt.Fprintf(&r.out, "> %s\n", line)
		if err := r.exec(strings.Fields(line)); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := CheckInvariants[string, string](r.m); err != nil {
			return nil, fmt.Errorf("line %d: after %q: %w", lineNo, line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return r.out.Bytes(), nil
}

type replayer struct {
	m         *orderedmap.MutableMap[string, string]
	snapshots map[string]*orderedmap.Map[string, string]
	out       bytes.Buffer
}

func (r *replayer) exec(f []string) error {
	cmd, args := f[0], f[1:]
	switch cmd {
	case "set":
		if err := wantArgs(cmd, args, 2); err != nil {
			return err
		}
		r.m.Set(args[0], args[1])
	case "set-at":
		if err := wantArgs(cmd, args, 2); err != nil {
			return err
		}
		i, err := atoi(args[0])
		if err != nil {
			return err
		}
		r.report(r.m.SetAt(i, args[1]))
	case "insert":
		if err := wantArgs(cmd, args, 3); err != nil {
			return err
		}
		i, err := atoi(args[0])
		if err != nil {
			return err
		}
		r.report(r.m.InsertAt(i, args[1], args[2]))
	case "remove-at":
		if err := wantArgs(cmd, args, 1); err != nil {
			return err
		}
		i, err := atoi(args[0])
		if err != nil {
			return err
		}
		e, err := r.m.RemoveAt(i)
		if err != nil {
			r.report(err)
			break
		}
		fmt.Fprintf(&r.out, "removed %s=%s\n", e.Key, e.Value)
	case "delete":
		fmt.Fprintf(&r.out, "deleted %d\n", r.m.DeleteAll(args...))
	case "move":
		if err := wantArgs(cmd, args, 2); err != nil {
			return err
		}
		from, err := atoi(args[0])
		if err != nil {
			return err
		}
		to, err := atoi(args[1])
		if err != nil {
			return err
		}
		r.report(r.m.Move(from, to))
	case "clear":
		r.m.Clear()
	case "merge", "replace":
		other, err := parsePairs(args)
		if err != nil {
			return err
		}
		if cmd == "merge" {
			r.m.Merge(other)
		} else {
			r.m.Replace(other)
		}
	case "get":
		if err := wantArgs(cmd, args, 1); err != nil {
			return err
		}
		if v, ok := r.m.Get(args[0]); ok {
			fmt.Fprintln(&r.out, v)
		} else {
			fmt.Fprintln(&r.out, "absent")
		}
	case "key-at", "value-at":
		if err := wantArgs(cmd, args, 1); err != nil {
			return err
		}
		i, err := atoi(args[0])
		if err != nil {
			return err
		}
		var s string
		if cmd == "key-at" {
			s, err = r.m.KeyAt(i)
		} else {
			s, err = r.m.ValueAt(i)
		}
		if err != nil {
			r.report(err)
			break
		}
		fmt.Fprintln(&r.out, s)
	case "index-of":
		if err := wantArgs(cmd, args, 1); err != nil {
			return err
		}
		fmt.Fprintln(&r.out, r.m.IndexOf(args[0]))
	case "len":
		fmt.Fprintln(&r.out, r.m.Len())
	case "dump":
		var src orderedmap.Reader[string, string] = r.m
		if len(args) == 1 {
			snap, ok := r.snapshots[args[0]]
			if !ok {
				return fmt.Errorf("unknown snapshot %q", args[0])
			}
			src = snap
		}
		for i, e := range src.Indexed() {
			fmt.Fprintf(&r.out, "%d %s=%s\n", i, e.Key, e.Value)
		}
	case "reverse":
		for k, v := range r.m.Backward() {
			fmt.Fprintf(&r.out, "%s=%s\n", k, v)
		}
	case "snapshot":
		if err := wantArgs(cmd, args, 1); err != nil {
			return err
		}
		r.snapshots[args[0]] = r.m.Snapshot()
	case "restore":
		if err := wantArgs(cmd, args, 1); err != nil {
			return err
		}
		snap, ok := r.snapshots[args[0]]
		if !ok {
			return fmt.Errorf("unknown snapshot %q", args[0])
		}
		r.m = snap.Mutable()
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func (r *replayer) report(err error) {
	if err != nil {
		fmt.Fprintf(&r.out, "error: %v\n", err)
	}
}

func wantArgs(cmd string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s: got %d arguments, want %d", cmd, len(args), n)
	}
	return nil
}

func atoi(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad index %q: %w", s, err)
	}
	return i, nil
}

// parsePairs parses "k=v" arguments into a Map in argument order.
func parsePairs(args []string) (*orderedmap.Map[string, string], error) {
	entries := make([]orderedmap.Entry[string, string], 0, len(args))
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("bad pair %q (want key=value)", a)
		}
		entries = append(entries, orderedmap.Entry[string, string]{Key: k, Value: v})
	}
	return orderedmap.Of(entries...), nil
}
