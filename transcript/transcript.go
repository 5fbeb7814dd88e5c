// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package transcript records console sessions for inspection and replay.
//
// A [Recorder] wraps any conio.Terminal and keeps an in-memory log of every
// line that crossed the boundary, in order, with direction and timestamp.
// The log can be rendered, saved to a file, or turned back into a script
// that feeds the same inputs to another program.
package transcript

import (
	"fmt"
	"os"
	"strings"
	"time"

	"code.hybscloud.com/conio"
	"github.com/samborkent/uuidv7"
)

// Direction tells whether an entry crossed into the program (a read) or
// out of it (a write).
type Direction int

const (
	Read Direction = iota
	Write
)

func (d Direction) String() string {
	switch d {
	case Read:
		return "read"
	case Write:
		return "write"
	default:
		return "unknown"
	}
}

// Entry is one recorded console operation.
type Entry struct {
	Seq  int
	Dir  Direction
	Line string
	At   time.Time
}

// Recorder is a conio.Terminal that records every successful operation
// while delegating to an inner terminal. Failed operations are propagated
// and not recorded.
type Recorder struct {
	inner   conio.Terminal
	id      string
	started time.Time
	entries []Entry
}

// New wraps inner with a recording layer and assigns a fresh session ID.
func New(inner conio.Terminal) *Recorder {
	return &Recorder{
		inner:   inner,
		id:      uuidv7.New().String(),
		started: time.Now(),
	}
}

// ID returns the session identifier.
func (r *Recorder) ID() string { return r.id }

// ReadLine reads from the inner terminal and records the line.
func (r *Recorder) ReadLine() (string, error) {
	line, err := r.inner.ReadLine()
	if err != nil {
		return "", err
	}
	r.record(Read, line)
	return line, nil
}

// WriteLine writes to the inner terminal and records the line.
func (r *Recorder) WriteLine(line string) error {
	if err := r.inner.WriteLine(line); err != nil {
		return err
	}
	r.record(Write, line)
	return nil
}

func (r *Recorder) record(dir Direction, line string) {
	r.entries = append(r.entries, Entry{
		Seq:  len(r.entries),
		Dir:  dir,
		Line: line,
		At:   time.Now(),
	})
}

// Entries returns a copy of everything recorded so far, in session order.
func (r *Recorder) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Tail returns up to n of the most recent entries.
func (r *Recorder) Tail(n int) []Entry {
	if n <= 0 {
		return nil
	}
	start := len(r.entries) - n
	if start < 0 {
		start = 0
	}
	out := make([]Entry, len(r.entries)-start)
	copy(out, r.entries[start:])
	return out
}

// Lines renders the transcript one operation per line: "-> " marks program
// output, "<- " marks user input.
func (r *Recorder) Lines() []string {
	lines := make([]string, len(r.entries))
	for i, e := range r.entries {
		marker := "<- "
		if e.Dir == Write {
			marker = "-> "
		}
		lines[i] = marker + e.Line
	}
	return lines
}

// Save writes the rendered transcript to path, preceded by a session
// header.
func (r *Recorder) Save(path string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "session %s\n", r.id)
	fmt.Fprintf(&b, "started %s\n\n", r.started.UTC().Format(time.RFC3339))
	for _, line := range r.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("transcript: write %s: %w", path, err)
	}
	return nil
}

// Replay rebuilds a script from the recorded reads, so a session's inputs
// can be fed to a program again.
func (r *Recorder) Replay() *conio.Script {
	var inputs []string
	for _, e := range r.entries {
		if e.Dir == Read {
			inputs = append(inputs, e.Line)
		}
	}
	return conio.NewScript(inputs...)
}
