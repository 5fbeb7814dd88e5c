// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conio

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// ErrInputExhausted reports a read past the end of a [Script]'s input.
var ErrInputExhausted = errors.New("conio: input exhausted")

// lineTerminal adapts a reader/writer pair to the Terminal capability.
type lineTerminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal returns a Terminal reading lines from r and writing lines
// to w. Reads strip the trailing newline and a preceding carriage return;
// writes append a newline. A final unterminated line before EOF is
// delivered as a line; the EOF surfaces on the read after it.
func NewTerminal(r io.Reader, w io.Writer) Terminal {
	return &lineTerminal{in: bufio.NewReader(r), out: w}
}

// Stdio returns a Terminal over the process's standard input and output.
// This is the conventional environment at the program entry boundary.
func Stdio() Terminal {
	return NewTerminal(os.Stdin, os.Stdout)
}

func (t *lineTerminal) ReadLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

func (t *lineTerminal) WriteLine(line string) error {
	_, err := io.WriteString(t.out, line+"\n")
	return err
}

// trimEOL removes one trailing "\n" or "\r\n".
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// Script is an in-memory Terminal with scripted input and captured output.
// It makes interpretation deterministic: reads serve the scripted lines in
// order, writes are recorded. The package tests interpret against Script;
// it is exported for callers that need the same determinism, and
// transcripts can be replayed through one.
type Script struct {
	inputs []string
	next   int

	// Outputs holds every line written, in write order.
	Outputs []string
}

// NewScript returns a Script that serves the given input lines in order.
func NewScript(inputs ...string) *Script {
	return &Script{inputs: inputs}
}

// ReadLine serves the next scripted input line.
// Reading past the script fails with [ErrInputExhausted].
func (s *Script) ReadLine() (string, error) {
	if s.next >= len(s.inputs) {
		return "", ErrInputExhausted
	}
	line := s.inputs[s.next]
	s.next++
	return line, nil
}

// WriteLine records line.
func (s *Script) WriteLine(line string) error {
	s.Outputs = append(s.Outputs, line)
	return nil
}

// Remaining reports how many scripted input lines are left unread.
func (s *Script) Remaining() int {
	return len(s.inputs) - s.next
}
