// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conio_test

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"strings"
	"testing"

	"code.hybscloud.com/conio"
)

// failingTerminal fails the selected operation and succeeds the other.
type failingTerminal struct {
	readErr  error
	writeErr error
}

func (ft failingTerminal) ReadLine() (string, error) {
	if ft.readErr != nil {
		return "", ft.readErr
	}
	return "line", nil
}

func (ft failingTerminal) WriteLine(string) error {
	return ft.writeErr
}

func TestRunGreeting(t *testing.T) {
	p := conio.Then(
		conio.WriteLine("What is your name?"),
		conio.Bind(conio.ReadLine(), func(name string) conio.Program[string] {
			return conio.Then(conio.WriteLine("Hello, "+name+"!"), conio.Return(name))
		}),
	)

	script := conio.NewScript("Ada")
	got, err := conio.Run(script, p)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != "Ada" {
		t.Fatalf("got %q, want %q", got, "Ada")
	}
	want := []string{"What is your name?", "Hello, Ada!"}
	if !slices.Equal(script.Outputs, want) {
		t.Fatalf("outputs = %v, want %v", script.Outputs, want)
	}
}

func TestRunReadErrorStopsInterpretation(t *testing.T) {
	readErr := errors.New("tty gone")
	written := 0
	p := conio.Then(conio.ReadLine(), conio.Suspend(func() int {
		written++
		return 1
	}))

	_, err := conio.Run(failingTerminal{readErr: readErr}, p)
	if !errors.Is(err, readErr) {
		t.Fatalf("err = %v, want %v", err, readErr)
	}
	if written != 0 {
		t.Fatal("interpretation continued past a failed read")
	}
}

func TestRunWriteErrorStopsInterpretation(t *testing.T) {
	writeErr := errors.New("pipe closed")
	p := conio.Then(conio.WriteLine("a"), conio.ReadLine())

	_, err := conio.Run(failingTerminal{writeErr: writeErr}, p)
	if !errors.Is(err, writeErr) {
		t.Fatalf("err = %v, want %v", err, writeErr)
	}
}

func TestRunScriptExhausted(t *testing.T) {
	p := conio.Bind(conio.ReadLine(), func(string) conio.Program[string] {
		return conio.ReadLine()
	})

	_, err := conio.Run(conio.NewScript("only one"), p)
	if !errors.Is(err, conio.ErrInputExhausted) {
		t.Fatalf("err = %v, want ErrInputExhausted", err)
	}
}

func TestRunPanicInPayloadPropagates(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected the payload panic to propagate")
		}
		if r != "boom" {
			t.Fatalf("recovered %v, want boom", r)
		}
	}()
	_, _ = conio.Run(conio.NewScript(), conio.Suspend(func() int { panic("boom") }))
}

func TestRunDeepWriteChain(t *testing.T) {
	// Test deep programs don't cause stack overflow
	// This verifies the interpreter is iterative, not recursive
	var p conio.Program[int] = conio.Return(0)
	for range 10000 {
		p = conio.WriteThen[int]{Line: "x", Next: p}
	}

	script := conio.NewScript()
	got, err := conio.Run(script, p)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
	if len(script.Outputs) != 10000 {
		t.Fatalf("wrote %d lines, want 10000", len(script.Outputs))
	}
}

func TestRunDeepReadChain(t *testing.T) {
	// Continuations built during interpretation must not grow the stack either.
	var chain func(remaining, acc int) conio.Program[int]
	chain = func(remaining, acc int) conio.Program[int] {
		if remaining == 0 {
			return conio.Return(acc)
		}
		return conio.Bind(conio.ReadLine(), func(s string) conio.Program[int] {
			return chain(remaining-1, acc+len(s))
		})
	}

	inputs := make([]string, 10000)
	for i := range inputs {
		inputs[i] = "ab"
	}

	got, err := conio.Run(conio.NewScript(inputs...), chain(10000, 0))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != 20000 {
		t.Fatalf("got %d, want 20000", got)
	}
}

func TestNewTerminalReadsAndWrites(t *testing.T) {
	in := strings.NewReader("Ada\nBob\r\n")
	var out bytes.Buffer
	term := conio.NewTerminal(in, &out)

	p := conio.Bind(conio.ReadLine(), func(a string) conio.Program[string] {
		return conio.Bind(conio.ReadLine(), func(b string) conio.Program[string] {
			return conio.Then(conio.WriteLine("got "+a+" and "+b), conio.Return(a+b))
		})
	})

	got, err := conio.Run(term, p)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != "AdaBob" {
		t.Fatalf("got %q, want %q", got, "AdaBob")
	}
	if out.String() != "got Ada and Bob\n" {
		t.Fatalf("wrote %q, want %q", out.String(), "got Ada and Bob\n")
	}
}

func TestNewTerminalFinalLineWithoutNewline(t *testing.T) {
	term := conio.NewTerminal(strings.NewReader("tail"), io.Discard)

	got, err := conio.Run(term, conio.ReadLine())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != "tail" {
		t.Fatalf("got %q, want %q", got, "tail")
	}

	_, err = conio.Run(term, conio.ReadLine())
	if !errors.Is(err, io.EOF) {
		t.Fatalf("err = %v, want io.EOF", err)
	}
}

func TestScriptRemaining(t *testing.T) {
	script := conio.NewScript("a", "b", "c")
	if _, err := conio.Run(script, conio.ReadLine()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := script.Remaining(); got != 2 {
		t.Fatalf("Remaining() = %d, want 2", got)
	}
}
