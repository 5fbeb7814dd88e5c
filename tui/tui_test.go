// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tui_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/conio"
	"code.hybscloud.com/conio/tui"
	tea "github.com/charmbracelet/bubbletea"
)

func greeting() conio.Program[string] {
	return conio.Then(
		conio.WriteLine("What is your name?"),
		conio.Bind(conio.ReadLine(), func(name string) conio.Program[string] {
			return conio.Then(conio.WriteLine("Hello, "+name+"!"), conio.Return(name))
		}),
	)
}

// update applies one message and converts the result back to the typed
// model.
func update[A any](t *testing.T, m tui.Model[A], msg tea.Msg) (tui.Model[A], tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(tui.Model[A])
	if !ok {
		t.Fatalf("Update returned %T, want tui.Model", next)
	}
	return model, cmd
}

// answer types a line into the input and presses enter.
func answer[A any](t *testing.T, m tui.Model[A], line string) (tui.Model[A], tea.Cmd) {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	return update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewDrainsLeadingWrites(t *testing.T) {
	m := tui.New(greeting())
	if _, ok := m.Final(); ok {
		t.Fatal("model reports completion while a read is pending")
	}
	if view := m.View(); !strings.Contains(view, "What is your name?") {
		t.Fatalf("view does not show the leading write:\n%s", view)
	}
}

func TestEnterCompletesProgram(t *testing.T) {
	m := tui.New(greeting())
	m, cmd := answer(t, m, "Ada")

	got, ok := m.Final()
	if !ok {
		t.Fatal("model did not complete after the final answer")
	}
	if got != "Ada" {
		t.Fatalf("got %q, want %q", got, "Ada")
	}
	if !isQuit(cmd) {
		t.Fatal("completion did not quit the session")
	}
}

func TestEnterEchoesAnswer(t *testing.T) {
	m := tui.New(greeting())
	m, _ = answer(t, m, "Ada")

	view := m.View()
	if !strings.Contains(view, "> Ada") {
		t.Fatalf("view does not echo the answer:\n%s", view)
	}
	if !strings.Contains(view, "Hello, Ada!") {
		t.Fatalf("view does not show the follow-up write:\n%s", view)
	}
}

func TestEscAbortsSession(t *testing.T) {
	m := tui.New(greeting())
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if _, ok := m.Final(); ok {
		t.Fatal("aborted session reports completion")
	}
	if !isQuit(cmd) {
		t.Fatal("abort did not quit the session")
	}
	if view := m.View(); !strings.Contains(view, "session abandoned") {
		t.Fatalf("view does not show the abort notice:\n%s", view)
	}
}

func TestWindowSizeResizesInput(t *testing.T) {
	m := tui.New(greeting())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, cmd := answer(t, m, "Ada")
	if !isQuit(cmd) {
		t.Fatal("resized model no longer completes")
	}
	if got, _ := m.Final(); got != "Ada" {
		t.Fatalf("got %q, want %q", got, "Ada")
	}
}

func TestRunProgramCompletedWithoutInput(t *testing.T) {
	got, err := tui.RunProgram(conio.Return(42))
	if err != nil {
		t.Fatalf("RunProgram: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}
