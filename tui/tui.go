// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tui runs console programs inside an interactive terminal UI.
//
// Instead of handing a program to [conio.Run] with a line terminal, the
// model here advances it with [conio.Step]: pending writes are rendered
// into the scrollback and pending reads are answered from a text input.
// The program itself stays a plain description and never touches the
// terminal directly.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"code.hybscloud.com/conio"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true)
	echoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).MarginTop(1)
)

// ErrAborted is returned by [RunProgram] when the user quits the session
// before the program completes.
var ErrAborted = errors.New("tui: session abandoned")

// Model drives a suspended console program from terminal events.
// The zero value is not usable; construct with [New].
type Model[A any] struct {
	susp    *conio.Suspension[A]
	input   textinput.Model
	lines   []string
	result  A
	done    bool
	aborted bool
}

// New builds a model for the given program.
// Leading writes are rendered immediately, so the model starts either
// completed or waiting on the first read.
func New[A any](p conio.Program[A]) Model[A] {
	ti := textinput.New()
	ti.Placeholder = "type your answer"
	ti.Focus()

	m := Model[A]{input: ti}
	m.result, m.susp = conio.Step(p)
	m.drainWrites()
	m.done = m.susp == nil
	return m
}

// drainWrites resumes through consecutive write requests, collecting the
// emitted lines. Afterwards the suspension is nil or a pending read.
func (m *Model[A]) drainWrites() {
	for m.susp != nil {
		req, ok := m.susp.Request().(conio.WriteRequest)
		if !ok {
			return
		}
		m.lines = append(m.lines, promptStyle.Render(req.Line))
		m.result, m.susp = m.susp.Resume("")
	}
}

func (m Model[A]) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model[A]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.Width = max(20, msg.Width-4)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			if m.susp != nil {
				m.susp.Discard()
				m.susp = nil
				m.aborted = true
			}
			return m, tea.Quit
		case "enter":
			if m.susp == nil {
				return m, tea.Quit
			}
			line := m.input.Value()
			m.lines = append(m.lines, echoStyle.Render("> "+line))
			m.input.Reset()
			m.result, m.susp = m.susp.Resume(line)
			m.drainWrites()
			if m.susp == nil {
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model[A]) View() string {
	var b strings.Builder
	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	switch {
	case m.aborted:
		b.WriteString(doneStyle.Render("session abandoned"))
	case m.done:
		b.WriteString(doneStyle.Render("session complete"))
	default:
		b.WriteString(m.input.View())
	}
	b.WriteByte('\n')
	return b.String()
}

// Final returns the program's result and whether the session completed.
func (m Model[A]) Final() (A, bool) {
	return m.result, m.done
}

// RunProgram interprets a console program interactively on the current
// terminal. A program that completes without requesting input returns its
// value directly, without starting the UI. Returns [ErrAborted] if the
// user quits mid-session.
func RunProgram[A any](p conio.Program[A]) (A, error) {
	model := New(p)
	if a, ok := model.Final(); ok {
		return a, nil
	}

	out, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		var zero A
		return zero, fmt.Errorf("tui: %w", err)
	}
	if a, ok := out.(Model[A]).Final(); ok {
		return a, nil
	}
	var zero A
	return zero, ErrAborted
}
