// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conio

// Program is the interface for console program nodes.
// A Program[A] is an immutable, inert description of a console interaction
// that produces a value of type A when interpreted. Constructing a Program
// never performs I/O; the only places I/O occurs are [Run] and the drivers
// built on [Step].
//
// Dispatch uses type switches, not tags; Program is a sealed marker
// interface. The marker method mentions A so that instantiations with
// different result types remain distinct interface types.
type Program[A any] interface {
	program() A // phantom type marker
}

// ReadBind requests one line of input and binds its text into K.
// The continuation decides the rest of the program from the line read.
type ReadBind[A any] struct {
	// K is applied to the line read, without its trailing newline.
	K func(string) Program[A]
}

func (ReadBind[A]) program() A { panic("phantom") }

// WriteThen requests that Line be emitted, then continues with Next.
type WriteThen[A any] struct {
	// Line is the text to emit, without a trailing newline.
	Line string

	// Next is the remaining program after the write.
	Next Program[A]
}

func (WriteThen[A]) program() A { panic("phantom") }

// Done carries a deferred terminal value.
// Compute is an explicit zero-argument producer, forced by the interpreter
// (or by [Bind] when sequencing past it), never at construction time.
type Done[A any] struct {
	// Compute produces the result. It runs once per interpretation.
	Compute func() A
}

func (Done[A]) program() A { panic("phantom") }

// Return lifts an already-computed value into a program.
func Return[A any](a A) Program[A] {
	return Done[A]{Compute: func() A { return a }}
}

// Suspend wraps a deferred computation as a program.
// This is the primitive constructor for results that must not be computed
// at construction time; compute runs when the surrounding program reaches
// it during interpretation.
func Suspend[A any](compute func() A) Program[A] {
	return Done[A]{Compute: compute}
}

// ReadLine is a program that reads one line of input and produces it.
func ReadLine() Program[string] {
	return ReadBind[string]{K: Return[string]}
}

// WriteLine is a program that emits line and produces unit.
func WriteLine(line string) Program[struct{}] {
	return WriteThen[struct{}]{Line: line, Next: Return(struct{}{})}
}
