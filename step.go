// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conio

import "sync/atomic"

// Stepping boundary for external runtimes.
// Step provides one-request-at-a-time evaluation, unlike [Run] which loops
// a synchronous trampoline to completion against a [Terminal].

// Request is the interface for pending console requests.
// Dispatch uses type switches, not tags; Request is a pure marker
// interface.
type Request interface {
	request() // unexported marker method
}

// ReadRequest reports that the program is waiting for one line of input.
// Resume the suspension with the line to supply.
type ReadRequest struct{}

func (ReadRequest) request() {}

// WriteRequest reports that the program wants Line emitted.
// Resume the suspension after emitting; the resume argument is ignored.
type WriteRequest struct {
	Line string
}

func (WriteRequest) request() {}

// Suspension represents a program suspended on a console request.
// It holds the pending request and a one-shot resumption handle.
//
// Suspension enforces affine semantics: Resume may be called at most once.
// Calling Resume twice panics. Use Discard to explicitly abandon a
// suspension.
type Suspension[A any] struct {
	used atomic.Uintptr
	req  Request
	k    func(string) Program[A] // read path: rest of the program given the input line
	next Program[A]              // write path: rest of the program
}

// Request returns the console request that caused the suspension.
func (s *Suspension[A]) Request() Request { return s.req }

// Resume advances the program with the given input line.
// For [WriteRequest] suspensions the line argument is ignored.
// Returns either a completed value (with nil suspension) or the next
// suspension. Panics if the suspension has already been resumed or
// discarded.
//
// The returned suspension reuses the receiver's memory when possible,
// avoiding one allocation per step.
func (s *Suspension[A]) Resume(line string) (A, *Suspension[A]) {
	if s.used.Add(1) != 1 {
		panic("conio: suspension resumed twice")
	}
	return s.advance(line)
}

// TryResume attempts to advance the program.
// Returns (value, suspension, true) on success, or (zero, nil, false) if
// the suspension was already resumed or discarded.
func (s *Suspension[A]) TryResume(line string) (A, *Suspension[A], bool) {
	if s.used.Add(1) != 1 {
		var zero A
		return zero, nil, false
	}
	a, susp := s.advance(line)
	return a, susp, true
}

// Discard marks the suspension as consumed without resuming.
func (s *Suspension[A]) Discard() {
	s.used.Store(1)
	s.k = nil
	s.next = nil
}

// advance resolves the pending request and classifies the rest of the
// program, reusing the spent receiver for the next suspension.
func (s *Suspension[A]) advance(line string) (A, *Suspension[A]) {
	var p Program[A]
	if s.k != nil {
		p = s.k(line)
	} else {
		p = s.next
	}
	return classify(p, s)
}

// Step drives a program until it either completes or suspends on a console
// request.
// Returns (value, nil) if the program completed, forcing the terminal
// [Done] payload, or (zero, suspension) if a read or write is pending.
//
// Example:
//
//	result, susp := Step(program)
//	for susp != nil {
//		switch req := susp.Request().(type) {
//		case conio.WriteRequest:
//			fmt.Println(req.Line)
//			result, susp = susp.Resume("")
//		case conio.ReadRequest:
//			result, susp = susp.Resume(nextAnswer())
//		}
//	}
func Step[A any](p Program[A]) (A, *Suspension[A]) {
	return classify[A](p, nil)
}

// classify examines the head of a program and either completes it or
// produces a suspension for the pending request, reviving a spent
// suspension when one is supplied.
func classify[A any](p Program[A], reuse *Suspension[A]) (A, *Suspension[A]) {
	switch n := p.(type) {
	case Done[A]:
		return n.Compute(), nil
	case ReadBind[A]:
		s := reviveSuspension(reuse)
		s.req = ReadRequest{}
		s.k = n.K
		var zero A
		return zero, s
	case WriteThen[A]:
		s := reviveSuspension(reuse)
		s.req = WriteRequest{Line: n.Line}
		s.next = n.Next
		var zero A
		return zero, s
	default:
		unknownProgram("Step")
		var zero A
		return zero, nil
	}
}

// reviveSuspension resets a spent suspension for reuse, or allocates a
// fresh one.
func reviveSuspension[A any](s *Suspension[A]) *Suspension[A] {
	if s == nil {
		return &Suspension[A]{}
	}
	s.used.Store(0)
	s.k = nil
	s.next = nil
	return s
}
