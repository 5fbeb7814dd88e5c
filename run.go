// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conio

// unknownProgram panics with a descriptive message for foreign nodes.
// The Program interface is sealed, so this is unreachable unless node
// dispatch and the variant set fall out of sync.
// Extracted as a noinline function so that evaluation loops stay lean.
//
//go:noinline
func unknownProgram(where string) {
	panic("conio: unknown program node in " + where)
}

// Terminal is the capability the interpreter needs: synchronous,
// line-oriented text I/O. ReadLine blocks until a full line is available
// and returns it without the trailing newline; WriteLine emits one line.
type Terminal interface {
	ReadLine() (string, error)
	WriteLine(line string) error
}

// Run interprets a program against term, performing its reads and writes
// in program order, exactly once per node, and returns the final result.
//
// Run is an iterative loop, not a structural recursion: each round
// reassigns the current node, so stack usage is constant regardless of
// program length.
//
// Failure is not caught here. An I/O error aborts interpretation and is
// returned unchanged, and a panic raised while forcing a [Done] payload
// propagates to the caller. The algebra offers no retry or recovery.
func Run[A any](term Terminal, p Program[A]) (A, error) {
	for {
		switch n := p.(type) {
		case ReadBind[A]:
			line, err := term.ReadLine()
			if err != nil {
				var zero A
				return zero, err
			}
			p = n.K(line)
		case WriteThen[A]:
			if err := term.WriteLine(n.Line); err != nil {
				var zero A
				return zero, err
			}
			p = n.Next
		case Done[A]:
			return n.Compute(), nil
		default:
			unknownProgram("Run")
		}
	}
}
