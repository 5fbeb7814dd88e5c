// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package conio provides an inert console-program algebra and its
// interpreter in Go.
//
// The core type [Program] describes a sequence of line reads, line writes
// and pure computations as an immutable value. Nothing happens at
// construction time; [Run] interprets a finished description against a
// [Terminal], and that interpretation is the only place I/O occurs.
// The sibling type [Thunk] wraps a single deferred computation that may
// fail when forced.
//
// # Design Philosophy
//
// conio provides:
//   - A sealed three-variant program algebra with a universal Bind
//   - An iterative interpreter with constant stack usage for programs of
//     any length
//   - Failure as values where the algebra recovers ([Option], [Either]),
//     undisturbed propagation where it does not
//
// # Program Algebra
//
// [Program] is a sealed marker interface over three node variants:
//
//   - [ReadBind]: request one line of input, bind its text into the
//     continuation
//   - [WriteThen]: request that a line be emitted, then continue
//   - [Done]: deferred terminal value (explicit zero-argument producer)
//
// Direct node construction is the fused composition path; the constructors
// cover the common shapes:
//
//   - [ReadLine]: Read one line and produce it
//   - [WriteLine]: Emit one line and produce unit
//   - [Return]: Lift an already-computed value
//   - [Suspend]: Wrap a deferred computation as a program
//
// # Combinators
//
// Minimal monad operations:
//
//   - [Bind]: Sequence a program with a continuation
//
// Derived operations:
//
//   - [Map]: Apply a function to the result; equivalent to
//     Bind(m, func(a) Suspend(func() { return f(a) }))
//   - [Then]: Sequence, discarding the first result; equivalent to
//     Bind(m, func(_) n)
//   - [Zip]: Pair two results, first program's effects strictly first
//   - [ZipLeft]: Sequence, keeping the first result
//
// List combinators:
//
//   - [CollectAll]: Combine the given programs, preserving order
//   - [ForEach]: Apply a program-producing body across a slice, in order
//
// Prompt conveniences:
//
//   - [Prompt]: Write a question, read the reply
//   - [ReadInt]: Read a line and parse it; a non-number is [None], never
//     a raised failure
//   - [PromptInt]: Write a question, read and parse the reply
//
// # Interpretation
//
// [Run] walks a program iteratively against a [Terminal], performing reads
// and writes in program order, exactly once per node. I/O errors return
// unchanged; a panic while forcing a [Done] payload propagates. Terminals:
//
//   - [Stdio]: Standard input/output
//   - [NewTerminal]: Any reader/writer pair
//   - [Script]: Scripted input and captured output for deterministic
//     interpretation
//
// # Stepping Boundary
//
// [Step] provides one-request-at-a-time evaluation for external runtimes
// that drive programs from an event loop, without goroutines:
//
//   - [Step]: Drive a program until it completes or suspends
//   - [Suspension]: Pending request with one-shot resumption handle
//   - [Suspension.Request]: Returns the pending [ReadRequest] or
//     [WriteRequest]
//   - [Suspension.Resume]: Advance to the next suspension or completion
//     (panics on reuse)
//   - [Suspension.TryResume]: Non-panicking variant of Resume
//   - [Suspension.Discard]: Drop without resuming
//
// Affine semantics: each [Suspension] may be resumed at most once.
// Driving every suspension by hand and answering reads from a script is
// equivalent to [Run] on the same script.
//
// # Deferred Computation
//
// [Thunk] wraps a computation as a value without running it:
//
//   - [Succeed]: Wrap a producer uninvoked
//   - [Fail]: A producer that always raises the given error
//   - [Thunk.Force]: Run the producer; failures propagate
//   - [MapThunk], [FlatMapThunk]: Deferred composition
//   - [Attempt]: Convert a raised failure into an [Either] value; never
//     raises
//
// # Result Types
//
// [Either] represents success (Right) or failure (Left):
//
//   - [Left], [Right]: Constructors
//   - [Either.IsLeft], [Either.IsRight]: Predicates
//   - [Either.GetLeft], [Either.GetRight]: Accessors
//   - [MatchEither]: Pattern matching
//   - [MapEither], [FlatMapEither], [MapLeftEither]: Transformations
//
// [Option] represents a present (Some) or absent (None) value, used for
// parse results:
//
//   - [Some], [None]: Constructors
//   - [Option.IsSome], [Option.IsNone], [Option.Get]: Accessors
//   - [MatchOption], [MapOption]: Transformations
//
// # Subpackages
//
// The dialog subpackage loads declarative question packs and compiles them
// into programs. The tui subpackage runs a program interactively in the
// terminal by driving the stepping boundary. The transcript subpackage
// records a session's reads and writes for inspection and replay.
//
// # Example
//
//	greet := conio.Bind(
//		conio.Prompt("What is your name?"),
//		func(name string) conio.Program[struct{}] {
//			return conio.WriteLine("Hello, " + name + "!")
//		},
//	)
//
//	_, err := conio.Run(conio.Stdio(), greet)
package conio
