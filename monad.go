// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conio

// Monad operations for console programs.
//
// Minimal definition: Return (unit) and Bind are necessary and sufficient.
// Map, Then and ZipLeft are derived operations kept as direct
// implementations to avoid intermediate closure allocations.

// Bind sequences a program with a continuation (monadic bind).
// It describes running m, then passing the result to f to obtain the rest
// of the program.
//
// Bind pushes f structurally past pending reads and writes. Reaching [Done]
// forces that payload (and no other) and applies f to construct, not run,
// the remaining program. Bind itself performs no I/O.
func Bind[A, B any](m Program[A], f func(A) Program[B]) Program[B] {
	switch n := m.(type) {
	case ReadBind[A]:
		k := n.K
		return ReadBind[B]{K: func(s string) Program[B] {
			return Bind(k(s), f)
		}}
	case WriteThen[A]:
		return WriteThen[B]{Line: n.Line, Next: Bind(n.Next, f)}
	case Done[A]:
		return f(n.Compute())
	default:
		unknownProgram("Bind")
		return nil
	}
}

// Map applies a pure function to the result of a program.
//
// Allocation note: Map is equivalent to Bind(m, compose(Suspend, f)) but
// avoids the intermediate continuation closure, making it the preferred
// choice when the transformation does not read or write.
func Map[A, B any](m Program[A], f func(A) B) Program[B] {
	switch n := m.(type) {
	case ReadBind[A]:
		k := n.K
		return ReadBind[B]{K: func(s string) Program[B] {
			return Map(k(s), f)
		}}
	case WriteThen[A]:
		return WriteThen[B]{Line: n.Line, Next: Map(n.Next, f)}
	case Done[A]:
		a := n.Compute()
		return Done[B]{Compute: func() B { return f(a) }}
	default:
		unknownProgram("Map")
		return nil
	}
}

// Then sequences two programs, discarding the first result.
// This is more efficient than Bind when the second program
// does not depend on the first result.
//
// Allocation note: Then avoids the closure capture of a continuation
// that would occur with Bind(m, func(_ A) { return n }).
func Then[A, B any](m Program[A], n Program[B]) Program[B] {
	switch v := m.(type) {
	case ReadBind[A]:
		k := v.K
		return ReadBind[B]{K: func(s string) Program[B] {
			return Then(k(s), n)
		}}
	case WriteThen[A]:
		return WriteThen[B]{Line: v.Line, Next: Then(v.Next, n)}
	case Done[A]:
		v.Compute()
		return n
	default:
		unknownProgram("Then")
		return nil
	}
}

// Zip pairs the results of two programs.
// Ordering: all of m's reads and writes occur strictly before any of n's.
func Zip[A, B any](m Program[A], n Program[B]) Program[Pair[A, B]] {
	return Bind(m, func(a A) Program[Pair[A, B]] {
		return Map(n, func(b B) Pair[A, B] {
			return Pair[A, B]{Fst: a, Snd: b}
		})
	})
}

// ZipLeft sequences two programs, keeping the first result.
// The ordering guarantee matches [Zip]: m's effects occur strictly
// before n's.
func ZipLeft[A, B any](m Program[A], n Program[B]) Program[A] {
	return Bind(m, func(a A) Program[A] {
		return Map(n, func(B) A { return a })
	})
}

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}
