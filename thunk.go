// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conio

import "fmt"

// Deferred computations.
//
// A Thunk wraps an arbitrary computation as a value without running it.
// Forcing runs the wrapped producer; [Attempt] is the only operation that
// observes failure as a value instead of a raised panic.

// Thunk is a deferred computation producing A when forced.
// A Thunk is stateless: forcing re-runs the producer each time, with no
// caching, so an impure producer may yield a different result per force.
type Thunk[A any] struct {
	compute func() A
}

// Succeed wraps a producer without invoking it.
func Succeed[A any](compute func() A) Thunk[A] {
	return Thunk[A]{compute: compute}
}

// Fail returns a thunk whose producer always panics with err when forced.
func Fail[A any](err error) Thunk[A] {
	return Thunk[A]{compute: func() A { panic(err) }}
}

// Force runs the wrapped producer and returns its result.
// A failure raised by the producer propagates as a panic; [Attempt] is
// the way to observe it as a value instead.
func (t Thunk[A]) Force() A {
	return t.compute()
}

// Attempt converts failure into a value.
// Forcing the returned thunk runs the wrapped producer: success becomes
// Right, a raised error value becomes Left carrying that error unchanged,
// and any other raised value is wrapped into an error. The returned thunk
// never raises.
func Attempt[A any](t Thunk[A]) Thunk[Either[error, A]] {
	compute := t.compute
	return Thunk[Either[error, A]]{compute: func() (result Either[error, A]) {
		defer func() {
			if r := recover(); r != nil {
				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("conio: thunk panicked: %v", r)
				}
				result = Left[error, A](err)
			}
		}()
		return Right[error, A](compute())
	}}
}

// MapThunk applies a pure function to the result of a thunk.
// Composition is deferred: nothing runs until the returned thunk is forced.
func MapThunk[A, B any](t Thunk[A], f func(A) B) Thunk[B] {
	return Thunk[B]{compute: func() B { return f(t.Force()) }}
}

// FlatMapThunk sequences two deferred computations.
// Forcing the result forces t, applies f to obtain the next thunk, and
// forces that in turn.
func FlatMapThunk[A, B any](t Thunk[A], f func(A) Thunk[B]) Thunk[B] {
	return Thunk[B]{compute: func() B { return f(t.Force()).Force() }}
}
