// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conio

// Two-variant results.
//
// Either[E, A] holds a failure or a success as a plain value. Within this
// package [Attempt] is the main producer: a thunk that raises on force
// yields Left carrying the failure, a clean force yields Right.

// Either holds exactly one of a failure (Left) or a success (Right).
// The zero value is Left of E's zero value.
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left wraps a failure into an Either.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{isRight: false, left: e}
}

// Right wraps a success into an Either.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// IsRight reports whether e holds a success.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft reports whether e holds a failure.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the success value when e holds one; otherwise the
// zero value and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the failure value when e holds one; otherwise the
// zero value and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// MatchEither folds e into a single value, applying onLeft to a failure
// or onRight to a success.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither transforms the success value; a Left passes through unchanged.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// FlatMapEither chains a second fallible computation after a success.
// A Left short-circuits: f is not applied.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// MapLeftEither transforms the failure value; a Right passes through
// unchanged.
func MapLeftEither[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}
