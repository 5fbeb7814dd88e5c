// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conio

// List combinators lifting a sequence of programs into a single program.

// CollectAll combines programs into one program producing every result.
// Effects run left to right when interpreted; the result slice preserves
// input order exactly. An empty input produces an empty, effect-free
// result.
//
// The combined program is the right fold
// Bind(head, a -> Map(CollectAll(tail), as -> prepend(a, as))),
// constructed iteratively from the tail.
func CollectAll[A any](programs ...Program[A]) Program[[]A] {
	acc := Return([]A{})
	for i := len(programs) - 1; i >= 0; i-- {
		head, tail := programs[i], acc
		acc = Bind(head, func(a A) Program[[]A] {
			return Map(tail, func(as []A) []A {
				return append([]A{a}, as...)
			})
		})
	}
	return acc
}

// ForEach applies body to each value in input order and collects the
// results into one program. Interpretation order matches input order.
func ForEach[A, B any](values []A, body func(A) Program[B]) Program[[]B] {
	programs := make([]Program[B], len(values))
	for i, v := range values {
		programs[i] = body(v)
	}
	return CollectAll(programs...)
}
