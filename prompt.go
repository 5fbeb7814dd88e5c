// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conio

import (
	"strconv"
	"strings"
)

// Prompt and parse conveniences built on the public algebra.
// Direct node construction is the fused composition path: one node, no
// combinator overhead.

// Prompt writes question, then reads the reply line.
func Prompt(question string) Program[string] {
	return WriteThen[string]{Line: question, Next: ReadLine()}
}

// ReadInt reads one line and parses it as a base-10 integer.
// Surrounding space is ignored. A reply that does not parse produces an
// absent value; parse failure is never raised.
func ReadInt() Program[Option[int]] {
	return Map(ReadLine(), parseInt)
}

// PromptInt writes question, then reads and parses an integer reply.
func PromptInt(question string) Program[Option[int]] {
	return WriteThen[Option[int]]{Line: question, Next: ReadInt()}
}

// parseInt converts a reply line to a present int, or absent when the
// text is not a number.
func parseInt(line string) Option[int] {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return None[int]()
	}
	return Some(n)
}
