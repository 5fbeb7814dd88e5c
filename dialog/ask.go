// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dialog

import (
	"strconv"
	"strings"

	"code.hybscloud.com/conio"
)

// retryLimit bounds re-prompting for unparsable int answers.
const retryLimit = 3

const retryNotice = "Please enter a whole number."

// Answer pairs a question key with the reply it received.
type Answer struct {
	Key string

	// Value is the reply text; int answers are space-trimmed, text answers
	// are kept verbatim.
	Value string

	// Number holds the parsed value for int questions, absent when the
	// question is text or every attempt failed to parse.
	Number conio.Option[int]
}

// Ask builds the console program for one question.
//
// Text questions are a prompt and a read. Int questions re-prompt on an
// unparsable reply, up to the retry bound, then give up and carry the last
// reply through with an absent Number; a bad reply is never a raised
// failure.
func Ask(q Question) conio.Program[Answer] {
	if q.Kind == KindInt {
		return askInt(q, retryLimit)
	}
	return conio.Map(conio.Prompt(q.Prompt), func(line string) Answer {
		return Answer{Key: q.Key, Value: line}
	})
}

func askInt(q Question, attempts int) conio.Program[Answer] {
	return conio.Bind(conio.Prompt(q.Prompt), func(line string) conio.Program[Answer] {
		trimmed := strings.TrimSpace(line)
		if n, err := strconv.Atoi(trimmed); err == nil {
			return conio.Return(Answer{Key: q.Key, Value: trimmed, Number: conio.Some(n)})
		}
		if attempts <= 1 {
			return conio.Return(Answer{Key: q.Key, Value: trimmed, Number: conio.None[int]()})
		}
		return conio.Then(conio.WriteLine(retryNotice), askInt(q, attempts-1))
	})
}

// Compile turns a pack into a single program asking every question in
// order, preceded by the pack title when one is set. Answers come back in
// question order.
func Compile(p *Pack) conio.Program[[]Answer] {
	ask := conio.ForEach(p.Questions, Ask)
	if p.Title == "" {
		return ask
	}
	return conio.Then(conio.WriteLine(p.Title), ask)
}
