// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command greet asks for a name on the console and greets it.
//
// Configuration comes from the environment, optionally via a .env file:
//
//	GREET_PROMPT      question to ask (default "What is your name?")
//	GREET_TRANSCRIPT  path to save a session transcript to
package main

import (
	"fmt"
	"os"

	"code.hybscloud.com/conio"
	"code.hybscloud.com/conio/transcript"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "greet:", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	prompt := os.Getenv("GREET_PROMPT")
	if prompt == "" {
		prompt = "What is your name?"
	}

	program := conio.Bind(conio.Prompt(prompt), func(name string) conio.Program[string] {
		return conio.Then(conio.WriteLine("Hello, "+name+"!"), conio.Return(name))
	})

	term := conio.Stdio()
	if path := os.Getenv("GREET_TRANSCRIPT"); path != "" {
		rec := transcript.New(term)
		if _, err := conio.Run(rec, program); err != nil {
			return err
		}
		return rec.Save(path)
	}

	_, err := conio.Run(term, program)
	return err
}
