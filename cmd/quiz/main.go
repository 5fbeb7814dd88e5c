// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command quiz asks the questions from a YAML question pack and prints
// the collected answers.
//
// By default the session runs in an interactive terminal UI; -plain runs
// it on stdin/stdout instead. The pack path comes from the first argument
// or QUIZ_PACK. In plain mode QUIZ_TRANSCRIPT names a file to save the
// session transcript to.
package main

import (
	"flag"
	"fmt"
	"os"

	"code.hybscloud.com/conio"
	"code.hybscloud.com/conio/dialog"
	"code.hybscloud.com/conio/transcript"
	"code.hybscloud.com/conio/tui"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true)
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

func main() {
	_ = godotenv.Load()

	plain := flag.Bool("plain", false, "run on stdin/stdout instead of the interactive UI")
	flag.Parse()

	path := flag.Arg(0)
	if path == "" {
		path = os.Getenv("QUIZ_PACK")
	}
	if path == "" {
		die("usage: quiz [-plain] <pack.yaml>")
	}

	pack, err := dialog.Load(path)
	if err != nil {
		die("quiz: %v", err)
	}
	program := dialog.Compile(pack)

	var answers []dialog.Answer
	if *plain {
		answers, err = runPlain(program)
	} else {
		answers, err = tui.RunProgram(program)
	}
	if err != nil {
		die("quiz: %v", err)
	}

	printSummary(pack, answers)
}

func runPlain(program conio.Program[[]dialog.Answer]) ([]dialog.Answer, error) {
	var term conio.Terminal = conio.Stdio()
	save := os.Getenv("QUIZ_TRANSCRIPT")

	var rec *transcript.Recorder
	if save != "" {
		rec = transcript.New(term)
		term = rec
	}

	answers, err := conio.Run(term, program)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		if err := rec.Save(save); err != nil {
			return nil, err
		}
	}
	return answers, nil
}

func printSummary(pack *dialog.Pack, answers []dialog.Answer) {
	title := pack.Title
	if title == "" {
		title = "Answers"
	}
	fmt.Println(titleStyle.Render(title))
	for _, a := range answers {
		fmt.Printf("%s %s\n", keyStyle.Render(a.Key+":"), a.Value)
	}
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
