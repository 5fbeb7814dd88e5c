// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conio_test

import (
	"testing"

	"code.hybscloud.com/conio"
)

func TestReturnRun(t *testing.T) {
	got, err := conio.Run(conio.NewScript(), conio.Return(42))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestSuspendDefersComputation(t *testing.T) {
	runs := 0
	p := conio.Suspend(func() int {
		runs++
		return 7
	})
	if runs != 0 {
		t.Fatalf("construction ran the payload %d times, want 0", runs)
	}

	got, err := conio.Run(conio.NewScript(), p)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
	if runs != 1 {
		t.Fatalf("payload ran %d times, want 1", runs)
	}
}

func TestReadLineProducesInput(t *testing.T) {
	got, err := conio.Run(conio.NewScript("hello"), conio.ReadLine())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
}

func TestWriteLineEmitsLine(t *testing.T) {
	script := conio.NewScript()
	_, err := conio.Run(script, conio.WriteLine("out"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(script.Outputs) != 1 || script.Outputs[0] != "out" {
		t.Fatalf("outputs = %v, want [out]", script.Outputs)
	}
}

func TestConstructionPerformsNoIO(t *testing.T) {
	// Building a description must write nothing and force no deferred
	// payload behind a pending read.
	script := conio.NewScript("Ada")
	forced := false
	p := conio.Then(
		conio.WriteLine("What is your name?"),
		conio.Bind(conio.ReadLine(), func(name string) conio.Program[int] {
			return conio.Suspend(func() int {
				forced = true
				return len(name)
			})
		}),
	)
	if len(script.Outputs) != 0 {
		t.Fatalf("construction wrote %v, want nothing", script.Outputs)
	}
	if forced {
		t.Fatal("construction forced a payload behind a pending read")
	}

	got, err := conio.Run(script, p)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
	if !forced {
		t.Fatal("interpretation did not force the payload")
	}
}
