// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package dialog loads declarative question packs and compiles them into
// console programs.
//
// A pack is a YAML document listing questions in ask order:
//
//	title: Onboarding
//	questions:
//	  - key: name
//	    prompt: What is your name?
//	  - key: age
//	    prompt: How old are you?
//	    kind: int
//
// [Load] or [Parse] produce a validated [Pack]; [Compile] turns it into a
// single inert program that asks every question in order.
package dialog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Question kinds.
const (
	KindText = "text"
	KindInt  = "int"
)

// Question is one prompt in a pack.
type Question struct {
	Key    string `yaml:"key,omitempty"`
	Prompt string `yaml:"prompt"`
	Kind   string `yaml:"kind,omitempty"`
}

// Pack is an ordered list of questions with an optional title.
type Pack struct {
	Title     string     `yaml:"title,omitempty"`
	Questions []Question `yaml:"questions"`
}

// Parse decodes a YAML question pack, fills defaults and validates it.
func Parse(data []byte) (*Pack, error) {
	var p Pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("dialog: parse pack: %w", err)
	}
	p.applyDefaults()
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("dialog: %w", err)
	}
	return &p, nil
}

// Load reads and parses the pack at path.
func Load(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dialog: read %s: %w", path, err)
	}
	return Parse(data)
}

func (p *Pack) applyDefaults() {
	p.Title = strings.TrimSpace(p.Title)
	for i := range p.Questions {
		q := &p.Questions[i]
		q.Key = strings.TrimSpace(q.Key)
		q.Prompt = strings.TrimSpace(q.Prompt)
		q.Kind = strings.ToLower(strings.TrimSpace(q.Kind))
		if q.Kind == "" {
			q.Kind = KindText
		}
		if q.Key == "" {
			q.Key = fmt.Sprintf("q%d", i+1)
		}
	}
}

func (p *Pack) validate() error {
	if len(p.Questions) == 0 {
		return fmt.Errorf("pack has no questions")
	}
	seen := make(map[string]struct{}, len(p.Questions))
	for i, q := range p.Questions {
		if q.Prompt == "" {
			return fmt.Errorf("questions[%d]: prompt is required", i)
		}
		switch q.Kind {
		case KindText, KindInt:
		default:
			return fmt.Errorf("questions[%d]: kind must be %q or %q", i, KindText, KindInt)
		}
		if _, dup := seen[q.Key]; dup {
			return fmt.Errorf("questions[%d]: duplicate key %q", i, q.Key)
		}
		seen[q.Key] = struct{}{}
	}
	return nil
}
