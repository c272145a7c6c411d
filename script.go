package burrow

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in an automation script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Route  string  `yaml:"route,omitempty"`
	Label  string  `yaml:"label,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// scriptFile is the top-level YAML structure of an automation script.
type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptTarget is what a Script drives. The host program implements it.
type ScriptTarget interface {
	Navigate(route string)
	Restart()
	Screenshot(label string)
	Resize(width, height float64)
	Quit()
}

// Script sequences navigation, restarts, resizes and screenshots across
// frames so a demo run can be reproduced without input.
//
// Example:
//
//	steps:
//	  - action: route
//	    route: /bunny
//	  - action: wait
//	    frames: 120
//	  - action: screenshot
//	    label: bunnies
//	  - action: quit
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

var validActions = map[string]bool{
	"route": true, "wait": true, "restart": true,
	"screenshot": true, "resize": true, "quit": true,
}

// LoadScript parses a YAML automation script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("burrow: parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, errors.New("burrow: parse script: no steps")
	}
	for i, st := range f.Steps {
		if !validActions[st.Action] {
			return nil, fmt.Errorf("burrow: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether every step has been executed.
func (s *Script) Done() bool {
	return s.done
}

// Step runs at most one action. Call it once per frame.
func (s *Script) Step(t ScriptTarget) {
	if s.done {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "route":
		t.Navigate(st.Route)
	case "restart":
		t.Restart()
	case "screenshot":
		t.Screenshot(st.Label)
	case "resize":
		t.Resize(st.Width, st.Height)
	case "quit":
		t.Quit()
		s.done = true
		return
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
}
