package fbopick

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyScript is returned when a script has no steps.
var ErrEmptyScript = errors.New("script has no steps")

// scriptStep represents a single action in a click script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Button string  `yaml:"button,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
	Mode   string  `yaml:"mode,omitempty"`
}

// script is the top-level YAML structure for a click script.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner sequences injected clicks, mode switches and screenshots
// across frames. Attach it to an App with WithScript.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML click script.
//
//	steps:
//	  - {action: click, x: 320, y: 240}
//	  - {action: wait, frames: 10}
//	  - {action: screenshot, label: center}
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", ErrEmptyScript)
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// LoadScriptFile reads and parses a script from disk.
func LoadScriptFile(path string) (*ScriptRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	return LoadScript(data)
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "click":
		_, err := parseButton(st.Button)
		return err
	case "rightclick", "clear", "screenshot", "quit":
		return nil
	case "wait":
		if st.Frames < 0 {
			return fmt.Errorf("wait: negative frames %d", st.Frames)
		}
		return nil
	case "mode":
		if st.Mode == "toggle" {
			return nil
		}
		_, err := ParseMode(st.Mode)
		return err
	}
	return fmt.Errorf("unknown action %q", st.Action)
}

func parseButton(s string) (MouseButton, error) {
	switch strings.ToLower(s) {
	case "", "left", "primary":
		return MouseButtonLeft, nil
	case "right", "secondary":
		return MouseButtonRight, nil
	case "middle":
		return MouseButtonMiddle, nil
	}
	return MouseButtonLeft, fmt.Errorf("unknown button %q", s)
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from App.Update before input
// is processed.
func (r *ScriptRunner) step(a *App) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if a.input.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		b, _ := parseButton(st.Button)
		a.input.InjectClick(st.X, st.Y, b)
	case "rightclick":
		a.input.InjectClick(st.X, st.Y, MouseButtonRight)
	case "clear":
		a.ClearPoints()
	case "screenshot":
		a.Screenshot(st.Label)
	case "mode":
		if st.Mode == "toggle" {
			a.SetMode(a.Mode().Toggle())
		} else {
			m, _ := ParseMode(st.Mode)
			a.SetMode(m)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "quit":
		a.Quit()
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && a.input.Pending() == 0 {
		r.done = true
	}
}
