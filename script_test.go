package fbopick

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadScript(t *testing.T) {
	r, err := LoadScript([]byte(`
steps:
  - {action: click, x: 10, y: 20, button: right}
  - {action: wait, frames: 3}
  - {action: mode, mode: toggle}
  - {action: screenshot, label: after}
  - {action: quit}
`))
	if err != nil {
		t.Fatal(err)
	}
	if len(r.steps) != 5 {
		t.Fatalf("steps = %d, want 5", len(r.steps))
	}
	if r.steps[0].X != 10 || r.steps[0].Y != 20 || r.steps[0].Button != "right" {
		t.Errorf("step 0 = %+v", r.steps[0])
	}
	if r.Done() {
		t.Error("new runner reports Done")
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "steps: [\n"},
		{"unknown action", "steps:\n  - {action: jump}\n"},
		{"unknown button", "steps:\n  - {action: click, button: fourth}\n"},
		{"negative wait", "steps:\n  - {action: wait, frames: -1}\n"},
		{"bad mode", "steps:\n  - {action: mode, mode: upside}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadScriptEmpty(t *testing.T) {
	_, err := LoadScript([]byte("steps: []\n"))
	if !errors.Is(err, ErrEmptyScript) {
		t.Errorf("err = %v, want ErrEmptyScript", err)
	}
}

func TestLoadScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	if err := os.WriteFile(path, []byte("steps:\n  - {action: quit}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScriptFile(path); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScriptFile(path + ".missing"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseButton(t *testing.T) {
	tests := []struct {
		in   string
		want MouseButton
	}{
		{"", MouseButtonLeft},
		{"left", MouseButtonLeft},
		{"Primary", MouseButtonLeft},
		{"right", MouseButtonRight},
		{"secondary", MouseButtonRight},
		{"middle", MouseButtonMiddle},
	}
	for _, tt := range tests {
		got, err := parseButton(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("parseButton(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}
