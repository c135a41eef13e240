package fbopick

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesDefaultConfig(t *testing.T) {
	cfg, err := ParseConfig(defaultConfigYAML)
	if err != nil {
		t.Fatalf("ParseConfig(embedded): %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded default = %+v\nDefaultConfig = %+v", cfg, DefaultConfig())
	}
}

func TestParseConfigPartial(t *testing.T) {
	cfg, err := ParseConfig([]byte("mode: fixed\nfbo_scale: 0.5\nwindow:\n  height: 600\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != ModeFixed {
		t.Errorf("Mode = %v, want fixed", cfg.Mode)
	}
	if cfg.FBOScale != 0.5 {
		t.Errorf("FBOScale = %g, want 0.5", cfg.FBOScale)
	}
	if cfg.Window.Height != 600 || cfg.Window.Width != 640 {
		t.Errorf("Window = %dx%d, want 640x600", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.WorldScale != DefaultWorldScale {
		t.Errorf("WorldScale = %g, want default", cfg.WorldScale)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"render camera", "render_camera: screen\n"},
		{"zero width", "window:\n  width: 0\n"},
		{"negative fbo scale", "fbo_scale: -1\n"},
		{"tiny fbo scale", "fbo_scale: 0.0001\n"},
		{"zero world scale", "world_scale: 0\n"},
		{"negative radius", "circle:\n  radius: -2\n"},
		{"bad color", "colors:\n  fbo_clear: \"#zz0000\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseConfigBadMode(t *testing.T) {
	_, err := ParseConfig([]byte("mode: sideways\n"))
	if err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestParseConfigMalformed(t *testing.T) {
	if _, err := ParseConfig([]byte("window: [")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("render_camera: fbo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RenderCamera != RenderWithFBO {
		t.Errorf("RenderCamera = %q, want fbo", cfg.RenderCamera)
	}
}

func TestLoadConfigMissingPath(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestNewRendererFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Circle.Radius = 4
	cfg.Circle.Color = "#ff0000"
	r, err := NewRendererFromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if r.CircleRadius != 4 {
		t.Errorf("CircleRadius = %g, want 4", r.CircleRadius)
	}
	if r.CircleColor != (Color{R: 1, A: 1}) {
		t.Errorf("CircleColor = %+v, want red", r.CircleColor)
	}
	if r.FBOClear != DefaultFBOClearColor || r.WindowClear != DefaultWindowClearColor {
		t.Errorf("clear colors = %+v / %+v", r.FBOClear, r.WindowClear)
	}
}
