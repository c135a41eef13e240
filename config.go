package fbopick

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/fbopick.yaml
var defaultConfigYAML []byte

// LocalConfigPath is checked when no explicit config path is given.
const LocalConfigPath = "fbopick.yaml"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// RenderCamera names the camera whose transform draws the circles.
type RenderCamera string

const (
	RenderWithWorld RenderCamera = "world"
	RenderWithFBO   RenderCamera = "fbo"
)

// WindowConfig describes the fixed host window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// CircleConfig describes how points are drawn.
type CircleConfig struct {
	Radius float64 `yaml:"radius"`
	Color  string  `yaml:"color"`
}

// ColorsConfig holds the two clear colors as "#rrggbbaa" strings.
type ColorsConfig struct {
	FBOClear    string `yaml:"fbo_clear"`
	WindowClear string `yaml:"window_clear"`
}

// Config is the full program configuration.
type Config struct {
	Window        WindowConfig `yaml:"window"`
	FBOScale      float64      `yaml:"fbo_scale"`
	WorldScale    float64      `yaml:"world_scale"`
	Mode          Mode         `yaml:"mode"`
	RenderCamera  RenderCamera `yaml:"render_camera"`
	Circle        CircleConfig `yaml:"circle"`
	Colors        ColorsConfig `yaml:"colors"`
	Overlay       bool         `yaml:"overlay"`
	Markers       bool         `yaml:"markers"`
	ScreenshotDir string       `yaml:"screenshot_dir"`
	LogLevel      string       `yaml:"log_level"`
}

// DefaultConfig returns the configuration of the reference program:
// a 640x480 window, a 0.75 FBO, legacy unprojection.
func DefaultConfig() Config {
	return Config{
		Window:        WindowConfig{Width: 640, Height: 480, Title: "FBO unproject test"},
		FBOScale:      DefaultFBOScale,
		WorldScale:    DefaultWorldScale,
		Mode:          ModeLegacy,
		RenderCamera:  RenderWithWorld,
		Circle:        CircleConfig{Radius: DefaultCircleRadius, Color: ColorYellow.Hex()},
		Colors:        ColorsConfig{FBOClear: DefaultFBOClearColor.Hex(), WindowClear: DefaultWindowClearColor.Hex()},
		Overlay:       true,
		Markers:       true,
		ScreenshotDir: "screenshots",
		LogLevel:      "info",
	}
}

// LoadConfig loads the configuration.
// Search order: customPath -> ./fbopick.yaml -> embedded default.
// Values missing from a file keep their defaults.
func LoadConfig(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", customPath, err)
		}
		return ParseConfig(data)
	}

	if data, err := os.ReadFile(LocalConfigPath); err == nil {
		return ParseConfig(data)
	}

	cfg, err := ParseConfig(defaultConfigYAML)
	if err != nil {
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks sizes, scales and colors.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.FBOScale <= 0 {
		return fmt.Errorf("%w: fbo_scale %g must be positive", ErrInvalidConfig, c.FBOScale)
	}
	if int(float64(c.Window.Width)*c.FBOScale) < 1 || int(float64(c.Window.Height)*c.FBOScale) < 1 {
		return fmt.Errorf("%w: fbo_scale %g leaves an empty target", ErrInvalidConfig, c.FBOScale)
	}
	if c.WorldScale <= 0 {
		return fmt.Errorf("%w: world_scale %g must be positive", ErrInvalidConfig, c.WorldScale)
	}
	if c.Circle.Radius < 0 {
		return fmt.Errorf("%w: circle radius %g is negative", ErrInvalidConfig, c.Circle.Radius)
	}
	switch c.RenderCamera {
	case RenderWithWorld, RenderWithFBO:
	default:
		return fmt.Errorf("%w: render_camera %q (want world or fbo)", ErrInvalidConfig, c.RenderCamera)
	}
	for _, s := range []string{c.Circle.Color, c.Colors.FBOClear, c.Colors.WindowClear} {
		if _, err := ParseHexColor(s); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// NewRendererFromConfig builds a Renderer from the configured colors.
func NewRendererFromConfig(c Config) (*Renderer, error) {
	r := NewRenderer()
	r.CircleRadius = c.Circle.Radius

	var err error
	if r.CircleColor, err = ParseHexColor(c.Circle.Color); err != nil {
		return nil, err
	}
	if r.FBOClear, err = ParseHexColor(c.Colors.FBOClear); err != nil {
		return nil, err
	}
	if r.WindowClear, err = ParseHexColor(c.Colors.WindowClear); err != nil {
		return nil, err
	}
	return r, nil
}
