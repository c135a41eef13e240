package fbopick

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Mode selects which unprojection path a Picker uses.
type Mode uint8

const (
	// ModeLegacy flips y with the window height at every stage. It
	// reproduces the wrong world y whenever the FBO is not as tall as the
	// window.
	ModeLegacy Mode = iota
	// ModeFixed flips y with the height of the viewport passed in.
	ModeFixed
)

func (m Mode) String() string {
	switch m {
	case ModeLegacy:
		return "legacy"
	case ModeFixed:
		return "fixed"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeFixed {
		return ModeLegacy
	}
	return ModeFixed
}

// ParseMode parses "legacy" or "fixed" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "legacy", "buggy":
		return ModeLegacy, nil
	case "fixed":
		return ModeFixed, nil
	}
	return ModeLegacy, fmt.Errorf("unknown mode %q (want legacy or fixed)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// PickResult holds a click at every stage of the pipeline.
type PickResult struct {
	Mode   Mode
	Screen mgl64.Vec3
	FBO    mgl64.Vec3
	World  mgl64.Vec3
}

// Point returns the world-space x/y.
func (r PickResult) Point() Point {
	return Point{X: r.World.X(), Y: r.World.Y()}
}

// Picker maps window clicks to world points through the offscreen target.
type Picker struct {
	Cameras *CameraPair
	// Display is the ambient window size seen by the legacy path.
	Display Display
	Mode    Mode
}

// Pick runs the two-stage unprojection for a click at window pixel (sx, sy).
//
// Stage 1 maps the click into FBO-local pixels with the FBO camera and the
// whole window as viewport, then flips y back against the FBO camera height
// because the unprojection flipped it once already. Stage 2 maps that point
// into the world with the world camera and the whole FBO as viewport.
func (p *Picker) Pick(sx, sy float64) PickResult {
	screen := mgl64.Vec3{sx, sy, 0}
	cams := p.Cameras

	var local mgl64.Vec3
	if p.Mode == ModeFixed {
		local = cams.FBO.Unproject(screen, cams.WindowViewport())
	} else {
		local = cams.FBO.UnprojectScreen(p.Display, screen)
	}
	local[1] = cams.FBO.ViewportHeight - local[1]

	var world mgl64.Vec3
	if p.Mode == ModeFixed {
		world = cams.World.Unproject(local, cams.FBOViewport())
	} else {
		world = cams.World.UnprojectLegacy(p.Display, local, cams.FBOViewport())
	}

	return PickResult{Mode: p.Mode, Screen: screen, FBO: local, World: world}
}

// LegacyError returns how far the legacy path's world y lands above the fixed
// one. d must report the same window size the cameras were built for; the
// offset is the same for every click.
func LegacyError(cams *CameraPair, d Display) float64 {
	_, h := d.Size()
	return (float64(h) - float64(cams.FBOHeight)) * cams.World.ViewportHeight / float64(cams.FBOHeight)
}
