package fbopick

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	overlayX = 6
	overlayY = 4
)

// overlayText builds the debug text shown in the window corner.
func (a *App) overlayText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "mode: %s (F toggles)\n", a.picker.Mode)
	fmt.Fprintf(&b, "FPS: %.1f  TPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	fmt.Fprintf(&b, "window %dx%d  fbo %dx%d  world %.0fx%.0f\n",
		a.cams.WindowWidth, a.cams.WindowHeight,
		a.cams.FBOWidth, a.cams.FBOHeight,
		a.cams.World.ViewportWidth, a.cams.World.ViewportHeight)
	vb := a.drawCam.VisibleBounds()
	fmt.Fprintf(&b, "view (%.0f,%.0f)-(%.0f,%.0f)\n", vb.X, vb.Y, vb.X+vb.Width, vb.Y+vb.Height)
	fmt.Fprintf(&b, "points: %d\n", a.points.Len())

	if p := a.lastPick; p != nil {
		fmt.Fprintf(&b, "screen (%.1f, %.1f)\n", p.Screen.X(), p.Screen.Y())
		fmt.Fprintf(&b, "fbo    (%.2f, %.2f)\n", p.FBO.X(), p.FBO.Y())
		fmt.Fprintf(&b, "world  (%.3f, %.3f)", p.World.X(), p.World.Y())
		// A legacy pick can land outside what the draw camera shows.
		if pt := p.Point(); !vb.Contains(pt.X, pt.Y) {
			b.WriteString(" off-view")
		}
		b.WriteByte('\n')
	}
	if a.picker.Mode == ModeLegacy {
		fmt.Fprintf(&b, "legacy y error: %+.3f\n", LegacyError(a.cams, a))
	}
	b.WriteString("LMB add  RMB clear  F12 screenshot")
	return b.String()
}

func (a *App) drawOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, a.overlayText(), overlayX, overlayY)
}
