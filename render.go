package fbopick

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultCircleRadius is the circle radius in world units.
const DefaultCircleRadius = 8.0

var (
	// DefaultFBOClearColor fills the offscreen target each frame.
	DefaultFBOClearColor = ColorFromRGBA8888(0x802000ff)
	// DefaultWindowClearColor fills the window before the blit.
	DefaultWindowClearColor = ColorFromRGBA8888(0x002080ff)
)

// Renderer draws the point store into a FrameBuffer and presents the
// FrameBuffer on the window.
type Renderer struct {
	FBOClear     Color
	WindowClear  Color
	CircleColor  Color
	CircleRadius float64
}

// NewRenderer returns a Renderer with the default colors and radius.
func NewRenderer() *Renderer {
	return &Renderer{
		FBOClear:     DefaultFBOClearColor,
		WindowClear:  DefaultWindowClearColor,
		CircleColor:  ColorYellow,
		CircleRadius: DefaultCircleRadius,
	}
}

// DrawPoints clears fb and draws every point as a filled circle projected
// through cam.
func (r *Renderer) DrawPoints(fb *FrameBuffer, cam *OrthoCamera, points *PointStore) {
	fb.Fill(r.FBOClear)
	combined := cam.Combined()
	for p := range points.All() {
		x, y, pr := circleRaster(combined, p, r.CircleRadius, fb.Width(), fb.Height())
		fb.FillCircle(x, y, pr, r.CircleColor)
	}
}

// Present clears screen and stretches fb over all of it.
func (r *Renderer) Present(fb *FrameBuffer, screen *ebiten.Image) {
	screen.Fill(r.WindowClear.toRGBA())
	fb.BlitStretched(screen)
}

// circleRaster converts a world-space circle to pixel space of a w x h
// target. NDC y points up while target rows grow downward, so y is flipped
// here the way the rasterizer does it.
func circleRaster(combined mgl64.Mat4, p Point, radius float64, w, h int) (x, y, r float32) {
	ndc := mgl64.TransformCoordinate(mgl64.Vec3{p.X, p.Y, 0}, combined)
	px := (ndc.X() + 1) / 2 * float64(w)
	py := (1 - ndc.Y()) / 2 * float64(h)
	pr := radius * math.Abs(combined.At(0, 0)) * float64(w) / 2
	return float32(px), float32(py), float32(pr)
}
