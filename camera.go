package fbopick

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Default clipping planes for an orthographic camera.
const (
	defaultNear = 0.0
	defaultFar  = 100.0
)

// OrthoCamera is an orthographic camera looking down -Z with +Y up.
// Its combined view-projection matrix and the inverse are cached and only
// recomputed after the camera is marked dirty.
type OrthoCamera struct {
	// X, Y and Z are the world-space position the camera centers on.
	X, Y, Z float64
	// ViewportWidth and ViewportHeight are the visible extent in world units
	// at zoom 1.
	ViewportWidth, ViewportHeight float64
	// Zoom scales the visible extent (1.0 = no zoom, >1 shows more).
	Zoom float64
	// Near and Far are the clipping plane distances.
	Near, Far float64

	projection  mgl64.Mat4
	view        mgl64.Mat4
	combined    mgl64.Mat4
	invCombined mgl64.Mat4
	dirty       bool
}

// NewOrthoCamera creates a camera showing w x h world units, positioned at
// the origin.
func NewOrthoCamera(w, h float64) *OrthoCamera {
	return &OrthoCamera{
		ViewportWidth:  w,
		ViewportHeight: h,
		Zoom:           1.0,
		Near:           defaultNear,
		Far:            defaultFar,
		dirty:          true,
	}
}

// SetPosition moves the camera and marks it dirty.
func (c *OrthoCamera) SetPosition(x, y, z float64) {
	c.X, c.Y, c.Z = x, y, z
	c.dirty = true
}

// MarkDirty forces a recomputation of the cached matrices.
func (c *OrthoCamera) MarkDirty() {
	c.dirty = true
}

// Update recomputes the cached matrices if dirty.
//
//	projection = Ortho(-w/2, w/2, -h/2, h/2, near, far) scaled by zoom
//	view       = LookAt(pos, pos + (0, 0, -1), up = (0, 1, 0))
//	combined   = projection * view
func (c *OrthoCamera) Update() {
	if !c.dirty {
		return
	}
	c.dirty = false

	hw := c.Zoom * c.ViewportWidth / 2
	hh := c.Zoom * c.ViewportHeight / 2
	c.projection = mgl64.Ortho(-hw, hw, -hh, hh, c.Near, c.Far)

	eye := mgl64.Vec3{c.X, c.Y, c.Z}
	c.view = mgl64.LookAtV(eye, eye.Add(mgl64.Vec3{0, 0, -1}), mgl64.Vec3{0, 1, 0})

	c.combined = c.projection.Mul4(c.view)
	c.invCombined = c.combined.Inv()
}

// Combined returns the view-projection matrix.
func (c *OrthoCamera) Combined() mgl64.Mat4 {
	c.Update()
	return c.combined
}

// InvCombined returns the inverse of the view-projection matrix.
func (c *OrthoCamera) InvCombined() mgl64.Mat4 {
	c.Update()
	return c.invCombined
}

// Project converts a world point to pixel coordinates inside vp.
func (c *OrthoCamera) Project(v mgl64.Vec3, vp Viewport) mgl64.Vec3 {
	return Project(c.Combined(), v, vp)
}

// Unproject converts pixel coordinates inside vp to world space.
func (c *OrthoCamera) Unproject(v mgl64.Vec3, vp Viewport) mgl64.Vec3 {
	return Unproject(c.InvCombined(), v, vp)
}

// UnprojectLegacy converts pixel coordinates inside vp to world space,
// flipping y with the height reported by d.
func (c *OrthoCamera) UnprojectLegacy(d Display, v mgl64.Vec3, vp Viewport) mgl64.Vec3 {
	return UnprojectLegacy(d, c.InvCombined(), v, vp)
}

// UnprojectScreen treats v as window coordinates and uses the whole window
// reported by d as the viewport.
func (c *OrthoCamera) UnprojectScreen(d Display, v mgl64.Vec3) mgl64.Vec3 {
	w, h := d.Size()
	return c.UnprojectLegacy(d, v, FullViewport(w, h))
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's
// visible area in world space. Y grows upward.
func (c *OrthoCamera) VisibleBounds() Rect {
	inv := c.InvCombined()

	corners := [4]mgl64.Vec3{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, ndc := range corners {
		w := mgl64.TransformCoordinate(ndc, inv)
		minX = math.Min(minX, w.X())
		minY = math.Min(minY, w.Y())
		maxX = math.Max(maxX, w.X())
		maxY = math.Max(maxY, w.Y())
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// DefaultFBOScale is the FBO size relative to the window, per axis.
const DefaultFBOScale = 0.75

// DefaultWorldScale is the world camera's viewport relative to the FBO
// camera's viewport, per axis.
const DefaultWorldScale = 0.5

// CameraPair holds the two cameras used to map a click from the window to
// the FBO and from the FBO to the world. Both are built once and never
// changed.
type CameraPair struct {
	WindowWidth, WindowHeight int
	FBOWidth, FBOHeight       int

	// FBO maps window pixels to FBO-local pixels.
	FBO *OrthoCamera
	// World maps FBO-local pixels to world units.
	World *OrthoCamera
}

// NewCameraPair sizes the FBO at fboScale of the window and the world camera
// at worldScale of the FBO camera. Each camera is centered on half its
// viewport so that its bottom-left corner is the origin.
func NewCameraPair(windowW, windowH int, fboScale, worldScale float64) *CameraPair {
	fw := int(float64(windowW) * fboScale)
	fh := int(float64(windowH) * fboScale)

	fbo := NewOrthoCamera(float64(fw), float64(fh))
	fbo.SetPosition(fbo.ViewportWidth*0.5, fbo.ViewportHeight*0.5, 0)
	fbo.Update()

	world := NewOrthoCamera(fbo.ViewportWidth*worldScale, fbo.ViewportHeight*worldScale)
	world.SetPosition(world.ViewportWidth*0.5, world.ViewportHeight*0.5, 0)
	world.Update()

	return &CameraPair{
		WindowWidth:  windowW,
		WindowHeight: windowH,
		FBOWidth:     fw,
		FBOHeight:    fh,
		FBO:          fbo,
		World:        world,
	}
}

// WindowViewport covers the whole window.
func (p *CameraPair) WindowViewport() Viewport {
	return FullViewport(p.WindowWidth, p.WindowHeight)
}

// FBOViewport covers the whole offscreen target.
func (p *CameraPair) FBOViewport() Viewport {
	return FullViewport(p.FBOWidth, p.FBOHeight)
}
