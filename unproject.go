package fbopick

import "github.com/go-gl/mathgl/mgl64"

// Viewport is the pixel rectangle a projection is defined relative to.
// Y grows downward, matching window pixel coordinates.
type Viewport struct {
	X, Y, Width, Height float64
}

// FullViewport returns the viewport covering a w x h pixel surface.
func FullViewport(w, h int) Viewport {
	return Viewport{Width: float64(w), Height: float64(h)}
}

// Display reports the current pixel size of the host window. It is the
// ambient graphics state that legacy unprojection consults.
type Display interface {
	Size() (width, height int)
}

// StaticDisplay is a Display with a fixed size.
type StaticDisplay struct {
	Width, Height int
}

// Size implements Display.
func (d StaticDisplay) Size() (int, int) {
	return d.Width, d.Height
}

// Unproject maps v, whose x/y are pixel coordinates inside vp and whose z is
// a depth in [0, 1], through the inverse view-projection matrix inv.
//
// Only vp describes the source pixel space; nothing else is consulted.
func Unproject(inv mgl64.Mat4, v mgl64.Vec3, vp Viewport) mgl64.Vec3 {
	return unproject(inv, v, vp, vp.Height)
}

// UnprojectLegacy behaves like Unproject except that the y flip uses the
// height reported by d instead of vp.Height. The result is only correct when
// both heights agree.
func UnprojectLegacy(d Display, inv mgl64.Mat4, v mgl64.Vec3, vp Viewport) mgl64.Vec3 {
	_, h := d.Size()
	return unproject(inv, v, vp, float64(h))
}

// unproject takes the flip height separately so both entry points share the
// rest of the math.
func unproject(inv mgl64.Mat4, v mgl64.Vec3, vp Viewport, flipHeight float64) mgl64.Vec3 {
	x := v.X() - vp.X
	y := flipHeight - v.Y() - 1
	y -= vp.Y

	ndc := mgl64.Vec3{
		2*x/vp.Width - 1,
		2*y/vp.Height - 1,
		2*v.Z() - 1,
	}
	return mgl64.TransformCoordinate(ndc, inv)
}

// Project maps a point through combined into pixel coordinates inside vp.
// It is the exact inverse of Unproject for the same viewport.
func Project(combined mgl64.Mat4, v mgl64.Vec3, vp Viewport) mgl64.Vec3 {
	ndc := mgl64.TransformCoordinate(v, combined)

	x := (ndc.X()+1)*vp.Width/2 + vp.X
	y := vp.Height - 1 - vp.Y - (ndc.Y()+1)*vp.Height/2
	z := (ndc.Z() + 1) / 2
	return mgl64.Vec3{x, y, z}
}
