package fbopick

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FrameBuffer is a persistent offscreen color target with a fixed pixel
// size. It is owned by the caller and must be released with Dispose.
type FrameBuffer struct {
	image *ebiten.Image
	w, h  int
}

// NewFrameBuffer creates an offscreen target of w x h pixels.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		image: ebiten.NewImage(w, h),
		w:     w,
		h:     h,
	}
}

// Width returns the target width in pixels.
func (fb *FrameBuffer) Width() int {
	return fb.w
}

// Height returns the target height in pixels.
func (fb *FrameBuffer) Height() int {
	return fb.h
}

// Fill fills the entire target with the given color.
func (fb *FrameBuffer) Fill(c Color) {
	fb.image.Fill(c.toRGBA())
}

// FillCircle draws a filled circle centered at pixel (x, y). Pixel
// coordinates grow right and down.
func (fb *FrameBuffer) FillCircle(x, y, r float32, c Color) {
	vector.DrawFilledCircle(fb.image, x, y, r, c.toRGBA(), true)
}

// BlitStretched draws the whole target onto dst, stretched to cover it,
// sampling with the nearest filter.
func (fb *FrameBuffer) BlitStretched(dst *ebiten.Image) {
	b := dst.Bounds()
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(b.Dx())/float64(fb.w), float64(b.Dy())/float64(fb.h))
	op.GeoM.Translate(float64(b.Min.X), float64(b.Min.Y))
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(fb.image, &op)
}

// Dispose deallocates the underlying image. The FrameBuffer should not be
// used after calling Dispose.
func (fb *FrameBuffer) Dispose() {
	if fb.image != nil {
		fb.image.Deallocate()
		fb.image = nil
	}
}
