package fbopick

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	markerDuration = 0.6 // seconds
	markerArm      = 10.0
	markerWidth    = 2.0
)

var markerColor = Color{R: 1, G: 1, B: 1, A: 1}

// clickMarker is a crosshair drawn on the window at the raw click position.
// It fades out so that the gap to the circle drawn through the FBO stays
// visible for a moment.
type clickMarker struct {
	x, y  float64
	alpha float64
	fade  *gween.Tween
	done  bool
}

func newClickMarker(x, y float64) *clickMarker {
	return &clickMarker{
		x: x, y: y,
		alpha: 1,
		fade:  gween.New(1, 0, markerDuration, ease.InQuad),
	}
}

// update advances the fade by dt seconds.
func (m *clickMarker) update(dt float32) {
	if m.done {
		return
	}
	val, finished := m.fade.Update(dt)
	m.alpha = float64(val)
	m.done = finished
}

func (m *clickMarker) draw(screen *ebiten.Image) {
	if m.done || m.alpha <= 0 {
		return
	}
	c := markerColor
	c.A *= m.alpha
	rgba := c.toRGBA()
	x, y := float32(m.x), float32(m.y)
	vector.StrokeLine(screen, x-markerArm, y, x+markerArm, y, markerWidth, rgba, false)
	vector.StrokeLine(screen, x, y-markerArm, x, y+markerArm, markerWidth, rgba, false)
}

// markerSet owns the live markers and drops finished ones.
type markerSet struct {
	markers []*clickMarker
}

func (s *markerSet) add(x, y float64) {
	s.markers = append(s.markers, newClickMarker(x, y))
}

func (s *markerSet) update(dt float32) {
	live := s.markers[:0]
	for _, m := range s.markers {
		m.update(dt)
		if !m.done {
			live = append(live, m)
		}
	}
	clear(s.markers[len(live):])
	s.markers = live
}

func (s *markerSet) draw(screen *ebiten.Image) {
	for _, m := range s.markers {
		m.draw(screen)
	}
}

func (s *markerSet) len() int {
	return len(s.markers)
}
