package fbopick

import "iter"

// Point is a world-space circle center.
type Point struct {
	X, Y float64
}

// PointStore is an ordered, growable list of points. Duplicates are allowed.
// It is not safe for concurrent use; the game loop owns it.
type PointStore struct {
	points []Point
}

// Add appends p.
func (s *PointStore) Add(p Point) {
	s.points = append(s.points, p)
}

// Clear removes every point. Clearing an empty store is a no-op.
func (s *PointStore) Clear() {
	clear(s.points)
	s.points = s.points[:0]
}

// Len returns the number of stored points.
func (s *PointStore) Len() int {
	return len(s.points)
}

// At returns the i-th point in insertion order.
func (s *PointStore) At(i int) Point {
	return s.points[i]
}

// All iterates over every stored point.
func (s *PointStore) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, p := range s.points {
			if !yield(p) {
				return
			}
		}
	}
}
