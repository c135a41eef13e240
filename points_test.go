package fbopick

import "testing"

func TestPointStoreAddClear(t *testing.T) {
	var s PointStore
	for i := range 3 {
		s.Add(Point{X: float64(i), Y: 1})
	}
	s.Add(Point{X: 0, Y: 1}) // duplicates are kept
	if s.Len() != 4 {
		t.Fatalf("Len = %d, want 4", s.Len())
	}
	if s.At(1) != (Point{X: 1, Y: 1}) {
		t.Errorf("At(1) = %+v", s.At(1))
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", s.Len())
	}
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len after second Clear = %d, want 0", s.Len())
	}

	s.Add(Point{X: 5, Y: 6})
	s.Add(Point{X: 7, Y: 8})
	if s.Len() != 2 {
		t.Errorf("Len after re-adding = %d, want 2", s.Len())
	}
}

func TestPointStoreAllOrder(t *testing.T) {
	var s PointStore
	want := []Point{{1, 2}, {3, 4}, {5, 6}}
	for _, p := range want {
		s.Add(p)
	}

	var got []Point
	for p := range s.All() {
		got = append(got, p)
	}
	if len(got) != len(want) {
		t.Fatalf("All yielded %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPointStoreAllStopsEarly(t *testing.T) {
	var s PointStore
	for i := range 5 {
		s.Add(Point{X: float64(i)})
	}
	n := 0
	for range s.All() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d, want 2", n)
	}
}
