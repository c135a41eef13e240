package fbopick

import "testing"

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ffff00", ColorYellow, false},
		{"ffff00ff", ColorYellow, false},
		{"#00000000", Color{}, false},
		{"#ff000080", Color{R: 1, A: 128.0 / 255}, false},
		{"#fff", Color{}, true},
		{"#gg0000", Color{}, true},
		{"", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseHexColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	for _, s := range []string{"#802000ff", "#002080ff", "#ffff00ff", "#01020304"} {
		c, err := ParseHexColor(s)
		if err != nil {
			t.Fatal(err)
		}
		if got := c.Hex(); got != s {
			t.Errorf("Hex() = %q, want %q", got, s)
		}
	}
}

func TestColorToRGBAPremultiplies(t *testing.T) {
	got := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	want := colorRGBA{R: 128, G: 64, B: 0, A: 128}
	if got != want {
		t.Errorf("toRGBA() = %+v, want %+v", got, want)
	}
	if c := (Color{R: 2, A: 1}).toRGBA(); c.R != 255 {
		t.Errorf("out of range component = %d, want 255", c.R)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 5}
	if !r.Contains(10, 5) {
		t.Error("edge point should be inside")
	}
	if r.Contains(10.1, 2) {
		t.Error("outside point reported inside")
	}
}

func TestMouseButtonString(t *testing.T) {
	if MouseButtonRight.String() != "right" {
		t.Errorf("got %q", MouseButtonRight.String())
	}
	if MouseButton(7).String() != "button(7)" {
		t.Errorf("got %q", MouseButton(7).String())
	}
}

func TestRectContainsVisibleBounds(t *testing.T) {
	cam := NewOrthoCamera(240, 180)
	cam.SetPosition(120, 90, 0)
	vb := cam.VisibleBounds()
	if !vb.Contains(120, 89.125) {
		t.Error("camera center not inside visible bounds")
	}
	if vb.Contains(0, 239.125) {
		t.Error("point above the view reported inside")
	}
}
