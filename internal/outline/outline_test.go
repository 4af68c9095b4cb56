package outline

import (
	"strings"
	"testing"

	"silhouette-tracer/pkg/geometry"
)

func TestPathData(t *testing.T) {
	tests := []struct {
		name     string
		points   []geometry.PointInt
		expected string
	}{
		{"empty", nil, ""},
		{"single point", []geometry.PointInt{{X: 960, Y: 640}}, "M0.5000,0.5000 Z"},
		{
			"triangle",
			[]geometry.PointInt{{X: 0, Y: 0}, {X: 1920, Y: 0}, {X: 960, Y: 1280}},
			"M0.0000,0.0000 L1.0000,0.0000 L0.5000,1.0000 Z",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := PathData(tc.points, 1920, 1280)
			if result != tc.expected {
				t.Errorf("PathData = %q; want %q", result, tc.expected)
			}
		})
	}
}

func TestPathDataRoundTrip(t *testing.T) {
	points := []geometry.PointInt{
		{X: 0, Y: 0}, {X: 512, Y: 17}, {X: 1919, Y: 640}, {X: 731, Y: 1279}, {X: 3, Y: 992},
	}
	path := PathData(points, 1920, 1280)

	decoded, err := ParsePathData(path)
	if err != nil {
		t.Fatalf("ParsePathData failed: %v", err)
	}
	if len(decoded) != len(points) {
		t.Fatalf("decoded %d points; want %d", len(decoded), len(points))
	}
	for i, p := range decoded {
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
			t.Errorf("decoded point %d = (%f, %f); want coordinates in [0,1]", i, p.X, p.Y)
		}
	}
}

func TestParsePathDataErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"unknown command", "Q0.1,0.2 Z"},
		{"missing comma", "M0.1 Z"},
		{"move not first", "L0.1,0.2 M0.3,0.4 Z"},
		{"bad number", "M0.1,abc Z"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParsePathData(tc.path); err == nil {
				t.Errorf("ParsePathData(%q) succeeded; want error", tc.path)
			}
		})
	}

	if pts, err := ParsePathData(""); err != nil || pts != nil {
		t.Errorf("ParsePathData(\"\") = %v, %v; want nil, nil", pts, err)
	}
}

func TestNameTagAnchor(t *testing.T) {
	points := []geometry.PointInt{
		{X: 100, Y: 100}, {X: 300, Y: 100}, {X: 300, Y: 500}, {X: 100, Y: 500},
	}
	anchor := NameTagAnchor(points, 1000, 1000, DefaultParams())
	if anchor.X != 0.2 {
		t.Errorf("anchor.X = %f; want 0.2", anchor.X)
	}
	if anchor.Y != 0.05 {
		t.Errorf("anchor.Y = %f; want 0.05", anchor.Y)
	}
}

func TestNameTagAnchorNearTop(t *testing.T) {
	// A head within 50px of the image top pushes the anchor above the
	// frame; the value goes negative rather than clamping.
	points := []geometry.PointInt{{X: 400, Y: 20}, {X: 600, Y: 20}, {X: 500, Y: 900}}
	anchor := NameTagAnchor(points, 1000, 1000, DefaultParams())
	if anchor.Y >= 0 {
		t.Errorf("anchor.Y = %f; want negative for a near-top contour", anchor.Y)
	}
}

func TestNameTagAnchorDefault(t *testing.T) {
	anchor := NameTagAnchor(nil, 1000, 1000, DefaultParams())
	if anchor.X != 0.5 || anchor.Y != 0.3 {
		t.Errorf("default anchor = %+v; want {0.5, 0.3}", anchor)
	}
}

func TestHitArea(t *testing.T) {
	points := []geometry.PointInt{
		{X: 100, Y: 100}, {X: 300, Y: 100}, {X: 300, Y: 500}, {X: 100, Y: 500},
	}
	area := HitArea(points, 1000, 1000, DefaultParams())
	want := geometry.Rect{X: 0.09, Y: 0.09, Width: 0.22, Height: 0.42}
	if area != want {
		t.Errorf("HitArea = %+v; want %+v", area, want)
	}
}

func TestHitAreaDefault(t *testing.T) {
	area := HitArea(nil, 1000, 1000, DefaultParams())
	want := geometry.Rect{X: 0, Y: 0, Width: 0.1, Height: 0.5}
	if area != want {
		t.Errorf("default HitArea = %+v; want %+v", area, want)
	}
}

func TestPlacementParamsOverride(t *testing.T) {
	points := []geometry.PointInt{
		{X: 100, Y: 100}, {X: 300, Y: 100}, {X: 300, Y: 500}, {X: 100, Y: 500},
	}
	p := DefaultParams().WithNameTagRise(0).WithHitPadding(0)

	anchor := NameTagAnchor(points, 1000, 1000, p)
	if anchor.Y != 0.1 {
		t.Errorf("anchor.Y with zero rise = %f; want 0.1", anchor.Y)
	}

	area := HitArea(points, 1000, 1000, p)
	want := geometry.Rect{X: 0.1, Y: 0.1, Width: 0.2, Height: 0.4}
	if area != want {
		t.Errorf("HitArea with zero padding = %+v; want %+v", area, want)
	}
}

func TestPathDataPrecision(t *testing.T) {
	// Every coordinate renders with exactly 4 decimal digits.
	path := PathData([]geometry.PointInt{{X: 1, Y: 1}, {X: 2, Y: 3}}, 3, 7)
	for _, token := range strings.Fields(path) {
		if token == "Z" {
			continue
		}
		coords := token[1:]
		xs, ys, _ := strings.Cut(coords, ",")
		for _, s := range []string{xs, ys} {
			dot := strings.IndexByte(s, '.')
			if dot < 0 || len(s)-dot-1 != 4 {
				t.Errorf("coordinate %q does not have 4 decimal digits", s)
			}
		}
	}
}
