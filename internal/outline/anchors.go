package outline

import (
	"math"

	"silhouette-tracer/pkg/geometry"
)

// NameTagAnchor places the name tag above the silhouette: x at the
// midpoint of the contour's horizontal extent, y the configured rise
// above its topmost point. The y value is not clamped and may be negative
// when the head nearly touches the image top. An empty point list yields
// the documented default {0.5, 0.3}.
func NameTagAnchor(points []geometry.PointInt, width, height int, p Params) geometry.Point2D {
	if len(points) == 0 {
		return geometry.Point2D{X: 0.5, Y: 0.3}
	}

	box := geometry.BoundingBox(points)
	centerX := box.X + box.Width/2

	return geometry.Point2D{
		X: round4(centerX / float64(width)),
		Y: round4((box.Y - float64(p.NameTagRise)) / float64(height)),
	}
}

// HitArea returns the contour's bounding box expanded by the configured
// padding on each side, normalized to image dimensions. An empty point
// list yields the documented default {0, 0, 0.1, 0.5}.
func HitArea(points []geometry.PointInt, width, height int, p Params) geometry.Rect {
	if len(points) == 0 {
		return geometry.Rect{X: 0, Y: 0, Width: 0.1, Height: 0.5}
	}

	box := geometry.BoundingBox(points)
	pad := float64(p.HitPadding)
	w, h := float64(width), float64(height)

	return geometry.Rect{
		X:      round4((box.X - pad) / w),
		Y:      round4((box.Y - pad) / h),
		Width:  round4((box.Width + 2*pad) / w),
		Height: round4((box.Height + 2*pad) / h),
	}
}

// round4 rounds to 4 decimal digits, matching the precision of the
// serialized path coordinates.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
