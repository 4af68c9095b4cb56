package geometry

import "math"

// PolygonArea returns the unsigned area of a closed polygon using the
// shoelace formula. The polygon is implicitly closed from the last point
// back to the first. Fewer than three points have zero area.
func PolygonArea(points []PointInt) float64 {
	if len(points) < 3 {
		return 0
	}
	var sum float64
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		sum += float64(a.X)*float64(b.Y) - float64(b.X)*float64(a.Y)
	}
	return math.Abs(sum) / 2
}

// PolygonCentroid returns the area-weighted centroid of a closed polygon
// (the same quantity OpenCV reports as m10/m00, m01/m00). The second
// return value is the unsigned area; when it is zero the centroid is
// degenerate and the first value falls back to the vertex average.
func PolygonCentroid(points []PointInt) (Point2D, float64) {
	if len(points) == 0 {
		return Point2D{}, 0
	}

	var cx, cy, signed float64
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		cross := float64(a.X)*float64(b.Y) - float64(b.X)*float64(a.Y)
		signed += cross
		cx += (float64(a.X) + float64(b.X)) * cross
		cy += (float64(a.Y) + float64(b.Y)) * cross
	}

	area := math.Abs(signed) / 2
	if signed == 0 {
		// Degenerate polygon (collinear or a single point): vertex average.
		var sumX, sumY float64
		for _, p := range points {
			sumX += float64(p.X)
			sumY += float64(p.Y)
		}
		n := float64(len(points))
		return Point2D{X: sumX / n, Y: sumY / n}, 0
	}

	return Point2D{X: cx / (3 * signed), Y: cy / (3 * signed)}, area
}
