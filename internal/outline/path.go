// Package outline converts pixel-space silhouette polygons into the
// normalized path and anchor data consumed by the web front end. All
// functions are pure over the point list and the image dimensions.
package outline

import (
	"fmt"
	"strconv"
	"strings"

	"silhouette-tracer/pkg/geometry"
)

// PathData encodes a closed polygon as an SVG-style path with coordinates
// normalized to [0,1] and rendered with 4 decimal digits: the first point
// as a move, the rest as lines, then an explicit close. A single point
// yields a valid degenerate path ("M x,y Z"); an empty point list yields
// the empty string.
func PathData(points []geometry.PointInt, width, height int) string {
	if len(points) == 0 {
		return ""
	}

	w, h := float64(width), float64(height)
	parts := make([]string, 0, len(points)+1)
	parts = append(parts, fmt.Sprintf("M%.4f,%.4f", float64(points[0].X)/w, float64(points[0].Y)/h))
	for _, p := range points[1:] {
		parts = append(parts, fmt.Sprintf("L%.4f,%.4f", float64(p.X)/w, float64(p.Y)/h))
	}
	parts = append(parts, "Z")

	return strings.Join(parts, " ")
}

// ParsePathData decodes a path produced by PathData back into normalized
// points. Used by tests and downstream validation.
func ParsePathData(path string) ([]geometry.Point2D, error) {
	if path == "" {
		return nil, nil
	}

	var points []geometry.Point2D
	for i, token := range strings.Fields(path) {
		if token == "Z" {
			continue
		}

		var rest string
		switch {
		case strings.HasPrefix(token, "M"):
			if i != 0 {
				return nil, fmt.Errorf("token %d: unexpected move %q", i, token)
			}
			rest = token[1:]
		case strings.HasPrefix(token, "L"):
			rest = token[1:]
		default:
			return nil, fmt.Errorf("token %d: unknown command %q", i, token)
		}

		xs, ys, ok := strings.Cut(rest, ",")
		if !ok {
			return nil, fmt.Errorf("token %d: malformed coordinates %q", i, token)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		points = append(points, geometry.Point2D{X: x, Y: y})
	}
	return points, nil
}
