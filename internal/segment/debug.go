package segment

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Overlay palette: light tones for the dress group, blue tones for suits.
var overlayColors = []color.RGBA{
	{R: 100, G: 100, B: 255, A: 0},
	{R: 100, G: 255, B: 100, A: 0},
	{R: 100, G: 200, B: 255, A: 0},
	{R: 255, G: 100, B: 100, A: 0},
	{R: 255, G: 100, B: 200, A: 0},
	{R: 255, G: 200, B: 100, A: 0},
}

// RenderOverlay draws every detected contour, its left-to-right index,
// and the group boundary line over a copy of the photo. Diagnostic only —
// the output is not part of any downstream contract.
func RenderOverlay(img gocv.Mat, result *Result) gocv.Mat {
	vis := img.Clone()

	for i, c := range result.Contours {
		pts := make([]image.Point, len(c.Points))
		for j, p := range c.Points {
			pts[j] = image.Pt(p.X, p.Y)
		}
		pv := gocv.NewPointsVectorFromPoints([][]image.Point{pts})

		clr := overlayColors[i%len(overlayColors)]
		gocv.Polylines(&vis, pv, true, clr, 3)
		gocv.PutText(&vis, fmt.Sprintf("%d", i+1), image.Pt(c.CenterX, 100),
			gocv.FontHersheySimplex, 2, clr, 3)
		pv.Close()
	}

	boundaryClr := color.RGBA{R: 255, G: 255, B: 0, A: 0}
	gocv.Line(&vis, image.Pt(result.BoundaryX, 0), image.Pt(result.BoundaryX, vis.Rows()), boundaryClr, 2)

	return vis
}
