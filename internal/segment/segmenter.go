// Package segment partitions a foreground mask into per-person silhouette
// contours. The mask is split at the dress/suit group boundary, valleys
// inside each group cut it further into one slice per person, and the
// dominant connected contour of each slice becomes that person's
// silhouette.
package segment

import (
	"fmt"
	"image"
	"log"
	"sort"

	"silhouette-tracer/internal/boundary"
	"silhouette-tracer/internal/projection"
	"silhouette-tracer/pkg/geometry"

	"gocv.io/x/gocv"
)

// Segment partitions the foreground mask into per-person contours.
//
// img is the original photo as a BGR Mat; mask is a single-channel
// foreground mask of the same dimensions. The strategy locates the
// dress/suit boundary. Contours come back sorted by centroid x — the
// left-to-right person order used for identity assignment.
//
// A slice with no foreground yields no contour for that slot; the result
// may therefore hold fewer than 2×PeoplePerGroup entries, with a warning
// recorded for each missing slot.
func Segment(img, mask gocv.Mat, strategy boundary.Strategy, p Params) (*Result, error) {
	if img.Empty() || mask.Empty() {
		return nil, fmt.Errorf("empty image or mask")
	}
	if img.Cols() != mask.Cols() || img.Rows() != mask.Rows() {
		return nil, fmt.Errorf("image %dx%d and mask %dx%d dimensions differ",
			img.Cols(), img.Rows(), mask.Cols(), mask.Rows())
	}

	// Strict binary mask, then close small holes (e.g. between an arm and
	// the body) so each person is one connected blob.
	binary := gocv.NewMat()
	defer binary.Close()
	gocv.Threshold(mask, &binary, float32(p.BinarizeThreshold), 255, gocv.ThresholdBinary)

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(p.CloseKernelSize, p.CloseKernelSize))
	defer kernel.Close()
	gocv.MorphologyEx(binary, &binary, gocv.MorphClose, kernel)

	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(img, &hsv, gocv.ColorBGRToHSV)

	boundaryX, err := strategy.Detect(hsv, binary)
	if err != nil {
		return nil, fmt.Errorf("group boundary detection: %w", err)
	}

	result := &Result{BoundaryX: boundaryX}

	dressMask := SliceColumns(binary, 0, boundaryX)
	defer dressMask.Close()
	suitMask := SliceColumns(binary, boundaryX, binary.Cols())
	defer suitMask.Close()

	dressSeps, ok := groupSeparators(dressMask, boundaryX, true, p)
	if !ok {
		result.Warnings = append(result.Warnings, "no foreground in dress region")
		log.Printf("warning: no foreground in dress region")
	} else {
		result.Contours = append(result.Contours, sliceContours(binary, dressSeps, GroupDress, p, result)...)
	}

	suitSeps, ok := groupSeparators(suitMask, boundaryX, false, p)
	if !ok {
		result.Warnings = append(result.Warnings, "no foreground in suit region")
		log.Printf("warning: no foreground in suit region")
	} else {
		result.Contours = append(result.Contours, sliceContours(binary, suitSeps, GroupSuit, p, result)...)
	}

	sort.Slice(result.Contours, func(i, j int) bool {
		return result.Contours[i].CenterX < result.Contours[j].CenterX
	})

	return result, nil
}

// groupSeparators builds the column separator list for one group:
// [groupStart, valley1, ..., groupBoundary] for the dress side and
// [groupBoundary, valley1, ..., groupEnd] for the suit side. ok is false
// when the group's sub-mask holds no foreground at all.
func groupSeparators(groupMask gocv.Mat, boundaryX int, isDress bool, p Params) ([]int, bool) {
	profile := projection.ColumnProfile(groupMask, p.BinarizeThreshold)
	left, right, ok := projection.OccupiedSpan(profile)
	if !ok {
		return nil, false
	}

	valleys := projection.FindValleys(groupMask, p.PeoplePerGroup-1, p.Projection)

	seps := make([]int, 0, p.PeoplePerGroup+1)
	if isDress {
		seps = append(seps, left)
		seps = append(seps, valleys...)
		seps = append(seps, boundaryX)
	} else {
		seps = append(seps, boundaryX)
		seps = append(seps, valleys...)
		seps = append(seps, right+1)
	}
	return seps, true
}

// sliceContours extracts one contour per separator pair, slicing the FULL
// binary mask (not the group sub-mask) so each silhouette keeps limbs
// that cross the color boundary.
func sliceContours(binary gocv.Mat, seps []int, group Group, p Params, result *Result) []Contour {
	var out []Contour
	for i := 0; i+1 < len(seps); i++ {
		left, right := seps[i], seps[i+1]

		c, ok := extractContour(binary, left, right, p)
		if !ok {
			msg := fmt.Sprintf("%s slice %d (x=%d-%d): no contours found", group, i+1, left, right)
			result.Warnings = append(result.Warnings, msg)
			log.Printf("warning: %s", msg)
			continue
		}
		c.Group = group
		log.Printf("%s person %d (x=%d-%d, center=%d): %d points, area=%.0f",
			group, i+1, left, right, c.CenterX, len(c.Points), c.Area)
		out = append(out, c)
	}
	return out
}

// extractContour finds the largest external contour within a column range
// of the mask and simplifies it. ok is false when the slice holds no
// contour at all.
func extractContour(binary gocv.Mat, left, right int, p Params) (Contour, bool) {
	sliceMask := SliceColumns(binary, left, right)
	defer sliceMask.Close()

	contours := gocv.FindContours(sliceMask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	if contours.Size() == 0 {
		return Contour{}, false
	}

	// Largest enclosed area wins; smaller blobs in the slice are noise or
	// disconnected limbs of the same person.
	largestIdx := 0
	largestArea := gocv.ContourArea(contours.At(0))
	for i := 1; i < contours.Size(); i++ {
		if area := gocv.ContourArea(contours.At(i)); area > largestArea {
			largestArea = area
			largestIdx = i
		}
	}
	largest := contours.At(largestIdx)

	epsilon := p.EpsilonFactor * gocv.ArcLength(largest, true)
	simplified := gocv.ApproxPolyDP(largest, epsilon, true)
	defer simplified.Close()

	points := make([]geometry.PointInt, simplified.Size())
	for j := 0; j < simplified.Size(); j++ {
		pt := simplified.At(j)
		points[j] = geometry.PointInt{X: pt.X, Y: pt.Y}
	}

	// Area-weighted centroid of the full contour; a degenerate contour
	// falls back to the slice midpoint.
	full := make([]geometry.PointInt, largest.Size())
	for j := 0; j < largest.Size(); j++ {
		pt := largest.At(j)
		full[j] = geometry.PointInt{X: pt.X, Y: pt.Y}
	}
	centroid, area := geometry.PolygonCentroid(full)
	centerX := (left + right) / 2
	if area > 0 {
		centerX = int(centroid.X)
	}

	return Contour{Points: points, CenterX: centerX, Area: largestArea}, true
}

// SliceColumns copies the [left, right) column range of src into an
// otherwise-zero mask of the same dimensions.
func SliceColumns(src gocv.Mat, left, right int) gocv.Mat {
	dst := gocv.Zeros(src.Rows(), src.Cols(), gocv.MatTypeCV8U)

	if left < 0 {
		left = 0
	}
	if right > src.Cols() {
		right = src.Cols()
	}
	if left >= right {
		return dst
	}

	roi := image.Rect(left, 0, right, src.Rows())
	srcROI := src.Region(roi)
	defer srcROI.Close()
	dstROI := dst.Region(roi)
	defer dstROI.Close()
	srcROI.CopyTo(&dstROI)

	return dst
}
