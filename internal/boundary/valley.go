package boundary

import (
	"fmt"
	"log"

	"silhouette-tracer/internal/projection"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/floats"
)

// ValleyStrategy estimates the group boundary as the deepest point of the
// smoothed column profile within the middle band of the image. The
// natural gap between the two groups is wider than the gaps between
// adjacent people, so the global minimum of the band is a good estimate.
type ValleyStrategy struct {
	Params Params
}

// Detect implements Strategy.
func (s ValleyStrategy) Detect(_, mask gocv.Mat) (int, error) {
	width := mask.Cols()
	if width == 0 {
		return 0, fmt.Errorf("empty mask")
	}

	profile := projection.ColumnProfile(mask, s.Params.BinarizeThreshold)
	smoothed := projection.Smooth(profile, s.Params.SmoothWindow)

	bandLo := int(float64(width) * s.Params.SearchBandMin)
	bandHi := int(float64(width) * s.Params.SearchBandMax)
	if bandLo >= bandHi {
		return 0, fmt.Errorf("search band [%d,%d) is empty for width %d", bandLo, bandHi, width)
	}

	x := bandLo + floats.MinIdx(smoothed[bandLo:bandHi])
	depth := smoothed[x]

	// Prominence of the chosen valley, reported for operator review.
	lo := x - s.Params.ProminenceWindow
	if lo < 0 {
		lo = 0
	}
	hi := x + s.Params.ProminenceWindow
	if hi > width {
		hi = width
	}
	prominence := depth
	if x > lo && x < hi {
		leftMax := floats.Max(smoothed[lo:x])
		rightMax := floats.Max(smoothed[x:hi])
		if rightMax < leftMax {
			leftMax = rightMax
		}
		prominence = leftMax - depth
	}
	log.Printf("valley-based boundary: x=%d (depth=%.0f, prominence=%.0f)", x, depth, prominence)

	return x, nil
}
