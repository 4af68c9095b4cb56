package boundary

import (
	"log"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/floats"
)

// ColorStrategy estimates the group boundary from fabric color: it masks
// pixels in the suit HSV range, intersects them with the foreground, and
// scans left to right for the column where the cumulative suit pixel
// count first exceeds a fraction of the total. Using the cumulative share
// rather than the first occurrence makes the estimate robust to stray
// suit-colored pixels on the left side of the frame.
type ColorStrategy struct {
	Params Params
}

// Detect implements Strategy. Returns ErrNoSuitPixels when the foreground
// contains nothing in the suit color range.
func (s ColorStrategy) Detect(hsv, mask gocv.Mat) (int, error) {
	lower := gocv.NewScalar(s.Params.SuitHueMin, s.Params.SuitSatMin, s.Params.SuitValMin, 0)
	upper := gocv.NewScalar(s.Params.SuitHueMax, s.Params.SuitSatMax, s.Params.SuitValMax, 0)

	colorMask := gocv.NewMat()
	defer colorMask.Close()
	gocv.InRangeWithScalar(hsv, lower, upper, &colorMask)

	suitMask := gocv.NewMat()
	defer suitMask.Close()
	gocv.BitwiseAnd(colorMask, mask, &suitMask)

	rows, cols := suitMask.Rows(), suitMask.Cols()
	counts := make([]float64, cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if suitMask.GetUCharAt(y, x) > 0 {
				counts[x]++
			}
		}
	}

	cum := make([]float64, cols)
	floats.CumSum(cum, counts)

	total := 0.0
	if cols > 0 {
		total = cum[cols-1]
	}
	if total == 0 {
		return 0, ErrNoSuitPixels
	}

	threshold := total * s.Params.CumulativeFraction
	for x, c := range cum {
		if c > threshold {
			log.Printf("color-based boundary: x=%d", x)
			return x, nil
		}
	}
	return 0, ErrNoSuitPixels
}
