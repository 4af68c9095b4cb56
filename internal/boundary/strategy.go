// Package boundary locates the single x-position separating the two
// person-groups in the photo: dress wearers on the left, suit wearers on
// the right. Two independent estimators are combined — a projection
// valley near the middle of the frame, and the column where suit-colored
// fabric starts to dominate.
package boundary

import (
	"errors"

	"gocv.io/x/gocv"
)

// ErrNoSuitPixels is returned by the color estimator when the foreground
// contains no pixels in the suit color range.
var ErrNoSuitPixels = errors.New("no suit-colored pixels in foreground")

// Strategy detects the group boundary from an HSV image and a
// single-channel binary foreground mask of the same dimensions. The
// returned value is an x-position in mask columns.
//
// The detection policy is deliberately pluggable: the shipped
// CombinedStrategy encodes an empirical trust rule between its two
// estimators, and callers can substitute alternatives without touching
// the segmenter.
type Strategy interface {
	Detect(hsv, mask gocv.Mat) (int, error)
}
