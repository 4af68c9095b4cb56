// Package projection analyzes the column-wise silhouette density of a
// foreground mask. The 1-D profile of foreground pixel counts per column
// is the signal used to find "valleys" — the natural gaps between
// adjacent silhouettes standing in a row.
package projection

import (
	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/floats"
)

// ColumnProfile counts, for every column of a single-channel mask, the
// number of pixels strictly above threshold. The result has one entry
// per column.
func ColumnProfile(mask gocv.Mat, threshold uint8) []float64 {
	rows, cols := mask.Rows(), mask.Cols()
	profile := make([]float64, cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if mask.GetUCharAt(y, x) > threshold {
				profile[x]++
			}
		}
	}
	return profile
}

// OccupiedSpan returns the first and last column with a nonzero profile
// value. ok is false when the profile is entirely zero.
func OccupiedSpan(profile []float64) (left, right int, ok bool) {
	left, right = -1, -1
	for i, v := range profile {
		if v > 0 {
			if left < 0 {
				left = i
			}
			right = i
		}
	}
	return left, right, left >= 0
}

// Smooth applies a moving average of the given odd window size. Edge
// behavior matches a zero-padded "same" convolution: the window sum near
// the edges only covers available entries but is still divided by the
// full window size.
func Smooth(xs []float64, window int) []float64 {
	if len(xs) == 0 {
		return nil
	}
	if window <= 1 {
		out := make([]float64, len(xs))
		copy(out, xs)
		return out
	}

	cum := make([]float64, len(xs))
	floats.CumSum(cum, xs)

	half := window / 2
	out := make([]float64, len(xs))
	for i := range xs {
		lo := i - half
		hi := i + half
		if hi > len(xs)-1 {
			hi = len(xs) - 1
		}
		sum := cum[hi]
		if lo > 0 {
			sum -= cum[lo-1]
		}
		out[i] = sum / float64(window)
	}
	return out
}
