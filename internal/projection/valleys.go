package projection

import (
	"log"
	"sort"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/floats"
)

// valley is a local minimum of the smoothed column profile. Prominence is
// the height of the lower of the two neighboring peaks above the valley
// floor; it ranks valleys by how visually significant the gap is.
type valley struct {
	x          int
	depth      float64
	prominence float64
}

// FindValleys locates up to valleyCount separator positions between
// silhouettes in a single-channel mask.
//
// The column profile is smoothed, local minima are found where its first
// difference turns from negative to non-negative, and the most prominent
// minima are greedily selected subject to the minimum separation. If too
// few minima exist, evenly spaced fallback positions fill the remaining
// slots. The result is sorted ascending by x.
//
// An entirely empty mask returns nil.
func FindValleys(mask gocv.Mat, valleyCount int, p Params) []int {
	profile := ColumnProfile(mask, p.BinarizeThreshold)

	left, right, ok := OccupiedSpan(profile)
	if !ok {
		return nil
	}
	regionWidth := right - left

	// A span narrower than two columns has no first difference to
	// inspect; separators come straight from the evenly spaced fallback.
	if regionWidth < 2 {
		return evenlySpaced(left, regionWidth, valleyCount)
	}

	smoothed := Smooth(profile, p.SmoothWindow)

	// First difference over the occupied span. A valley sits where the
	// slope crosses from negative to non-negative.
	search := smoothed[left:right]
	grad := make([]float64, len(search)-1)
	for i := range grad {
		grad[i] = search[i+1] - search[i]
	}

	var minima []valley
	for i := 1; i < len(grad); i++ {
		if grad[i-1] < 0 && grad[i] >= 0 {
			x := left + i
			depth := smoothed[x]

			lo := x - p.ProminenceWindow
			if lo < left {
				lo = left
			}
			hi := x + p.ProminenceWindow
			if hi > right {
				hi = right
			}
			leftPeak := floats.Max(smoothed[lo:x])
			rightPeak := floats.Max(smoothed[x:hi])

			prominence := leftPeak
			if rightPeak < prominence {
				prominence = rightPeak
			}
			minima = append(minima, valley{x: x, depth: depth, prominence: prominence - depth})
		}
	}

	if len(minima) == 0 {
		// No minima at all: pure fallback, evenly spaced over the span.
		return evenlySpaced(left, regionWidth, valleyCount)
	}

	sort.SliceStable(minima, func(i, j int) bool {
		return minima[i].prominence > minima[j].prominence
	})

	var selected []int
	for _, m := range minima {
		tooClose := false
		for _, sv := range selected {
			if abs(m.x-sv) < p.MinSeparation {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}
		selected = append(selected, m.x)
		log.Printf("selected valley at x=%d (depth=%.0f, prominence=%.0f)", m.x, m.depth, m.prominence)
		if len(selected) >= valleyCount {
			break
		}
	}

	if len(selected) < valleyCount {
		log.Printf("only found %d of %d valleys, adding fallback positions", len(selected), valleyCount)
		segment := regionWidth / (valleyCount + 1)
		for i := 0; i < valleyCount; i++ {
			fx := left + segment*(i+1)
			tooClose := false
			for _, sv := range selected {
				if abs(fx-sv) < p.MinSeparation/2 {
					tooClose = true
					break
				}
			}
			if !tooClose && len(selected) < valleyCount {
				selected = append(selected, fx)
			}
		}
	}

	sort.Ints(selected)
	if len(selected) > valleyCount {
		selected = selected[:valleyCount]
	}
	return selected
}

// evenlySpaced places valleyCount separators uniformly over the occupied
// span, used when the profile yields no usable minima.
func evenlySpaced(left, regionWidth, valleyCount int) []int {
	segment := regionWidth / (valleyCount + 1)
	out := make([]int, 0, valleyCount)
	for i := 0; i < valleyCount; i++ {
		out = append(out, left+segment*(i+1))
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
