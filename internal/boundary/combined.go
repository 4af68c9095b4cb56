package boundary

import (
	"errors"
	"log"

	"gocv.io/x/gocv"
)

// CombinedStrategy reconciles the valley and color estimators.
//
// Trust rule: when the two estimates land within AgreementDistance of
// each other, the valley wins — it is more precise at the actual gap
// between silhouettes. When they disagree, the color estimate wins,
// shifted left by ColorShift so the cut does not clip into the left
// group. This asymmetric rule is an empirical heuristic tuned against the
// reference photo, not a derived one; keep the defaults for compatible
// output.
type CombinedStrategy struct {
	Valley Strategy
	Color  Strategy
	Params Params
}

// NewCombinedStrategy builds the default valley+color strategy.
func NewCombinedStrategy(p Params) CombinedStrategy {
	return CombinedStrategy{
		Valley: ValleyStrategy{Params: p},
		Color:  ColorStrategy{Params: p},
		Params: p,
	}
}

// Detect implements Strategy.
func (s CombinedStrategy) Detect(hsv, mask gocv.Mat) (int, error) {
	valleyX, err := s.Valley.Detect(hsv, mask)
	if err != nil {
		return 0, err
	}

	colorX, err := s.Color.Detect(hsv, mask)
	if err != nil {
		if errors.Is(err, ErrNoSuitPixels) {
			// No color signal at all: the valley estimate stands alone.
			log.Printf("group boundary: x=%d (valley only, no suit pixels)", valleyX)
			return valleyX, nil
		}
		return 0, err
	}

	diff := valleyX - colorX
	if diff < 0 {
		diff = -diff
	}
	if diff < s.Params.AgreementDistance {
		log.Printf("group boundary: x=%d (valley, agrees with color at x=%d)", valleyX, colorX)
		return valleyX, nil
	}

	x := colorX - s.Params.ColorShift
	log.Printf("group boundary: x=%d (color, adjusted; valley was x=%d)", x, valleyX)
	return x, nil
}
