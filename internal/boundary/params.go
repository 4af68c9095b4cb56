package boundary

// Params holds the group boundary detection tunables. The defaults are
// calibrated for a row of people split into a light-dress group on the
// left and a dark-suit group on the right.
type Params struct {
	// BinarizeThreshold separates foreground from background in the mask.
	BinarizeThreshold uint8

	// SmoothWindow is the moving-average window for the valley estimator.
	// Wider than the per-person window because the group gap is broader.
	SmoothWindow int

	// SearchBandMin and SearchBandMax bound the valley search to a
	// fraction of the image width. The group boundary is expected near
	// the middle of the frame.
	SearchBandMin float64
	SearchBandMax float64

	// ProminenceWindow is the neighborhood for the valley prominence
	// report.
	ProminenceWindow int

	// Suit HSV range (OpenCV scale: hue 0-180, sat/val 0-255). Dark suit
	// fabric sits in the blue-violet hue band with moderate-to-high
	// saturation and low-to-moderate value.
	SuitHueMin, SuitHueMax float64
	SuitSatMin, SuitSatMax float64
	SuitValMin, SuitValMax float64

	// CumulativeFraction is the share of all suit-colored pixels that
	// must have been seen (scanning left to right) before a column counts
	// as the start of the suit group.
	CumulativeFraction float64

	// AgreementDistance is how close (in columns) the valley and color
	// estimates must be for the valley estimate to win outright.
	AgreementDistance int

	// ColorShift is subtracted from the color estimate when the two
	// estimators disagree, biasing the cut away from the left group's
	// silhouette.
	ColorShift int
}

// DefaultParams returns the default boundary detection parameters.
func DefaultParams() Params {
	return Params{
		BinarizeThreshold:  127,
		SmoothWindow:       41,
		SearchBandMin:      0.4,
		SearchBandMax:      0.6,
		ProminenceWindow:   150,
		SuitHueMin:         90,
		SuitHueMax:         145,
		SuitSatMin:         15,
		SuitSatMax:         255,
		SuitValMin:         15,
		SuitValMax:         180,
		CumulativeFraction: 0.10,
		AgreementDistance:  50,
		ColorShift:         10,
	}
}

// WithSuitHSV returns a copy of params with a custom suit color range.
func (p Params) WithSuitHSV(hMin, hMax, sMin, sMax, vMin, vMax float64) Params {
	p.SuitHueMin = hMin
	p.SuitHueMax = hMax
	p.SuitSatMin = sMin
	p.SuitSatMax = sMax
	p.SuitValMin = vMin
	p.SuitValMax = vMax
	return p
}

// WithSearchBand returns a copy of params with a custom valley search band.
func (p Params) WithSearchBand(lo, hi float64) Params {
	p.SearchBandMin = lo
	p.SearchBandMax = hi
	return p
}
