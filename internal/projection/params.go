package projection

// Params holds the valley detection tunables. The defaults are calibrated
// for people standing in a row on a roughly 2000-pixel-wide photo.
type Params struct {
	// BinarizeThreshold separates foreground from background when the
	// mask carries per-pixel confidence rather than strict 0/255.
	BinarizeThreshold uint8

	// SmoothWindow is the moving-average window applied to the column
	// profile before minima detection. Must be odd.
	SmoothWindow int

	// ProminenceWindow is how far (in columns) to look on each side of a
	// candidate valley for the neighboring peaks that define its
	// prominence.
	ProminenceWindow int

	// MinSeparation is the minimum distance in columns between two
	// selected valleys — roughly the minimum width of one person.
	MinSeparation int
}

// DefaultParams returns the default valley detection parameters.
func DefaultParams() Params {
	return Params{
		BinarizeThreshold: 127,
		SmoothWindow:      31,
		ProminenceWindow:  100,
		MinSeparation:     100,
	}
}

// WithSmoothWindow returns a copy of params with a custom smoothing window.
func (p Params) WithSmoothWindow(window int) Params {
	p.SmoothWindow = window
	return p
}

// WithMinSeparation returns a copy of params with a custom minimum
// valley separation.
func (p Params) WithMinSeparation(sep int) Params {
	p.MinSeparation = sep
	return p
}
