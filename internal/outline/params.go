package outline

// Params holds the name-tag and hit-area placement tunables, in pixels.
type Params struct {
	// NameTagRise is how far above the silhouette's topmost point the
	// name tag anchors.
	NameTagRise int

	// HitPadding expands the hit-test box on each side.
	HitPadding int
}

// DefaultParams returns placement defaults calibrated for a roughly
// 2000-pixel-wide photo.
func DefaultParams() Params {
	return Params{
		NameTagRise: 50,
		HitPadding:  10,
	}
}

// WithNameTagRise returns a copy of params with a custom name-tag rise.
func (p Params) WithNameTagRise(rise int) Params {
	p.NameTagRise = rise
	return p
}

// WithHitPadding returns a copy of params with a custom hit-box padding.
func (p Params) WithHitPadding(pad int) Params {
	p.HitPadding = pad
	return p
}
