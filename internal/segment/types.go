package segment

import (
	"silhouette-tracer/internal/boundary"
	"silhouette-tracer/internal/projection"
	"silhouette-tracer/pkg/geometry"
)

// Group labels which clothing group a contour belongs to.
type Group string

const (
	// GroupDress is the left-hand group (dress wearers).
	GroupDress Group = "dress"
	// GroupSuit is the right-hand group (suit wearers).
	GroupSuit Group = "suit"
)

// Contour is the simplified silhouette boundary of one person.
type Contour struct {
	Points  []geometry.PointInt // Simplified closed polygon, pixel coordinates
	Group   Group               // Which clothing group the person belongs to
	CenterX int                 // Area-weighted centroid x, used for left-to-right ordering
	Area    float64             // Enclosed area of the original (unsimplified) contour
}

// Result holds the per-person contours in left-to-right order plus any
// soft-failure warnings collected along the way.
type Result struct {
	Contours  []Contour
	BoundaryX int
	Warnings  []string
}

// Params holds the segmentation tunables.
type Params struct {
	// BinarizeThreshold separates foreground from background in the mask.
	BinarizeThreshold uint8

	// CloseKernelSize is the square kernel for the morphological close
	// that fills small holes in the mask before slicing.
	CloseKernelSize int

	// EpsilonFactor scales the polygon simplification tolerance by the
	// contour perimeter.
	EpsilonFactor float64

	// PeoplePerGroup is how many silhouettes each clothing group holds.
	PeoplePerGroup int

	// Projection and Boundary carry the tunables of the sub-analyzers.
	Projection projection.Params
	Boundary   boundary.Params
}

// DefaultParams returns segmentation parameters tuned for a row of six
// people in two groups of three.
func DefaultParams() Params {
	return Params{
		BinarizeThreshold: 127,
		CloseKernelSize:   5,
		EpsilonFactor:     0.0015,
		PeoplePerGroup:    3,
		Projection:        projection.DefaultParams(),
		Boundary:          boundary.DefaultParams(),
	}
}

// WithEpsilonFactor returns a copy of params with a custom simplification
// factor.
func (p Params) WithEpsilonFactor(f float64) Params {
	p.EpsilonFactor = f
	return p
}

// WithPeoplePerGroup returns a copy of params with a custom group size.
func (p Params) WithPeoplePerGroup(n int) Params {
	p.PeoplePerGroup = n
	return p
}
