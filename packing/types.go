package packing

// Solution is one accepted roller-count layout: the count paired with
// the geometric parameters that make it valid and the clearance margins
// it actually achieves. Solutions are independent of each other; each
// one produces a distinct output artifact.
type Solution struct {
	// Count is the number of rollers N.
	Count int
	// PitchRadius is the radius of the circle the roller centres follow.
	PitchRadius float64
	// AngularSpacing is 2π/Count, the exact per-roller angle in radians.
	AngularSpacing float64
	// RollerDiameter is the nominal roller diameter placed at each slot.
	RollerDiameter float64
	// RollerGap is the achieved clearance between adjacent rollers at
	// the pitch radius: chord − diameter.
	RollerGap float64
	// BaseGap is the achieved clearance between a roller base and the
	// opposing race, along the roller axis.
	BaseGap float64
	// RadialClearance is the achieved margin between the roller corner
	// and the channel wall in the radial direction.
	RadialClearance float64
}

// Options bounds the roller-count enumeration.
type Options struct {
	// MinCount is the smallest candidate count. The upper bound is
	// derived from the pitch circumference and the roller diameter.
	MinCount int
	// EvenOnly restricts the search to even counts. The crossed-roller
	// pattern alternates ±45° tilt, which only closes around the circle
	// for an even number of rollers.
	EvenOnly bool
}

// DefaultOptions enumerates even counts from 2 upward, matching the
// alternating-tilt crossed arrangement.
func DefaultOptions() Options {
	return Options{
		MinCount: 2,
		EvenOnly: true,
	}
}
