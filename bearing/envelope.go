package bearing

import "fmt"

// Validate checks that the five raw inputs form a physically realizable
// bearing envelope and derives the working dimensions. Checks run in
// order: positivity, diameter ordering, width versus channel depth.
//
// Pure function: no side effects beyond the returned Envelope or error.
//
// Errors: ErrNonPositiveDimension, ErrInvalidOrdering,
// ErrWidthExceedsChannel — each wrapped with the offending value.
func Validate(od, id, width, rollerFit, rollerSlide float64) (Envelope, error) {
	for _, d := range [...]struct {
		name  string
		value float64
	}{
		{"outer diameter", od},
		{"inner diameter", id},
		{"width", width},
		{"roller fit", rollerFit},
		{"roller slide", rollerSlide},
	} {
		if d.value <= 0 {
			return Envelope{}, fmt.Errorf("%s = %g: %w", d.name, d.value, ErrNonPositiveDimension)
		}
	}

	if od <= id {
		return Envelope{}, fmt.Errorf("OD %g vs ID %g: %w", od, id, ErrInvalidOrdering)
	}

	depth := (od - id) / 2
	if width >= depth {
		return Envelope{}, fmt.Errorf("width %g vs channel depth %g: %w", width, depth, ErrWidthExceedsChannel)
	}

	return Envelope{
		OuterRadius:  od / 2,
		InnerRadius:  id / 2,
		HalfWidth:    width / 2,
		ChannelDepth: depth,
	}, nil
}
