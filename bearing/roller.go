package bearing

import (
	"fmt"
	"math"

	"github.com/xBartM/Parametric-Slewing-Bearing/geom2d"
)

// BuildRoller derives the roller profile from the channel geometry:
// diameter is the channel side minus the rolling-side clearance on both
// race contacts, length is the channel side minus the base-side
// clearance on both ends. The corner chamfers are sized so the roller,
// tilted 45° in the channel, sits exactly flush with both bearing faces.
//
// The half-section outline, revolved about the roller's own axis, reads
// bottom to top: axis → base flat → 45° chamfer → rolling band →
// chamfer → base flat → axis.
//
// Pure and deterministic. Complexity: O(1).
//
// Errors: ErrRollerTooSmall when the clearances leave a non-positive
// diameter or length; ErrRollerChamfer when the flush-trim chamfer falls
// below the configured minimum or consumes the rolling band.
func BuildRoller(ch Channel, spec BearingSpec, cfg Config) (RollerProfile, error) {
	var (
		width    = 2 * spec.Envelope.HalfWidth
		diameter = ch.Side - 2*spec.RollerFit
		length   = ch.Side - 2*spec.RollerSlide
	)
	if diameter <= 0 || length <= 0 {
		return RollerProfile{}, fmt.Errorf("channel side %.4g with fit %g and slide %g: %w",
			ch.Side, spec.RollerFit, spec.RollerSlide, ErrRollerTooSmall)
	}

	// Corner cut depth that brings the tilted roller's axial extent down
	// to the bearing width; the flattened chamfer face is √2 times it.
	trim := (diameter + length - math.Sqrt2*width) / 2
	chamfer := math.Sqrt2 * trim
	if chamfer < cfg.RollerChamferMinLength-geomEps {
		return RollerProfile{}, fmt.Errorf("roller chamfer %.4g < minimum %.4g: %w",
			chamfer, cfg.RollerChamferMinLength, ErrRollerChamfer)
	}

	var (
		baseRadius = diameter/2 - trim // = (√2·width − length)/2
		shoulder   = length/2 - trim   // = (√2·width − diameter)/2
	)
	if baseRadius <= 0 || shoulder <= 0 {
		return RollerProfile{}, fmt.Errorf("chamfer %.4g leaves no base flat or rolling band: %w",
			chamfer, ErrRollerChamfer)
	}

	outline := geom2d.Profile{
		{X: 0, Y: -length / 2},
		{X: baseRadius, Y: -length / 2},
		{X: diameter / 2, Y: -shoulder},
		{X: diameter / 2, Y: shoulder},
		{X: baseRadius, Y: length / 2},
		{X: 0, Y: length / 2},
	}
	if err := outline.Validate(); err != nil {
		return RollerProfile{}, fmt.Errorf("roller outline: %w", err)
	}

	return RollerProfile{
		Diameter:      diameter,
		Length:        length,
		ChamferLength: chamfer,
		Outline:       outline,
	}, nil
}
