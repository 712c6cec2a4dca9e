package assembly

import (
	"fmt"
	"math"

	"github.com/xBartM/Parametric-Slewing-Bearing/bearing"
	"github.com/xBartM/Parametric-Slewing-Bearing/geom2d"
	"github.com/xBartM/Parametric-Slewing-Bearing/packing"
)

// closureEps bounds |spacing×N − 2π| for a consistent solution; float64
// division keeps the product far inside this.
const closureEps = 1e-9

// diameterEps bounds the allowed mismatch between the solution's roller
// diameter and the profile actually being placed.
const diameterEps = 1e-9

// Synthesize combines the race profiles, the roller profile and one
// accepted packing solution into a Description. Rollers are placed at
// exact multiples of the angular spacing around the pitch circle, tilts
// alternating +45°/−45° so adjacent rollers cross.
//
// Deterministic: identical inputs yield identical Descriptions.
//
// Errors: ErrBadSolution when the solution's count, spacing or roller
// diameter disagrees with the profiles.
func Synthesize(spec bearing.BearingSpec, inner, outer bearing.RaceProfile, roller bearing.RollerProfile, sol packing.Solution) (Description, error) {
	if sol.Count < 2 {
		return Description{}, fmt.Errorf("count %d: %w", sol.Count, ErrBadSolution)
	}
	if math.Abs(sol.AngularSpacing*float64(sol.Count)-2*math.Pi) > closureEps {
		return Description{}, fmt.Errorf("spacing %.17g does not close the circle for count %d: %w",
			sol.AngularSpacing, sol.Count, ErrBadSolution)
	}
	if math.Abs(sol.RollerDiameter-roller.Diameter) > diameterEps {
		return Description{}, fmt.Errorf("solution diameter %g vs roller %g: %w",
			sol.RollerDiameter, roller.Diameter, ErrBadSolution)
	}

	placements := make([]geom2d.Placement, sol.Count)
	for i := range placements {
		tilt := bearing.ChannelHalfAngle
		if i%2 == 1 {
			tilt = -bearing.ChannelHalfAngle
		}
		placements[i] = geom2d.Placement{
			Tilt:    tilt,
			Azimuth: float64(i) * sol.AngularSpacing,
			Offset:  [3]float64{0, -sol.PitchRadius, spec.Envelope.HalfWidth},
		}
	}

	return Description{
		Spec:       spec,
		Inner:      inner,
		Outer:      outer,
		Roller:     roller,
		Solution:   sol,
		Placements: placements,
	}, nil
}
