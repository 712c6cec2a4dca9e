package packing

import (
	"math"

	"github.com/xBartM/Parametric-Slewing-Bearing/bearing"
)

// clearanceEps absorbs last-ulp rounding where a derived clearance sits
// exactly at the requested tolerance.
const clearanceEps = 1e-9

// Search enumerates every roller count in [opts.MinCount, Nmax] that
// packs the given roller into the channel without collision, where
// Nmax = ⌊pitch circumference / roller diameter⌋ — more rollers than
// that cannot fit even touching.
//
// Acceptance per candidate N:
//  1. spacing = 2π/N (exact integer divisor of the full turn);
//  2. chord between adjacent centres minus the diameter ≥ roller fit;
//  3. the roller footprint stays inside the channel wall by at least
//     the fit clearance measured normal to the contact;
//  4. the base-to-race gap derived from the channel honours the slide
//     clearance.
//
// Checks 3 and 4 do not depend on N; when either fails no count is
// feasible and the empty set is returned. Results are ordered by
// increasing N. An empty result is a valid outcome, never an error.
//
// Complexity: O(Nmax). Deterministic; safe for concurrent callers.
func Search(spec bearing.BearingSpec, ch bearing.Channel, roller bearing.RollerProfile, opts Options) []Solution {
	if roller.Diameter <= 0 || ch.PitchRadius <= 0 {
		return nil
	}

	minCount := opts.MinCount
	if minCount < 2 {
		minCount = 2
	}
	if opts.EvenOnly && minCount%2 == 1 {
		minCount++
	}
	maxCount := int(2 * math.Pi * ch.PitchRadius / roller.Diameter)

	// N-independent clearances: roller corner to channel wall, and the
	// base flat to the opposing race along the roller axis.
	radial := ch.HalfDiagonal - (roller.Diameter+roller.Length)*math.Sqrt2/4
	baseGap := (ch.Side - roller.Length) / 2
	if radial < spec.RollerFit*math.Sqrt2/2-clearanceEps || baseGap < spec.RollerSlide-clearanceEps {
		return nil
	}

	step := 1
	if opts.EvenOnly {
		step = 2
	}

	var out []Solution
	for n := minCount; n <= maxCount; n += step {
		spacing := 2 * math.Pi / float64(n)
		chord := 2 * ch.PitchRadius * math.Sin(math.Pi/float64(n))
		gap := chord - roller.Diameter
		if gap < spec.RollerFit-clearanceEps {
			// Chords shrink monotonically with N; no larger count fits.
			break
		}
		out = append(out, Solution{
			Count:           n,
			PitchRadius:     ch.PitchRadius,
			AngularSpacing:  spacing,
			RollerDiameter:  roller.Diameter,
			RollerGap:       gap,
			BaseGap:         baseGap,
			RadialClearance: radial,
		})
	}
	return out
}
