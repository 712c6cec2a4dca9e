package bearing

import (
	"fmt"
	"math"

	"github.com/xBartM/Parametric-Slewing-Bearing/geom2d"
)

// geomEps absorbs last-ulp rounding in derived-versus-configured
// comparisons; wall sizing places the binding race exactly at its
// minimum, so strict comparison would flip on rounding alone.
const geomEps = 1e-9

// BuildRaces derives both race cross-sections and the channel geometry
// from a validated spec.
//
// Algorithm:
//  1. Place the pitch radius mid-channel: Rp = (Ri+Ro)/2.
//  2. Size the 45°-rotated square channel cut, centred at (Rp, W/2), as
//     the largest square satisfying two bounds:
//     – wall bound: its radial half-diagonal leaves the configured
//     minimum wall on each race at mid-width;
//     – width bound: a roller filling it still keeps a rolling band and
//     base flat at least one chamfer-minimum wide across the width.
//  3. Derive the roller chamfer length c (flattened-face distance) from
//     the requirement that the tilted roller sits flush with both
//     bearing faces; reject c below the configured printable minimum.
//  4. Size the relief band — the radial strip cut through the full width
//     at the pitch radius that separates the races — from the combined
//     clearances, c, and the edge-break depth.
//  5. Verify the remaining mid-width wall of each race against its
//     configured minimum, then emit both outlines with OD/bore corner
//     chamfers applied.
//
// Pure and deterministic. Complexity: O(1).
//
// Errors: ErrBadConfig, ErrRollerTooSmall (the envelope affords no
// channel at all), ErrRollerChamfer, ErrInsufficientWallThickness —
// wrapped with the offending race or dimension named.
func BuildRaces(spec BearingSpec, cfg Config) (inner, outer RaceProfile, ch Channel, err error) {
	if err = cfg.Validate(); err != nil {
		return RaceProfile{}, RaceProfile{}, Channel{}, err
	}

	var (
		env       = spec.Envelope
		width     = 2 * env.HalfWidth
		pitch     = (env.InnerRadius + env.OuterRadius) / 2
		halfDepth = env.ChannelDepth / 2
		wallMin   = math.Max(cfg.InnerRaceMinThickness, cfg.OuterRaceMinThickness)
	)

	// Channel side: wall-driven bound capped by the width-driven bound.
	sideWall := math.Sqrt2 * (halfDepth - wallMin)
	sideWidth := math.Sqrt2*width - cfg.RollerChamferMinLength
	if sideWall <= 0 {
		return RaceProfile{}, RaceProfile{}, Channel{},
			fmt.Errorf("channel depth %g cannot keep the %.4g minimum walls: %w",
				env.ChannelDepth, wallMin, ErrInsufficientWallThickness)
	}
	if sideWidth <= 0 {
		return RaceProfile{}, RaceProfile{}, Channel{},
			fmt.Errorf("width %g leaves no roller above the %.4g chamfer minimum: %w",
				width, cfg.RollerChamferMinLength, ErrRollerTooSmall)
	}
	side := math.Min(sideWall, sideWidth)

	// Flattened chamfer length once the tilted roller is trimmed flush
	// with the bearing faces.
	chamfer := math.Sqrt2*(side-spec.RollerFit-spec.RollerSlide) - width
	if chamfer < cfg.RollerChamferMinLength-geomEps {
		return RaceProfile{}, RaceProfile{}, Channel{},
			fmt.Errorf("roller chamfer %.4g < minimum %.4g (decrease width, decrease roller slide or widen the envelope): %w",
				chamfer, cfg.RollerChamferMinLength, ErrRollerChamfer)
	}

	halfDiag := side * math.Sqrt2 / 2
	relief := (spec.RollerFit+spec.RollerSlide)*math.Sqrt2/2 + chamfer + 2*cfg.InnerRaceChamfer

	// Mid-width wall: whichever of the channel diamond and the relief
	// band reaches further into the ring governs.
	thickness := halfDepth - math.Max(halfDiag, relief/2)
	if thickness < cfg.InnerRaceMinThickness-geomEps {
		return RaceProfile{}, RaceProfile{}, Channel{},
			fmt.Errorf("%s thickness %.4g < minimum %.4g: %w",
				InnerRace, thickness, cfg.InnerRaceMinThickness, ErrInsufficientWallThickness)
	}
	if thickness < cfg.OuterRaceMinThickness-geomEps {
		return RaceProfile{}, RaceProfile{}, Channel{},
			fmt.Errorf("%s thickness %.4g < minimum %.4g: %w",
				OuterRace, thickness, cfg.OuterRaceMinThickness, ErrInsufficientWallThickness)
	}

	ch = Channel{
		PitchRadius:   pitch,
		Side:          side,
		HalfDiagonal:  halfDiag,
		ReliefWidth:   relief,
		ChamferLength: chamfer,
	}

	inner = RaceProfile{
		Ring:             InnerRace,
		RingRadius:       env.InnerRadius,
		ChannelHalfAngle: ChannelHalfAngle,
		ChamferLength:    cfg.OuterRaceChamfer,
		MinThickness:     thickness,
		Outline:          innerOutline(env, ch, width, cfg.OuterRaceChamfer),
	}
	outer = RaceProfile{
		Ring:             OuterRace,
		RingRadius:       env.OuterRadius,
		ChannelHalfAngle: ChannelHalfAngle,
		ChamferLength:    cfg.OuterRaceChamfer,
		MinThickness:     thickness,
		Outline:          outerOutline(env, ch, width, cfg.OuterRaceChamfer),
	}

	if err = inner.Outline.Validate(); err != nil {
		return RaceProfile{}, RaceProfile{}, Channel{}, fmt.Errorf("%s outline: %w", InnerRace, err)
	}
	if err = outer.Outline.Validate(); err != nil {
		return RaceProfile{}, RaceProfile{}, Channel{}, fmt.Errorf("%s outline: %w", OuterRace, err)
	}

	return inner, outer, ch, nil
}

// innerOutline builds the inner race polygon, counterclockwise in (r, z):
// bore wall with corner chamfers on the left, race face on the right with
// the channel notch where the 45° diamond reaches past the relief band.
// When the diamond pierces the bearing faces (notch half-height beyond
// the half-width), the face verticals vanish and the notch is clipped at
// the face planes, keeping every vertex inside the [0, width] band.
func innerOutline(env Envelope, ch Channel, width, edge float64) geom2d.Profile {
	var (
		ri    = env.InnerRadius
		face  = ch.PitchRadius - ch.ReliefWidth/2
		mid   = width / 2
		notch = ch.HalfDiagonal - ch.ReliefWidth/2
	)

	if notch >= mid {
		reach := ch.PitchRadius - (ch.HalfDiagonal - mid)
		return geom2d.Profile{
			{X: ri + edge, Y: 0},
			{X: reach, Y: 0},
			{X: ch.PitchRadius - ch.HalfDiagonal, Y: mid},
			{X: reach, Y: width},
			{X: ri + edge, Y: width},
			{X: ri, Y: width - edge},
			{X: ri, Y: edge},
		}
	}

	pts := geom2d.Profile{
		{X: ri + edge, Y: 0},
		{X: face, Y: 0},
	}
	if notch > 0 {
		pts = append(pts,
			geom2d.Pt(face, mid-notch),
			geom2d.Pt(ch.PitchRadius-ch.HalfDiagonal, mid),
			geom2d.Pt(face, mid+notch),
		)
	}
	return append(pts,
		geom2d.Pt(face, width),
		geom2d.Pt(ri+edge, width),
		geom2d.Pt(ri, width-edge),
		geom2d.Pt(ri, edge),
	)
}

// outerOutline mirrors innerOutline for the outer race: OD wall with
// corner chamfers on the right, notched race face on the left, the notch
// clipped at the face planes when the diamond pierces them.
func outerOutline(env Envelope, ch Channel, width, edge float64) geom2d.Profile {
	var (
		ro    = env.OuterRadius
		face  = ch.PitchRadius + ch.ReliefWidth/2
		mid   = width / 2
		notch = ch.HalfDiagonal - ch.ReliefWidth/2
	)

	if notch >= mid {
		reach := ch.PitchRadius + (ch.HalfDiagonal - mid)
		return geom2d.Profile{
			{X: reach, Y: 0},
			{X: ro - edge, Y: 0},
			{X: ro, Y: edge},
			{X: ro, Y: width - edge},
			{X: ro - edge, Y: width},
			{X: reach, Y: width},
			{X: ch.PitchRadius + ch.HalfDiagonal, Y: mid},
		}
	}

	pts := geom2d.Profile{
		{X: face, Y: 0},
		{X: ro - edge, Y: 0},
		{X: ro, Y: edge},
		{X: ro, Y: width - edge},
		{X: ro - edge, Y: width},
		{X: face, Y: width},
	}
	if notch > 0 {
		pts = append(pts,
			geom2d.Pt(face, mid+notch),
			geom2d.Pt(ch.PitchRadius+ch.HalfDiagonal, mid),
			geom2d.Pt(face, mid-notch),
		)
	}
	return pts
}
