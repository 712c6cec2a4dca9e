package bearing

import (
	"math"

	"github.com/xBartM/Parametric-Slewing-Bearing/geom2d"
)

// ChannelHalfAngle is the half-angle of the roller channel cut. The
// crossed-roller arrangement fixes it at 45°: one cylindrical roller then
// bears both radial and axial load.
const ChannelHalfAngle = math.Pi / 4

// Envelope holds the dimensions derived from the raw inputs. It is
// produced once per run by Validate and immutable afterwards.
type Envelope struct {
	// OuterRadius is OD/2.
	OuterRadius float64
	// InnerRadius is ID/2.
	InnerRadius float64
	// HalfWidth is width/2, the axial centre of the channel.
	HalfWidth float64
	// ChannelDepth is (OD−ID)/2, the radial space available to the
	// channel and both race walls.
	ChannelDepth float64
}

// HighLeverage reports the advisory condition ChannelDepth ≥ ratio×width:
// a deep, narrow bearing puts a long lever arm on a thin section.
// Informational only — generation proceeds.
func (e Envelope) HighLeverage(ratio float64) bool {
	return e.ChannelDepth >= ratio*2*e.HalfWidth
}

// BearingSpec is the root input object: the five user scalars plus the
// validated envelope. Created once per invocation by NewSpec, read-only
// thereafter.
type BearingSpec struct {
	OuterDiameter float64
	InnerDiameter float64
	Width         float64
	// RollerFit is the clearance on the rolling contact side, applied
	// roller-to-race and roller-to-roller.
	RollerFit float64
	// RollerSlide is the clearance on the flat base side of the roller.
	RollerSlide float64

	Envelope Envelope
}

// NewSpec validates the five inputs and returns the immutable spec.
func NewSpec(od, id, width, rollerFit, rollerSlide float64) (BearingSpec, error) {
	env, err := Validate(od, id, width, rollerFit, rollerSlide)
	if err != nil {
		return BearingSpec{}, err
	}
	return BearingSpec{
		OuterDiameter: od,
		InnerDiameter: id,
		Width:         width,
		RollerFit:     rollerFit,
		RollerSlide:   rollerSlide,
		Envelope:      env,
	}, nil
}

// RaceRing identifies which of the two races a profile describes.
type RaceRing int

const (
	// InnerRace is the ring between the bore and the channel.
	InnerRace RaceRing = iota
	// OuterRace is the ring between the channel and the OD.
	OuterRace
)

func (r RaceRing) String() string {
	if r == InnerRace {
		return "inner race"
	}
	return "outer race"
}

// RaceProfile is the closed cross-section outline of one race in the
// (radial, axial) plane, after the 45° channel cut, the edge chamfers
// and the relief band. Revolving Outline about the bearing axis yields
// the race solid.
type RaceProfile struct {
	Ring RaceRing
	// RingRadius is the bore radius for the inner race, the OD radius
	// for the outer race.
	RingRadius float64
	// ChannelHalfAngle is fixed at 45° (π/4).
	ChannelHalfAngle float64
	// ChamferLength is the OD/bore corner chamfer leg length.
	ChamferLength float64
	// MinThickness is the computed wall thickness at mid-width, already
	// verified against the configured minimum.
	MinThickness float64
	// Outline is the closed polygon, counterclockwise in (r, z).
	Outline geom2d.Profile
}

// Channel is the derived geometry of the diagonal roller groove, handed
// from the race builder to the roller builder and the packing search.
type Channel struct {
	// PitchRadius is the mid-channel radius where roller centres sit.
	PitchRadius float64
	// Side is the channel width measured perpendicular across the
	// groove — the side of the 45°-rotated square cut.
	Side float64
	// HalfDiagonal is Side·√2/2: the square's half-extent along the
	// radial and axial directions.
	HalfDiagonal float64
	// ReliefWidth is the radial width of the band cut through the full
	// bearing width at the pitch radius, separating the two races.
	ReliefWidth float64
	// ChamferLength is the derived roller chamfer length: the flattened
	// distance along the chamfer face once the tilted roller is trimmed
	// flush with the bearing faces.
	ChamferLength float64
}

// RollerProfile is the roller's revolved half cross-section: a flat base,
// a 45° chamfer and the cylindrical rolling band, mirrored about the
// roller axis by revolution.
type RollerProfile struct {
	// Diameter is the nominal rolling-surface diameter.
	Diameter float64
	// Length is the flat-base to flat-base length along the roller axis.
	Length float64
	// ChamferLength is the flattened contact-face chamfer length,
	// ≥ Config.RollerChamferMinLength.
	ChamferLength float64
	// Outline is the half-section polygon in (radius, axial) coordinates,
	// x ≥ 0, closed along the roller axis.
	Outline geom2d.Profile
}
