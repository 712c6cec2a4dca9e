package bearing

import "fmt"

//-----------------------------------------------------------------------------
// Printer-process defaults
//   expressed in the same millimetre units as the bearing dimensions.
//-----------------------------------------------------------------------------

const (
	// DefaultLineThickness is the extrusion line width of the target printer.
	DefaultLineThickness = 0.4
	// DefaultLineHeight is the layer height of the target printer.
	DefaultLineHeight = 0.2
	// DefaultLeverageRatio is the channel-depth : width ratio beyond which
	// the envelope is flagged as high-leverage. Advisory only.
	DefaultLeverageRatio = 3.0
)

//-----------------------------------------------------------------------------
// Derived model defaults
//   wall and chamfer minimums counted in printer lines, following the rule
//   of three perimeters for a wall that survives as a single piece.
//-----------------------------------------------------------------------------

const (
	minThicknessLines = 3 // perimeter lines per race wall
	minChamferLines   = 3 // lines of the roller chamfer touching the bed
)

// Config holds every user-overridable constant consumed by the race and
// roller builders. It is an immutable value: construct it once (usually
// via DefaultConfig, optionally overridden from a YAML file) and pass it
// by value into each builder.
type Config struct {
	// LineThickness is the printer's extrusion line width.
	LineThickness float64
	// LineHeight is the printer's layer height.
	LineHeight float64
	// InnerRaceMinThickness is the minimum inner race wall at mid-width.
	InnerRaceMinThickness float64
	// OuterRaceMinThickness is the minimum outer race wall at mid-width.
	OuterRaceMinThickness float64
	// RollerChamferMinLength is the minimum flattened length of the
	// roller's contact-face chamfer — the lines touching the print bed.
	// A hard floor, not a target: shorter chamfers print worse but bear
	// more load, so the builder never widens it beyond what the
	// geometry demands.
	RollerChamferMinLength float64
	// InnerRaceChamfer is the edge-break depth applied where the relief
	// band meets the race faces.
	InnerRaceChamfer float64
	// OuterRaceChamfer is the chamfer applied to the OD and bore edges.
	OuterRaceChamfer float64
	// LeverageRatio is the channel-depth : width ratio that triggers the
	// advisory high-leverage flag on the envelope.
	LeverageRatio float64
}

// DefaultConfig returns the configuration for a common 0.4 mm nozzle /
// 0.2 mm layer FDM process:
//
//	LineThickness          0.4
//	LineHeight             0.2
//	InnerRaceMinThickness  1.2  (3 lines)
//	OuterRaceMinThickness  1.2  (3 lines)
//	RollerChamferMinLength 1.2  (3 lines)
//	InnerRaceChamfer       0.2  (1 layer)
//	OuterRaceChamfer       0.4  (1 line)
//	LeverageRatio          3.0
func DefaultConfig() Config {
	return Config{
		LineThickness:          DefaultLineThickness,
		LineHeight:             DefaultLineHeight,
		InnerRaceMinThickness:  minThicknessLines * DefaultLineThickness,
		OuterRaceMinThickness:  minThicknessLines * DefaultLineThickness,
		RollerChamferMinLength: minChamferLines * DefaultLineThickness,
		InnerRaceChamfer:       1 * DefaultLineHeight,
		OuterRaceChamfer:       1 * DefaultLineThickness,
		LeverageRatio:          DefaultLeverageRatio,
	}
}

// Validate reports ErrBadConfig, wrapped with the offending constant
// named, when any constant is not positive.
func (c Config) Validate() error {
	for _, f := range [...]struct {
		name  string
		value float64
	}{
		{"line thickness", c.LineThickness},
		{"line height", c.LineHeight},
		{"inner race min thickness", c.InnerRaceMinThickness},
		{"outer race min thickness", c.OuterRaceMinThickness},
		{"roller chamfer min length", c.RollerChamferMinLength},
		{"inner race chamfer", c.InnerRaceChamfer},
		{"outer race chamfer", c.OuterRaceChamfer},
		{"leverage ratio", c.LeverageRatio},
	} {
		if f.value <= 0 {
			return fmt.Errorf("%s = %g: %w", f.name, f.value, ErrBadConfig)
		}
	}
	return nil
}
