package assembly

import (
	"errors"
	"io"

	"github.com/xBartM/Parametric-Slewing-Bearing/bearing"
	"github.com/xBartM/Parametric-Slewing-Bearing/geom2d"
	"github.com/xBartM/Parametric-Slewing-Bearing/packing"
)

// ErrBadSolution indicates a packing solution inconsistent with the
// profiles it is being assembled with.
var ErrBadSolution = errors.New("assembly: packing solution inconsistent with profiles")

// Description is the complete parametric geometry of one bearing
// variant: profiles plus placement transforms, no kernel-specific
// operations. It is pure data, deterministic for identical inputs, and
// owned by the caller for the lifetime of one export.
type Description struct {
	Spec     bearing.BearingSpec   `json:"spec"`
	Inner    bearing.RaceProfile   `json:"inner_race"`
	Outer    bearing.RaceProfile   `json:"outer_race"`
	Roller   bearing.RollerProfile `json:"roller"`
	Solution packing.Solution      `json:"solution"`
	// Placements positions one roller instance per slot, ordered by
	// slot index around the pitch circle.
	Placements []geom2d.Placement `json:"placements"`
}

// Solid is an opaque handle to a 3D body produced by a Kernel. The core
// never inspects it.
type Solid interface{}

// Kernel is the port a solid-modeling backend implements: revolve,
// extrude and boolean-subtract primitives plus chamfering, consuming
// the profile and placement data emitted here.
type Kernel interface {
	// Revolve sweeps a closed profile about the vertical axis at x=0.
	Revolve(outline geom2d.Profile) (Solid, error)
	// Extrude sweeps a closed profile along the vertical axis.
	Extrude(outline geom2d.Profile, height float64) (Solid, error)
	// Subtract removes tool from base.
	Subtract(base, tool Solid) (Solid, error)
	// Place applies a rigid placement to a body.
	Place(s Solid, p geom2d.Placement) (Solid, error)
	// Union merges bodies into one.
	Union(parts ...Solid) (Solid, error)
}

// Exporter is the port a mesh/BREP writer implements.
type Exporter interface {
	// Export serializes a solid to w in the exporter's format.
	Export(w io.Writer, s Solid) error
}
