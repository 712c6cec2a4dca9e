package geom2d

// Placement is a rigid transform positioning one revolved profile inside
// an assembly: first tilt the part about its local horizontal axis, then
// translate to Offset, then rotate about the assembly's vertical axis by
// Azimuth. Pure data — the external geometry kernel applies it.
type Placement struct {
	// Tilt is the rotation about the part's local horizontal axis, in
	// radians. Crossed rollers alternate between +π/4 and −π/4.
	Tilt float64

	// Azimuth is the rotation about the assembly axis, in radians,
	// applied after the translation.
	Azimuth float64

	// Offset is the (x, y, z) translation applied between the tilt and
	// the azimuth rotation.
	Offset [3]float64
}
