// Package bearing derives manufacturable cross-roller slewing-bearing
// geometry from five scalar inputs: outer diameter, inner diameter,
// width, roller fit and roller slide.
//
// What:
//
//   - Validate — checks the raw inputs form a physically realizable
//     envelope and derives radii, half-width and channel depth.
//   - BuildRaces — derives the inner and outer race cross-sections: the
//     45° channel cut, OD/bore edge chamfers and the relief band that
//     separates the races for print-in-place operation.
//   - BuildRoller — derives the roller's revolved half-section from the
//     channel geometry with fit/slide clearances subtracted.
//
// Channel sizing:
//
//	The 45° square channel is the largest that both preserves the
//	configured minimum wall on each race at mid-width and leaves the
//	roller a real rolling band and base flat across the bearing width.
//	All chamfer lengths are the straight-line distance along the
//	flattened chamfer face — derived values, never inputs.
//
// Every function is pure and deterministic: no I/O, no logging, no
// state shared between invocations. Infeasible configurations surface
// as sentinel errors naming the offending dimension; they are never
// silently clamped.
//
// Errors:
//
//   - ErrNonPositiveDimension: an input is zero or negative.
//   - ErrInvalidOrdering: outer diameter not larger than inner.
//   - ErrWidthExceedsChannel: width ≥ (OD−ID)/2, so the race cannot
//     contain the diagonal roller channel.
//   - ErrInsufficientWallThickness: a race would be thinner than its
//     configured minimum at mid-width.
//   - ErrRollerTooSmall: clearances leave a non-positive roller.
//   - ErrRollerChamfer: the roller's face chamfer would be shorter than
//     the configured printable minimum.
//   - ErrBadConfig: a configuration constant is not positive.
//
// Complexity: every operation is O(1) arithmetic plus O(1)-sized
// outline construction.
package bearing
