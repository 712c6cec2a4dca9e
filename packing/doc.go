// Package packing enumerates every roller count that yields a
// consistent, collision-free circumferential layout for a derived
// bearing geometry.
//
// What:
//
//   - Search — an exhaustive integer enumeration over a bounded count
//     range, not an optimization: every feasible count is returned, in
//     increasing order, and the caller picks which to export.
//
// How:
//
//	For each candidate N the angular spacing is 2π/N computed as an
//	exact integer division of the full turn — never a running sum of
//	per-roller angles, so no rounding accumulates. A candidate is
//	accepted when the chord between adjacent roller centres leaves at
//	least the rolling-side clearance between rollers, the roller
//	footprint stays inside the channel walls, and the base-side
//	clearance is honoured.
//
// An empty result is a valid outcome, not an error: it means no roller
// count fits this envelope, and callers should suggest adjusting width,
// fit or slide rather than fail loudly.
//
// Closure tolerance: spacing×N is exact up to ordinary float64 division
// error; tests verify |spacing×N − 2π| ≤ 1e−9.
//
// Candidate evaluations are independent, so callers may shard the range
// if they wish; Search itself stays single-threaded and deterministic.
//
// Complexity: O(Nmax) time, O(results) memory.
package packing
