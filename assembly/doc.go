// Package assembly combines race profiles, a roller profile and one
// accepted packing solution into a complete parametric description of a
// bearing — the language-agnostic handoff contract to an external
// geometry kernel.
//
// What:
//
//   - Synthesize — builds a Description: both race outlines plus an
//     ordered sequence of roller placements, each a (rotation,
//     translation) pair at its pitch-circle slot with the axis crossed
//     ±45° to match the channel.
//   - Kernel / Exporter — the ports a solid-modeling backend and a mesh
//     writer implement. The core never performs revolve, extrude or
//     boolean operations itself; it only emits data.
//   - WriteJSON — kernel-independent artifact writer used by the CLI.
//   - Description.Name — the artifact naming convention
//     b{OD}x{ID}x{W}_{RF}x{RS}_{N}.
//
// One Description is produced per accepted packing solution; the caller
// drives export of each to a separate artifact.
//
// Errors:
//
//   - ErrBadSolution: the packing solution is inconsistent with the
//     profiles it is being assembled with.
package assembly
