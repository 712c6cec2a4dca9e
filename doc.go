// Package slewbearing turns five scalar design inputs — outer diameter,
// inner diameter, width, roller fit and roller slide — into fully
// specified, print-in-place cross-roller slewing-bearing geometries.
//
// 🚀 What is slewbearing?
//
//	The hard part of a printable slewing bearing is not solid modeling
//	but dimensional constraint solving: deriving race cross-sections,
//	roller size and chamfer geometry that simultaneously satisfy
//	minimum-material, print-in-place clearance and circumferential
//	packing constraints, then enumerating every roller count for which
//	a consistent, collision-free layout exists.
//
// Under the hood, everything is organized under leaves-first subpackages:
//
//	geom2d/     — 2D profile primitives: points, closed outlines, placements
//	bearing/    — configuration, envelope validation, race & roller builders
//	packing/    — exhaustive roller-count search returning all valid layouts
//	assembly/   — parametric assembly descriptions + kernel/exporter ports
//	render/     — PNG cross-section and plan-view previews
//	configfile/ — YAML overrides for the printer/model constants
//	cmd/slewgen — command-line driver
//
// The core packages are pure: no I/O, no shared mutable state, every
// operation a deterministic function over immutable inputs. Solid
// modeling (revolve, extrude, boolean cut) and mesh export are pluggable
// backends consuming the emitted assembly data, never called by the core.
//
// Quick cross-section sketch (one race pair, roller crossed at 45°):
//
//	┌─────────┐     ┌─────────┐
//	│  inner  │  ◆  │  outer  │
//	│  race   │ ◆◆◆ │  race   │
//	│         │  ◆  │         │
//	└─────────┘     └─────────┘
//
// Start with bearing.Validate, then bearing.BuildRaces, bearing.BuildRoller,
// packing.Search and assembly.Synthesize — or let cmd/slewgen drive the
// whole pipeline.
package slewbearing
