// Package render draws quick-look PNG previews of a synthesized bearing:
// a cross-section through the bearing axis and a plan view of the roller
// packing. Previews are for eyeballing a variant before committing to a
// slow kernel export; they are deterministic for identical descriptions.
package render
