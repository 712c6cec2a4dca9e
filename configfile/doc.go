// Package configfile loads user overrides for the printer and model
// constants from a YAML file and maps them onto bearing.Config.
//
// Absent file or absent keys fall back to bearing.DefaultConfig(); the
// merged result is validated before use. Example file:
//
//	line_thickness: 0.6
//	line_height: 0.3
//	outer_race_chamfer: 0.6
package configfile
