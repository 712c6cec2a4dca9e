package configfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xBartM/Parametric-Slewing-Bearing/bearing"
)

// dto mirrors the YAML schema. Pointer fields distinguish "absent" from
// an explicit zero, so partial override files work.
type dto struct {
	LineThickness          *float64 `yaml:"line_thickness"`
	LineHeight             *float64 `yaml:"line_height"`
	InnerRaceMinThickness  *float64 `yaml:"inner_race_min_thickness"`
	OuterRaceMinThickness  *float64 `yaml:"outer_race_min_thickness"`
	RollerChamferMinLength *float64 `yaml:"roller_chamfer_min_length"`
	InnerRaceChamfer       *float64 `yaml:"inner_race_chamfer"`
	OuterRaceChamfer       *float64 `yaml:"outer_race_chamfer"`
	LeverageRatio          *float64 `yaml:"leverage_ratio"`
}

// Load reads path and returns DefaultConfig with the file's overrides
// applied. An empty path returns the defaults unchanged. The merged
// config is validated; a non-positive constant surfaces as
// bearing.ErrBadConfig.
func Load(path string) (bearing.Config, error) {
	cfg := bearing.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return bearing.Config{}, fmt.Errorf("configfile: read %s: %w", path, err)
	}

	var d dto
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return bearing.Config{}, fmt.Errorf("configfile: parse %s: %w", path, err)
	}

	apply(&cfg.LineThickness, d.LineThickness)
	apply(&cfg.LineHeight, d.LineHeight)
	apply(&cfg.InnerRaceMinThickness, d.InnerRaceMinThickness)
	apply(&cfg.OuterRaceMinThickness, d.OuterRaceMinThickness)
	apply(&cfg.RollerChamferMinLength, d.RollerChamferMinLength)
	apply(&cfg.InnerRaceChamfer, d.InnerRaceChamfer)
	apply(&cfg.OuterRaceChamfer, d.OuterRaceChamfer)
	apply(&cfg.LeverageRatio, d.LeverageRatio)

	if err := cfg.Validate(); err != nil {
		return bearing.Config{}, fmt.Errorf("configfile: %s: %w", path, err)
	}
	return cfg, nil
}

func apply(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
