package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/xBartM/Parametric-Slewing-Bearing/assembly"
	"github.com/xBartM/Parametric-Slewing-Bearing/bearing"
	"github.com/xBartM/Parametric-Slewing-Bearing/configfile"
	"github.com/xBartM/Parametric-Slewing-Bearing/packing"
	"github.com/xBartM/Parametric-Slewing-Bearing/render"
)

const longHelp = `Generate print-in-place cross-roller slewing bearing variants.

Positional parameters (all in mm):
  OD   outer diameter of the bearing
  ID   inner (bore) diameter
  W    bearing width
  RF   roller fit — clearance on the rolling contact side
  RS   roller slide — clearance on the flat base side

One artifact set is written per valid roller count, named
b{OD}x{ID}x{W}_{RF}x{RS}_{N}. An envelope that fits no roller count at
all exits non-zero with a diagnostic; try adjusting W, RF or RS.`

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		outDir     string
		preview    bool
		writeJSON  bool
		minCount   int
		allowOdd   bool
		debug      bool
	)

	cmd := &cobra.Command{
		Use:          "slewgen OD ID W RF RS",
		Short:        "slewgen — parametric cross-roller slewing bearing generator",
		Long:         longHelp,
		Args:         cobra.ExactArgs(5),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			setupLogger(debug)

			dims := make([]float64, len(args))
			for i, a := range args {
				v, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("argument %d (%q) is not a number", i+1, a)
				}
				dims[i] = v
			}

			cfg, err := configfile.Load(configPath)
			if err != nil {
				return err
			}

			opts := packing.DefaultOptions()
			opts.MinCount = minCount
			opts.EvenOnly = !allowOdd

			return run(dims[0], dims[1], dims[2], dims[3], dims[4], cfg, opts, outDir, writeJSON, preview)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML file overriding printer/model constants")
	cmd.Flags().StringVarP(&outDir, "out", "o", "models", "output directory for generated artifacts")
	cmd.Flags().BoolVar(&preview, "preview", false, "also write cross-section and plan-view PNGs")
	cmd.Flags().BoolVar(&writeJSON, "json", true, "write the assembly description JSON per variant")
	cmd.Flags().IntVar(&minCount, "min-count", 2, "smallest roller count to consider")
	cmd.Flags().BoolVar(&allowOdd, "allow-odd", false, "also consider odd roller counts (tilt alternation will not close)")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	return cmd
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}

func run(od, id, w, rf, rs float64, cfg bearing.Config, opts packing.Options, outDir string, writeJSON, preview bool) error {
	spec, err := bearing.NewSpec(od, id, w, rf, rs)
	if err != nil {
		return err
	}
	if spec.Envelope.HighLeverage(cfg.LeverageRatio) {
		slog.Warn("high-leverage envelope: channel depth dwarfs the width; expect poor moment stiffness",
			"channel_depth", spec.Envelope.ChannelDepth, "width", w)
	}

	inner, outer, ch, err := bearing.BuildRaces(spec, cfg)
	if err != nil {
		return err
	}
	roller, err := bearing.BuildRoller(ch, spec, cfg)
	if err != nil {
		return err
	}
	slog.Debug("derived geometry",
		"pitch_radius", ch.PitchRadius,
		"channel_side", ch.Side,
		"roller_diameter", roller.Diameter,
		"roller_chamfer", roller.ChamferLength)

	sols := packing.Search(spec, ch, roller, opts)
	if len(sols) == 0 {
		slog.Error("no roller count fits this envelope; adjust width, roller fit or roller slide")
		return fmt.Errorf("no valid packing for b%gx%gx%g_%gx%g", od, id, w, rf, rs)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, sol := range sols {
		desc, err := assembly.Synthesize(spec, inner, outer, roller, sol)
		if err != nil {
			return err
		}
		if err := writeArtifacts(outDir, desc, writeJSON, preview); err != nil {
			return err
		}
		slog.Info("variant",
			"rollers", sol.Count,
			"roller_gap", sol.RollerGap,
			"name", desc.Name())
	}
	return nil
}

func writeArtifacts(outDir string, desc assembly.Description, writeJSON, preview bool) error {
	base := filepath.Join(outDir, desc.Name())

	if writeJSON {
		f, err := os.Create(base + ".json")
		if err != nil {
			return fmt.Errorf("create %s.json: %w", base, err)
		}
		err = assembly.WriteJSON(f, desc)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}

	if preview {
		if err := render.SavePNG(base+"_section.png", render.CrossSection(desc)); err != nil {
			return fmt.Errorf("write section preview: %w", err)
		}
		if err := render.SavePNG(base+"_plan.png", render.PlanView(desc)); err != nil {
			return fmt.Errorf("write plan preview: %w", err)
		}
	}
	return nil
}
