package render

import (
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/xBartM/Parametric-Slewing-Bearing/assembly"
	"github.com/xBartM/Parametric-Slewing-Bearing/geom2d"
)

const (
	canvasSize = 900
	margin     = 40.0
)

// CrossSection renders the (radial, axial) half-section: both race
// outlines and the crossed roller footprint centred in the channel.
func CrossSection(d assembly.Description) image.Image {
	var (
		env    = d.Spec.Envelope
		width  = d.Spec.Width
		extent = env.OuterRadius * 1.02
	)

	dc := gg.NewContext(canvasSize, canvasSize/2)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	scale := math.Min(
		(float64(dc.Width())-2*margin)/extent,
		(float64(dc.Height())-2*margin)/width,
	)
	px := func(p geom2d.Point) (float64, float64) {
		return margin + p.X*scale, float64(dc.Height()) - margin - p.Y*scale
	}

	dc.SetLineWidth(2)
	dc.SetRGB(0.72, 0.53, 0.04) // race gold
	strokeProfile(dc, d.Inner.Outline, px)
	strokeProfile(dc, d.Outer.Outline, px)

	dc.SetRGB(0.82, 0.55, 0.28) // roller tan
	strokeProfile(dc, rollerFootprint(d), px)

	return dc.Image()
}

// PlanView renders the packing seen along the bearing axis: OD, bore and
// pitch circles plus one circle per roller slot.
func PlanView(d assembly.Description) image.Image {
	var (
		env    = d.Spec.Envelope
		sol    = d.Solution
		extent = env.OuterRadius * 1.02
	)

	dc := gg.NewContext(canvasSize, canvasSize)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	scale := (float64(canvasSize) - 2*margin) / (2 * extent)
	cx, cy := float64(canvasSize)/2, float64(canvasSize)/2

	dc.SetLineWidth(2)
	dc.SetRGB(0.72, 0.53, 0.04)
	dc.DrawCircle(cx, cy, env.OuterRadius*scale)
	dc.Stroke()
	dc.DrawCircle(cx, cy, env.InnerRadius*scale)
	dc.Stroke()

	dc.SetDash(6, 6)
	dc.SetRGB(0.6, 0.6, 0.6)
	dc.DrawCircle(cx, cy, sol.PitchRadius*scale)
	dc.Stroke()
	dc.SetDash()

	for i := 0; i < sol.Count; i++ {
		angle := float64(i) * sol.AngularSpacing
		x := cx + sol.PitchRadius*math.Cos(angle)*scale
		y := cy - sol.PitchRadius*math.Sin(angle)*scale
		if i%2 == 0 {
			dc.SetRGB(0.82, 0.55, 0.28)
		} else {
			dc.SetRGB(0.70, 0.44, 0.20)
		}
		dc.DrawCircle(x, y, sol.RollerDiameter/2*scale)
		dc.Stroke()
	}

	return dc.Image()
}

// SavePNG writes an image to path.
func SavePNG(path string, im image.Image) error {
	return gg.SavePNG(path, im)
}

func strokeProfile(dc *gg.Context, pr geom2d.Profile, px func(geom2d.Point) (float64, float64)) {
	if len(pr) == 0 {
		return
	}
	dc.NewSubPath()
	for i, p := range pr {
		x, y := px(p)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	dc.Stroke()
}

// rollerFootprint returns the roller's full cross-section, tilted 45°
// and centred in the channel, in the same (r, z) plane as the races.
func rollerFootprint(d assembly.Description) geom2d.Profile {
	half := d.Roller.Outline

	// Mirror the half-section about the roller axis into a closed polygon.
	full := make(geom2d.Profile, 0, 2*len(half)-2)
	full = append(full, half...)
	for i := len(half) - 2; i > 0; i-- {
		full = append(full, geom2d.Pt(-half[i].X, half[i].Y))
	}

	var (
		sin, cos = math.Sincos(d.Inner.ChannelHalfAngle)
		pitch    = d.Solution.PitchRadius
		mid      = d.Spec.Envelope.HalfWidth
	)
	out := make(geom2d.Profile, len(full))
	for i, p := range full {
		out[i] = geom2d.Pt(
			pitch+p.X*cos-p.Y*sin,
			mid+p.X*sin+p.Y*cos,
		)
	}
	return out
}
