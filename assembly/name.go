package assembly

import (
	"fmt"
	"strconv"
)

// Name returns the artifact base name for this variant:
// b{OD}x{ID}x{W}_{RF}x{RS}_{N}, dimensions in shortest decimal form.
// The caller appends the format extension (.stl, .json, .png).
func (d Description) Name() string {
	return fmt.Sprintf("b%sx%sx%s_%sx%s_%d",
		ftoa(d.Spec.OuterDiameter),
		ftoa(d.Spec.InnerDiameter),
		ftoa(d.Spec.Width),
		ftoa(d.Spec.RollerFit),
		ftoa(d.Spec.RollerSlide),
		d.Solution.Count,
	)
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
