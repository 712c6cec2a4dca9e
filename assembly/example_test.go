package assembly_test

import (
	"fmt"

	"github.com/xBartM/Parametric-Slewing-Bearing/assembly"
	"github.com/xBartM/Parametric-Slewing-Bearing/bearing"
	"github.com/xBartM/Parametric-Slewing-Bearing/packing"
)

// ExampleDescription_Name derives the densest variant of the reference
// bearing and prints its artifact base name.
func ExampleDescription_Name() {
	spec, _ := bearing.NewSpec(50, 15, 10, 0.3, 0.9)
	cfg := bearing.DefaultConfig()
	inner, outer, ch, _ := bearing.BuildRaces(spec, cfg)
	roller, _ := bearing.BuildRoller(ch, spec, cfg)

	sols := packing.Search(spec, ch, roller, packing.DefaultOptions())
	desc, _ := assembly.Synthesize(spec, inner, outer, roller, sols[len(sols)-1])
	fmt.Println(desc.Name())

	// Output:
	// b50x15x10_0.3x0.9_8
}
