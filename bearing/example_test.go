package bearing_test

import (
	"errors"
	"fmt"

	"github.com/xBartM/Parametric-Slewing-Bearing/bearing"
)

// ExampleBuildRoller derives the full printable geometry for a
// 50×15×10 mm bearing with 0.3 mm fit and 0.9 mm slide clearances.
func ExampleBuildRoller() {
	spec, err := bearing.NewSpec(50, 15, 10, 0.3, 0.9)
	if err != nil {
		fmt.Println("infeasible:", err)
		return
	}
	cfg := bearing.DefaultConfig()

	_, _, ch, err := bearing.BuildRaces(spec, cfg)
	if err != nil {
		fmt.Println("infeasible:", err)
		return
	}
	roller, err := bearing.BuildRoller(ch, spec, cfg)
	if err != nil {
		fmt.Println("infeasible:", err)
		return
	}

	fmt.Printf("pitch radius:    %.3f\n", ch.PitchRadius)
	fmt.Printf("roller diameter: %.3f\n", roller.Diameter)
	fmt.Printf("roller length:   %.3f\n", roller.Length)
	fmt.Printf("roller chamfer:  %.3f\n", roller.ChamferLength)

	// Output:
	// pitch radius:    16.250
	// roller diameter: 10.077
	// roller length:   8.877
	// roller chamfer:  3.403
}

// ExampleValidate_infeasible shows how infeasible envelopes surface as
// typed errors naming the violated constraint.
func ExampleValidate_infeasible() {
	_, err := bearing.Validate(200, 150, 25, 0.3, 0.9)
	fmt.Println(errors.Is(err, bearing.ErrWidthExceedsChannel))

	// Output:
	// true
}
