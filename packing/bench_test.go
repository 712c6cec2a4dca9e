package packing_test

import (
	"testing"

	"github.com/xBartM/Parametric-Slewing-Bearing/bearing"
	"github.com/xBartM/Parametric-Slewing-Bearing/packing"
)

// BenchmarkSearch measures the count enumeration for the reference
// bearing; the loop is O(Nmax) and allocation-light.
func BenchmarkSearch(b *testing.B) {
	spec, err := bearing.NewSpec(50, 15, 10, 0.3, 0.9)
	if err != nil {
		b.Fatalf("spec: %v", err)
	}
	cfg := bearing.DefaultConfig()
	_, _, ch, err := bearing.BuildRaces(spec, cfg)
	if err != nil {
		b.Fatalf("races: %v", err)
	}
	roller, err := bearing.BuildRoller(ch, spec, cfg)
	if err != nil {
		b.Fatalf("roller: %v", err)
	}
	opts := packing.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if sols := packing.Search(spec, ch, roller, opts); len(sols) == 0 {
			b.Fatal("empty solution set")
		}
	}
}
