package packing_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xBartM/Parametric-Slewing-Bearing/bearing"
	"github.com/xBartM/Parametric-Slewing-Bearing/packing"
)

// derive runs the builders for the given inputs and returns everything
// Search needs; fails the test on infeasible geometry.
func derive(t *testing.T, od, id, w, rf, rs float64) (bearing.BearingSpec, bearing.Channel, bearing.RollerProfile) {
	t.Helper()
	spec, err := bearing.NewSpec(od, id, w, rf, rs)
	require.NoError(t, err)
	cfg := bearing.DefaultConfig()
	_, _, ch, err := bearing.BuildRaces(spec, cfg)
	require.NoError(t, err)
	roller, err := bearing.BuildRoller(ch, spec, cfg)
	require.NoError(t, err)
	return spec, ch, roller
}

// counts projects the solution set onto roller counts.
func counts(sols []packing.Solution) []int {
	out := make([]int, len(sols))
	for i, s := range sols {
		out[i] = s.Count
	}
	return out
}

// TestSearch_ReferenceBearing verifies the reference envelope yields a
// non-empty solution set ordered by increasing count.
func TestSearch_ReferenceBearing(t *testing.T) {
	spec, ch, roller := derive(t, 50, 15, 10, 0.3, 0.9)

	sols := packing.Search(spec, ch, roller, packing.DefaultOptions())
	require.NotEmpty(t, sols)
	assert.Equal(t, []int{2, 4, 6, 8}, counts(sols))
}

// TestSearch_ClosureProperty verifies angular spacing times count tiles
// the full circle exactly, within the documented 1e-9 tolerance.
func TestSearch_ClosureProperty(t *testing.T) {
	spec, ch, roller := derive(t, 50, 15, 10, 0.3, 0.9)

	for _, sol := range packing.Search(spec, ch, roller, packing.DefaultOptions()) {
		closure := sol.AngularSpacing * float64(sol.Count)
		assert.InDelta(t, 2*math.Pi, closure, 1e-9, "count %d", sol.Count)
	}
}

// TestSearch_AchievedGapsHonourTolerances verifies no returned solution
// violates the clearances it was asked to satisfy.
func TestSearch_AchievedGapsHonourTolerances(t *testing.T) {
	spec, ch, roller := derive(t, 50, 15, 10, 0.3, 0.9)

	for _, sol := range packing.Search(spec, ch, roller, packing.DefaultOptions()) {
		assert.GreaterOrEqual(t, sol.RollerGap+1e-9, spec.RollerFit, "count %d", sol.Count)
		assert.GreaterOrEqual(t, sol.BaseGap+1e-9, spec.RollerSlide, "count %d", sol.Count)
		assert.GreaterOrEqual(t, sol.RadialClearance+1e-9, spec.RollerFit*math.Sqrt2/2, "count %d", sol.Count)

		chord := 2 * sol.PitchRadius * math.Sin(math.Pi/float64(sol.Count))
		assert.InDelta(t, chord-sol.RollerDiameter, sol.RollerGap, 1e-12, "count %d", sol.Count)
	}
}

// TestSearch_MonotoneInFit verifies property: tightening the fit never
// grows the valid-count set — the roller absorbs the freed clearance.
func TestSearch_MonotoneInFit(t *testing.T) {
	specA, chA, rollerA := derive(t, 50, 15, 10, 0.3, 0.9)
	specB, chB, rollerB := derive(t, 50, 15, 10, 0.1, 0.9)

	loose := counts(packing.Search(specA, chA, rollerA, packing.DefaultOptions()))
	tight := counts(packing.Search(specB, chB, rollerB, packing.DefaultOptions()))

	assert.Subset(t, loose, tight, "RF=0.1 set must be a subset of RF=0.3 set")
}

// TestSearch_MonotoneInSlide verifies tightening the slide clearance
// never grows the valid-count set either.
func TestSearch_MonotoneInSlide(t *testing.T) {
	specA, chA, rollerA := derive(t, 50, 15, 10, 0.3, 0.9)
	specB, chB, rollerB := derive(t, 50, 15, 10, 0.3, 0.7)

	loose := counts(packing.Search(specA, chA, rollerA, packing.DefaultOptions()))
	tight := counts(packing.Search(specB, chB, rollerB, packing.DefaultOptions()))

	assert.Subset(t, loose, tight, "RS=0.7 set must be a subset of RS=0.9 set")
}

// TestSearch_EvenOnlyAndMinCount verifies option handling: odd counts
// appear only when allowed, and MinCount prunes the small end.
func TestSearch_EvenOnlyAndMinCount(t *testing.T) {
	spec, ch, roller := derive(t, 50, 15, 10, 0.3, 0.9)

	all := packing.Search(spec, ch, roller, packing.Options{MinCount: 2, EvenOnly: false})
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 9}, counts(all))

	even := packing.Search(spec, ch, roller, packing.Options{MinCount: 5, EvenOnly: true})
	assert.Equal(t, []int{6, 8}, counts(even), "odd MinCount rounds up to even")

	high := packing.Search(spec, ch, roller, packing.Options{MinCount: 20, EvenOnly: true})
	assert.Empty(t, high, "MinCount beyond the feasible range yields the empty set")
}

// TestSearch_EmptyIsNotAnError verifies an envelope whose roller cannot
// pack returns an empty set rather than failing: a channel occupied by a
// single oversized roller.
func TestSearch_EmptyIsNotAnError(t *testing.T) {
	spec, ch, roller := derive(t, 50, 15, 10, 0.3, 0.9)

	// Shrink the pitch circle so no pair of rollers clears the fit.
	ch.PitchRadius = roller.Diameter / 2
	sols := packing.Search(spec, ch, roller, packing.DefaultOptions())
	assert.Empty(t, sols)
}

// TestSearch_GapExactlyAtFit verifies a chord gap landing exactly on the
// fit clearance is accepted rather than lost to last-ulp rounding: the
// pitch circle is shrunk until two opposed rollers touch at precisely
// the fit distance.
func TestSearch_GapExactlyAtFit(t *testing.T) {
	spec, ch, roller := derive(t, 50, 15, 10, 0.3, 0.9)
	ch.PitchRadius = (roller.Diameter + spec.RollerFit) / 2

	sols := packing.Search(spec, ch, roller, packing.DefaultOptions())
	require.Len(t, sols, 1)
	assert.Equal(t, 2, sols[0].Count)
	assert.InDelta(t, spec.RollerFit, sols[0].RollerGap, 1e-9)
}

// TestSearch_RadialInterferenceRejectsAll verifies the N-independent
// wall check empties the result when the roller overfills the channel.
func TestSearch_RadialInterferenceRejectsAll(t *testing.T) {
	spec, ch, roller := derive(t, 50, 15, 10, 0.3, 0.9)

	ch.HalfDiagonal = (roller.Diameter + roller.Length) * math.Sqrt2 / 4
	sols := packing.Search(spec, ch, roller, packing.DefaultOptions())
	assert.Empty(t, sols, "no radial margin for the fit clearance")
}

// TestSearch_Deterministic verifies repeated searches agree exactly.
func TestSearch_Deterministic(t *testing.T) {
	spec, ch, roller := derive(t, 50, 15, 10, 0.3, 0.9)

	a := packing.Search(spec, ch, roller, packing.DefaultOptions())
	b := packing.Search(spec, ch, roller, packing.DefaultOptions())
	assert.Equal(t, a, b)
}
