package sampler

import (
	"math/rand"
	"testing"
)

func TestPick_Distribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	options := []Weighted[string]{
		{Item: "common", Weight: 90},
		{Item: "rare", Weight: 10},
	}

	const draws = 100000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		counts[Pick(rng, options)]++
	}

	share := float64(counts["common"]) / draws
	if share < 0.85 || share > 0.95 {
		t.Errorf("common share = %.4f, want within [0.85, 0.95]", share)
	}
	if counts["common"]+counts["rare"] != draws {
		t.Errorf("counts sum = %d, want %d", counts["common"]+counts["rare"], draws)
	}
}

func TestPick_Deterministic(t *testing.T) {
	options := []Weighted[int]{
		{Item: 1, Weight: 0.15},
		{Item: 2, Weight: 0.5},
		{Item: 3, Weight: 0.35},
	}

	a := rand.New(rand.NewSource(7))
	b := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		if got, want := Pick(a, options), Pick(b, options); got != want {
			t.Fatalf("draw %d: sequences diverge (%d vs %d)", i, got, want)
		}
	}
}

func TestPick_SingleOption(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	options := []Weighted[string]{{Item: "only", Weight: 0.001}}
	for i := 0; i < 100; i++ {
		if got := Pick(rng, options); got != "only" {
			t.Fatalf("Pick() = %q, want %q", got, "only")
		}
	}
}

func TestPick_FloatWeights(t *testing.T) {
	// Catalog weights are small floats; every option must remain reachable.
	rng := rand.New(rand.NewSource(3))
	options := []Weighted[string]{
		{Item: "a", Weight: 0.005},
		{Item: "b", Weight: 0.005},
		{Item: "c", Weight: 0.01},
	}
	seen := map[string]bool{}
	for i := 0; i < 10000; i++ {
		seen[Pick(rng, options)] = true
	}
	for _, want := range []string{"a", "b", "c"} {
		if !seen[want] {
			t.Errorf("option %q never selected", want)
		}
	}
}
