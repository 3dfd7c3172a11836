// Package sampler implements weighted random selection used by the catalog
// driven generators. Selection probability of an option is its weight divided
// by the sum of all weights.
package sampler

import "math/rand"

// Weighted pairs an option with its positive selection weight.
type Weighted[T any] struct {
	Item   T
	Weight float64
}

// Pick returns one option, chosen proportionally to its weight. The draw is
// compared against the running cumulative weight with >=, and if rounding
// leaves no option selected the last one is returned.
//
// options must be non-empty. Pick is deterministic for a fixed rng.
func Pick[T any](rng *rand.Rand, options []Weighted[T]) T {
	total := 0.0
	for _, o := range options {
		total += o.Weight
	}
	draw := rng.Float64() * total

	upto := 0.0
	for _, o := range options {
		if upto+o.Weight >= draw {
			return o.Item
		}
		upto += o.Weight
	}
	return options[len(options)-1].Item
}
