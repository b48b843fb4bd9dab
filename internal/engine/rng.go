package engine

import "math/rand"

// RNG is the injectable random source used for every draw the engine makes.
// Draws are ordered, so a fixed seed replays a full game exactly.
type RNG interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded math/rand-backed RNG.
func NewRand(seed int64) RNG {
	return rand.New(rand.NewSource(seed))
}

// symmetric returns a uniform draw in [-scale, +scale].
func symmetric(rng RNG, scale float64) float64 {
	return (rng.Float64()*2 - 1) * scale
}

// weightedIndex samples an index from a cumulative weight walk. Returns -1
// when the total weight is zero.
func weightedIndex(rng RNG, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return -1
	}
	roll := rng.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if roll < cum {
			return i
		}
	}
	return len(weights) - 1
}
