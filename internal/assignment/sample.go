package assignment

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var ErrInvalidSampleSize = errors.New("sample size out of range")

// Sample picks count distinct members of population with a Fisher–Yates
// shuffle driven by seed. Equal inputs always give equal output. The
// population itself is not modified.
func Sample(population []string, count int, seed int64) ([]string, error) {
	if count < 1 || count > len(population) {
		return nil, fmt.Errorf("%w: want 1..%d, got %d", ErrInvalidSampleSize, len(population), count)
	}

	pool := make([]string, len(population))
	copy(pool, population)

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
	// Only the first count slots need to be settled.
	for i := 0; i < count; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:count], nil
}
