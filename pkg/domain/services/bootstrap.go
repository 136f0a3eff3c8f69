package services

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// NewSource creates a deterministic random generator from a seed. Two
// generators built from the same seed produce identical draw sequences.
// A generator must not be shared across concurrent sampling calls.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewUnseededSource creates a time-seeded generator. Runs that use it are
// not reproducible; callers wanting determinism must pass an explicit seed.
func NewUnseededSource() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// DrawOne bootstrap-resamples a single value: one element selected uniformly
// at random, with replacement, from observations. A singleton observation
// set always returns its only value. An empty set fails with
// ErrEmptyObservations regardless of how the generator is positioned.
func DrawOne(rng *rand.Rand, observations []decimal.Decimal) (decimal.Decimal, error) {
	if len(observations) == 0 {
		return decimal.Decimal{}, ErrEmptyObservations
	}
	return observations[rng.Intn(len(observations))], nil
}

// DrawN bootstrap-resamples n values from observations using the given
// generator. n == 0 returns an empty slice without advancing the generator.
func DrawN(rng *rand.Rand, observations []decimal.Decimal, n int) ([]decimal.Decimal, error) {
	if n < 0 {
		return nil, ErrInvalidDrawCount
	}
	if len(observations) == 0 {
		return nil, ErrEmptyObservations
	}

	draws := make([]decimal.Decimal, n)
	for i := 0; i < n; i++ {
		draws[i] = observations[rng.Intn(len(observations))]
	}
	return draws, nil
}
