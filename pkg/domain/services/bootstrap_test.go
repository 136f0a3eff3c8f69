package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func obs(values ...float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}

func TestDrawOne_Empty(t *testing.T) {
	rng := NewSource(1)

	_, err := DrawOne(rng, nil)
	if !errors.Is(err, ErrEmptyObservations) {
		t.Fatalf("Expected ErrEmptyObservations, got %v", err)
	}
}

func TestDrawOne_Singleton(t *testing.T) {
	observations := obs(42.5)

	// A singleton distribution is degenerate, not an error: every draw
	// returns the single observation for any seed.
	for _, seed := range []int64{0, 1, 100, -7} {
		rng := NewSource(seed)
		for i := 0; i < 10; i++ {
			v, err := DrawOne(rng, observations)
			if err != nil {
				t.Fatalf("DrawOne failed: %v", err)
			}
			if !v.Equal(observations[0]) {
				t.Errorf("seed %d draw %d: expected %s, got %s", seed, i, observations[0], v)
			}
		}
	}
}

func TestDrawOne_ValuesComeFromObservations(t *testing.T) {
	observations := obs(1.0, 2.0, 3.0)
	rng := NewSource(100)

	for i := 0; i < 100; i++ {
		v, err := DrawOne(rng, observations)
		if err != nil {
			t.Fatalf("DrawOne failed: %v", err)
		}
		found := false
		for _, o := range observations {
			if v.Equal(o) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("Draw %d produced %s, which is not an observation", i, v)
		}
	}
}

func TestDrawN_Determinism(t *testing.T) {
	observations := obs(1.0, 2.0, 3.0, 4.0, 5.0)

	first, err := DrawN(NewSource(100), observations, 1000)
	if err != nil {
		t.Fatalf("DrawN failed: %v", err)
	}
	second, err := DrawN(NewSource(100), observations, 1000)
	if err != nil {
		t.Fatalf("DrawN failed: %v", err)
	}

	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Fatalf("Draw %d differs between identically seeded runs: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestDrawN_Coverage(t *testing.T) {
	observations := obs(1.0, 2.0, 3.0)
	draws, err := DrawN(NewSource(100), observations, 10000)
	if err != nil {
		t.Fatalf("DrawN failed: %v", err)
	}

	// Resampling with replacement must be able to reach every observation
	seen := make(map[string]bool)
	for _, d := range draws {
		seen[d.String()] = true
	}
	for _, o := range observations {
		if !seen[o.String()] {
			t.Errorf("Observation %s never drawn in 10000 draws", o)
		}
	}
}

func TestDrawN_EdgeCases(t *testing.T) {
	observations := obs(1.0, 2.0)

	draws, err := DrawN(NewSource(1), observations, 0)
	if err != nil {
		t.Fatalf("Expected n=0 to succeed, got %v", err)
	}
	if len(draws) != 0 {
		t.Errorf("Expected empty result for n=0, got %d draws", len(draws))
	}

	if _, err := DrawN(NewSource(1), observations, -1); !errors.Is(err, ErrInvalidDrawCount) {
		t.Errorf("Expected ErrInvalidDrawCount for n=-1, got %v", err)
	}

	if _, err := DrawN(NewSource(1), nil, 5); !errors.Is(err, ErrEmptyObservations) {
		t.Errorf("Expected ErrEmptyObservations, got %v", err)
	}
}

func TestCombine_Multiply(t *testing.T) {
	got, err := Multiply(decimal.NewFromFloat(2.0), decimal.NewFromFloat(3.0))
	if err != nil {
		t.Fatalf("Multiply failed: %v", err)
	}
	if !got.Equal(decimal.NewFromFloat(6.0)) {
		t.Errorf("Expected 6, got %s", got)
	}
}

func TestCombine_Add(t *testing.T) {
	got, err := Add(decimal.NewFromFloat(2.5), decimal.NewFromFloat(3.0))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !got.Equal(decimal.NewFromFloat(5.5)) {
		t.Errorf("Expected 5.5, got %s", got)
	}
}
