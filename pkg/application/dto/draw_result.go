package dto

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/KeaganHRankin/rasmi-sampler/pkg/domain/entities"
)

// DrawPair holds one raw (intensity, factor) pair before combination
type DrawPair struct {
	Intensity decimal.Decimal
	Factor    decimal.Decimal
}

// DrawResult contains the Monte Carlo sample of the combined quantity for
// one key. Draws are in draw order; the sampler itself never aggregates.
type DrawResult struct {
	RunID string
	Key   entities.SampleKey
	// Seed is nil when the run used an unseeded generator and is therefore
	// not reproducible.
	Seed  *int64
	Draws []decimal.Decimal
	// Pairs holds the raw paired draws when the caller requested them
	Pairs []DrawPair
}

// TotalResult contains the Monte Carlo sample of embodied emissions summed
// across materials for one structure/country query
type TotalResult struct {
	RunID     string
	Function  entities.BuildingFunction
	Structure entities.Structure
	Country   entities.Country
	Materials []entities.Material
	Seed      *int64
	Totals    []decimal.Decimal
}

// Summary holds descriptive statistics computed from a draw sequence.
// Std is computed in floating point; the draws themselves stay exact.
type Summary struct {
	Count int
	Min   decimal.Decimal
	Max   decimal.Decimal
	Mean  decimal.Decimal
	Std   float64
}

// Summarize computes descriptive statistics over the combined draws
func (r *DrawResult) Summarize() Summary {
	return summarize(r.Draws)
}

// Summarize computes descriptive statistics over the per-draw totals
func (r *TotalResult) Summarize() Summary {
	return summarize(r.Totals)
}

// Quantile returns the q-th quantile (0 <= q <= 1) of the combined draws
// using linear interpolation between order statistics
func (r *DrawResult) Quantile(q float64) decimal.Decimal {
	return quantile(r.Draws, q)
}

// Quantile returns the q-th quantile of the per-draw totals
func (r *TotalResult) Quantile(q float64) decimal.Decimal {
	return quantile(r.Totals, q)
}

const meanPrecision = 16

func summarize(draws []decimal.Decimal) Summary {
	if len(draws) == 0 {
		return Summary{}
	}

	min := draws[0]
	max := draws[0]
	sum := decimal.Zero
	for _, d := range draws {
		if d.LessThan(min) {
			min = d
		}
		if d.GreaterThan(max) {
			max = d
		}
		sum = sum.Add(d)
	}
	mean := sum.DivRound(decimal.NewFromInt(int64(len(draws))), meanPrecision)

	std := 0.0
	if len(draws) > 1 {
		m := mean.InexactFloat64()
		var m2 float64
		for _, d := range draws {
			delta := d.InexactFloat64() - m
			m2 += delta * delta
		}
		std = math.Sqrt(m2 / float64(len(draws)-1))
	}

	return Summary{
		Count: len(draws),
		Min:   min,
		Max:   max,
		Mean:  mean,
		Std:   std,
	}
}

func quantile(draws []decimal.Decimal, q float64) decimal.Decimal {
	if len(draws) == 0 {
		return decimal.Zero
	}

	sorted := make([]decimal.Decimal, len(draws))
	copy(sorted, draws)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}

	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := decimal.NewFromFloat(pos - float64(lo))
	return sorted[lo].Add(sorted[hi].Sub(sorted[lo]).Mul(w))
}
