package sampling

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/KeaganHRankin/rasmi-sampler/pkg/application/dto"
	"github.com/KeaganHRankin/rasmi-sampler/pkg/domain/entities"
	"github.com/KeaganHRankin/rasmi-sampler/pkg/domain/repositories"
	"github.com/KeaganHRankin/rasmi-sampler/pkg/domain/services"
	"github.com/KeaganHRankin/rasmi-sampler/pkg/infrastructure/events"
)

// Service implements joint bootstrap sampling over the intensity and factor
// tables. It holds no per-call state; every request builds its own generator,
// so independent calls may run concurrently.
type Service struct {
	store events.EventStore
}

// NewService creates a sampling service without event publishing
func NewService() *Service {
	return &Service{}
}

// NewServiceWithEvents creates a sampling service that records each run in
// the given event store
func NewServiceWithEvents(store events.EventStore) *Service {
	return &Service{store: store}
}

// SampleRequest describes one single-key sampling run
type SampleRequest struct {
	Key entities.SampleKey
	// Function restricts intensity records to one building function when set
	Function entities.BuildingFunction
	// Draws is the number of Monte Carlo draws; zero is a valid no-op
	Draws int
	// Seed makes the run reproducible. A nil seed uses a time-seeded
	// generator and the run cannot be reproduced.
	Seed *int64
	// Combine combines each intensity/factor pair; nil uses Multiply
	Combine services.CombineFunc
	// KeepPairs retains the raw paired draws alongside the combined draws
	KeepPairs bool
	// FilterFactorsByGeo restricts emission factors to records covering the
	// key's country, applying the XPS pathway to plastics rows
	FilterFactorsByGeo bool
	Pathway            entities.Pathway
}

// TotalRequest describes one multi-material aggregate run
type TotalRequest struct {
	// Function restricts intensity records to one building function when set
	Function  entities.BuildingFunction
	Structure entities.Structure
	Country   entities.Country
	// Materials defaults to the canonical RASMI material set
	Materials []entities.Material
	Draws     int
	Seed      *int64
	Pathway   entities.Pathway
}

// Sample draws n joint bootstrap samples for one key and combines each
// intensity/factor pair. Either the full sequence of n combined draws is
// returned or nothing is; no partial results accompany an error.
func (s *Service) Sample(
	ctx context.Context,
	intensityRepo repositories.IntensityRepository,
	factorRepo repositories.FactorRepository,
	req SampleRequest,
) (*dto.DrawResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Draws < 0 {
		return nil, fmt.Errorf("%w: got %d", services.ErrInvalidDrawCount, req.Draws)
	}

	// Resolve both observation sets before any sampling; either side
	// failing means zero draws happen.
	intensityObs, err := s.lookupIntensity(intensityRepo, req.Function, req.Key)
	if err != nil {
		return nil, err
	}
	factorObs, err := s.lookupFactors(factorRepo, req)
	if err != nil {
		return nil, err
	}

	combine := req.Combine
	if combine == nil {
		combine = services.Multiply
	}
	rng := newGenerator(req.Seed)

	result := &dto.DrawResult{
		RunID: uuid.NewString(),
		Key:   req.Key,
		Seed:  req.Seed,
		Draws: make([]decimal.Decimal, 0, req.Draws),
	}
	if req.KeepPairs {
		result.Pairs = make([]dto.DrawPair, 0, req.Draws)
	}

	// Fixed draw order, intensity before factor, from the one generator:
	// seeded runs reproduce regardless of observation-set contents.
	for i := 0; i < req.Draws; i++ {
		intensity, err := services.DrawOne(rng, intensityObs)
		if err != nil {
			return nil, fmt.Errorf("intensity draw %d: %w", i, err)
		}
		factor, err := services.DrawOne(rng, factorObs)
		if err != nil {
			return nil, fmt.Errorf("factor draw %d: %w", i, err)
		}

		combined, err := combine(intensity, factor)
		if err != nil {
			return nil, fmt.Errorf("%w: draw %d (%s, %s): %v", services.ErrCombine, i, intensity, factor, err)
		}

		result.Draws = append(result.Draws, combined)
		if req.KeepPairs {
			result.Pairs = append(result.Pairs, dto.DrawPair{Intensity: intensity, Factor: factor})
		}
	}

	s.publish(result.RunID, events.SampleRunCompletedEvent, events.SampleRunCompleted{
		RunID:  result.RunID,
		Key:    req.Key,
		Draws:  req.Draws,
		Seeded: req.Seed != nil,
	})
	return result, nil
}

// SampleTotal draws n bootstrap samples per material and sums the
// intensity-times-factor products across materials for each draw index,
// giving total embodied emissions per unit floor area. Every material's
// intensity and factor streams restart from the base seed (common random
// numbers), so totals are comparable across materials.
func (s *Service) SampleTotal(
	ctx context.Context,
	intensityRepo repositories.IntensityRepository,
	factorRepo repositories.FactorRepository,
	req TotalRequest,
) (*dto.TotalResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Draws < 0 {
		return nil, fmt.Errorf("%w: got %d", services.ErrInvalidDrawCount, req.Draws)
	}

	materials := req.Materials
	if len(materials) == 0 {
		materials = entities.Materials()
	}

	// Resolve every material's observation sets up front; any missing key
	// fails the whole call before a single draw.
	intensityObs := make([][]decimal.Decimal, len(materials))
	factorObs := make([][]decimal.Decimal, len(materials))
	for i, material := range materials {
		key, err := entities.NewSampleKey(req.Structure, material, req.Country)
		if err != nil {
			return nil, err
		}
		intensityObs[i], err = s.lookupIntensity(intensityRepo, req.Function, key)
		if err != nil {
			return nil, err
		}
		factorObs[i], err = factorRepo.LookupFactorsForGeo(material, req.Country, req.Pathway)
		if err != nil {
			return nil, err
		}
	}

	// With a nil seed, pick one base seed for the run so the common-random-
	// numbers structure still holds; the run itself is not reproducible.
	baseSeed := req.Seed
	if baseSeed == nil {
		generated := services.NewUnseededSource().Int63()
		baseSeed = &generated
	}

	totals := make([]decimal.Decimal, req.Draws)
	for i := range totals {
		totals[i] = decimal.Zero
	}
	for m := range materials {
		intensityDraws, err := services.DrawN(services.NewSource(*baseSeed), intensityObs[m], req.Draws)
		if err != nil {
			return nil, fmt.Errorf("intensity draws for %s: %w", materials[m], err)
		}
		factorDraws, err := services.DrawN(services.NewSource(*baseSeed), factorObs[m], req.Draws)
		if err != nil {
			return nil, fmt.Errorf("factor draws for %s: %w", materials[m], err)
		}
		for i := 0; i < req.Draws; i++ {
			totals[i] = totals[i].Add(intensityDraws[i].Mul(factorDraws[i]))
		}
	}

	result := &dto.TotalResult{
		RunID:     uuid.NewString(),
		Function:  req.Function.Normalize(),
		Structure: req.Structure.Normalize(),
		Country:   req.Country.Normalize(),
		Materials: materials,
		Seed:      req.Seed,
		Totals:    totals,
	}

	s.publish(result.RunID, events.TotalRunCompletedEvent, events.TotalRunCompleted{
		RunID:     result.RunID,
		Function:  result.Function,
		Structure: result.Structure,
		Country:   result.Country,
		Materials: len(materials),
		Draws:     req.Draws,
	})
	return result, nil
}

func (s *Service) lookupIntensity(repo repositories.IntensityRepository, function entities.BuildingFunction, key entities.SampleKey) ([]decimal.Decimal, error) {
	if function != "" {
		return repo.LookupIntensityByFunction(function, key)
	}
	return repo.LookupIntensity(key)
}

func (s *Service) lookupFactors(repo repositories.FactorRepository, req SampleRequest) ([]decimal.Decimal, error) {
	if req.FilterFactorsByGeo {
		return repo.LookupFactorsForGeo(req.Key.Material, req.Key.Country, req.Pathway)
	}
	return repo.LookupFactors(req.Key.Material)
}

func (s *Service) publish(runID, eventType string, data interface{}) {
	if s.store == nil {
		return
	}
	// Provenance is best-effort; a failing subscriber must not fail the run
	_ = s.store.AppendEvent(runID, events.NewEvent(eventType, runID, data))
}

func newGenerator(seed *int64) *rand.Rand {
	if seed != nil {
		return services.NewSource(*seed)
	}
	return services.NewUnseededSource()
}
