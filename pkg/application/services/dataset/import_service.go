package dataset

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/KeaganHRankin/rasmi-sampler/pkg/infrastructure/config"
	"github.com/KeaganHRankin/rasmi-sampler/pkg/infrastructure/events"
	csvrepo "github.com/KeaganHRankin/rasmi-sampler/pkg/infrastructure/repositories/csv"
	"github.com/KeaganHRankin/rasmi-sampler/pkg/infrastructure/repositories/memory"
)

// ImportService loads the intensity and factor tables from their configured
// sources into in-memory repositories. Tables are loaded once at startup;
// the repositories are read-only afterwards.
type ImportService struct {
	loader *csvrepo.Loader
	logger zerolog.Logger
	store  events.EventStore
}

// NewImportService creates an import service with the given logger
func NewImportService(logger zerolog.Logger) *ImportService {
	return &ImportService{
		loader: csvrepo.NewLoader(),
		logger: logger,
	}
}

// NewImportServiceWithEvents creates an import service that records table
// loads in the given event store
func NewImportServiceWithEvents(logger zerolog.Logger, store events.EventStore) *ImportService {
	s := NewImportService(logger)
	s.store = store
	return s
}

// ImportTables loads both tables per the configuration and returns loaded
// repositories. Either both tables load or neither repository is returned.
func (s *ImportService) ImportTables(ctx context.Context, cfg *config.Sampler) (*memory.IntensityRepository, *memory.FactorRepository, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if cfg == nil {
		return nil, nil, fmt.Errorf("config cannot be nil")
	}

	s.logger.Info().Str("path", cfg.RasmiPath).Msg("importing RASMI dataset")
	intensityRecords, err := s.loader.LoadIntensityRecords(cfg.RasmiPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to import RASMI dataset: %w", err)
	}

	s.logger.Info().Str("path", cfg.FactorsPath).Msg("importing LCA factor dataset")
	factorRecords, err := s.loader.LoadFactorRecords(cfg.FactorsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to import LCA factor dataset: %w", err)
	}

	intensityRepo := memory.NewIntensityRepository(len(intensityRecords))
	if err := intensityRepo.LoadRecords(intensityRecords); err != nil {
		return nil, nil, fmt.Errorf("failed to load intensity records: %w", err)
	}
	factorRepo := memory.NewFactorRepository(len(factorRecords))
	if err := factorRepo.LoadRecords(factorRecords); err != nil {
		return nil, nil, fmt.Errorf("failed to load factor records: %w", err)
	}

	s.logger.Info().
		Int("intensity_records", intensityRepo.Len()).
		Int("factor_records", factorRepo.Len()).
		Int("materials", len(intensityRepo.Materials())).
		Msg("datasets loaded")

	s.publish(events.IntensityTableLoadedEvent, "dataset.intensity", events.IntensityTableLoaded{
		Path:    cfg.RasmiPath,
		Records: intensityRepo.Len(),
	})
	s.publish(events.FactorTableLoadedEvent, "dataset.factors", events.FactorTableLoaded{
		Path:    cfg.FactorsPath,
		Records: factorRepo.Len(),
	})

	return intensityRepo, factorRepo, nil
}

func (s *ImportService) publish(eventType, streamID string, data interface{}) {
	if s.store == nil {
		return
	}
	_ = s.store.AppendEvent(streamID, events.NewEvent(eventType, streamID, data))
}
