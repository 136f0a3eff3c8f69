package events

import (
	"github.com/KeaganHRankin/rasmi-sampler/pkg/domain/entities"
)

const (
	IntensityTableLoadedEvent = "dataset.intensity.loaded"
	FactorTableLoadedEvent    = "dataset.factors.loaded"

	SampleRunCompletedEvent = "sampling.run.completed"
	TotalRunCompletedEvent  = "sampling.total.completed"
)

// IntensityTableLoaded is emitted after the RASMI table is imported
type IntensityTableLoaded struct {
	Path    string `json:"path"`
	Records int    `json:"records"`
}

// FactorTableLoaded is emitted after the LCA factor table is imported
type FactorTableLoaded struct {
	Path    string `json:"path"`
	Records int    `json:"records"`
}

// SampleRunCompleted is emitted after a single-key sampling run
type SampleRunCompleted struct {
	RunID  string             `json:"run_id"`
	Key    entities.SampleKey `json:"key"`
	Draws  int                `json:"draws"`
	Seeded bool               `json:"seeded"`
}

// TotalRunCompleted is emitted after a multi-material aggregate run
type TotalRunCompleted struct {
	RunID     string                    `json:"run_id"`
	Function  entities.BuildingFunction `json:"function"`
	Structure entities.Structure        `json:"structure"`
	Country   entities.Country          `json:"country"`
	Materials int                       `json:"materials"`
	Draws     int                       `json:"draws"`
}
