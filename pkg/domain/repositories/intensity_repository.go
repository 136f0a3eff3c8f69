package repositories

import (
	"github.com/shopspring/decimal"

	"github.com/KeaganHRankin/rasmi-sampler/pkg/domain/entities"
)

// IntensityRepository provides access to the RASMI material-intensity table
type IntensityRepository interface {
	// LookupIntensity returns the value column of every record matching the
	// key, in table order. Zero matches fail with ErrKeyNotFound.
	LookupIntensity(key entities.SampleKey) ([]decimal.Decimal, error)

	// LookupIntensityByFunction additionally filters on the building
	// function dimension of the dataset.
	LookupIntensityByFunction(function entities.BuildingFunction, key entities.SampleKey) ([]decimal.Decimal, error)

	// GetRecords returns the full records matching the key, in table order
	GetRecords(key entities.SampleKey) ([]*entities.MaterialIntensityRecord, error)

	// Materials returns the distinct materials present in the table
	Materials() []entities.Material

	// Structures returns the distinct structure labels present in the table
	Structures() []entities.Structure

	// Countries returns the distinct country labels present in the table
	Countries() []entities.Country

	// Functions returns the distinct building functions present in the table
	Functions() []entities.BuildingFunction

	// LoadRecords loads records into the repository
	LoadRecords(records []*entities.MaterialIntensityRecord) error
}
