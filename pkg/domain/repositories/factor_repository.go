package repositories

import (
	"github.com/shopspring/decimal"

	"github.com/KeaganHRankin/rasmi-sampler/pkg/domain/entities"
)

// FactorRepository provides access to the LCA emission-factor table
type FactorRepository interface {
	// LookupFactors returns the value column of every record for the
	// material, in table order. Zero matches fail with ErrKeyNotFound.
	LookupFactors(material entities.Material) ([]decimal.Decimal, error)

	// LookupFactorsForGeo restricts factors to records covering the given
	// country and drops rows excluded by the production pathway.
	LookupFactorsForGeo(material entities.Material, country entities.Country, pathway entities.Pathway) ([]decimal.Decimal, error)

	// GetRecords returns the full records for a material, in table order
	GetRecords(material entities.Material) ([]*entities.EmissionFactorRecord, error)

	// Materials returns the distinct materials present in the table
	Materials() []entities.Material

	// LoadRecords loads records into the repository
	LoadRecords(records []*entities.EmissionFactorRecord) error
}
