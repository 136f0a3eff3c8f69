package memory

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/KeaganHRankin/rasmi-sampler/pkg/domain/entities"
	"github.com/KeaganHRankin/rasmi-sampler/pkg/domain/repositories"
)

// FactorRepository provides in-memory storage for LCA emission-factor records
type FactorRepository struct {
	records    []entities.EmissionFactorRecord
	byMaterial map[entities.Material][]int
}

// NewFactorRepository creates a new in-memory factor repository
func NewFactorRepository(expectedRecords int) *FactorRepository {
	return &FactorRepository{
		records:    make([]entities.EmissionFactorRecord, 0, expectedRecords),
		byMaterial: make(map[entities.Material][]int),
	}
}

// Verify interface compliance
var _ repositories.FactorRepository = (*FactorRepository)(nil)

// LoadRecords loads records into the repository
func (r *FactorRepository) LoadRecords(records []*entities.EmissionFactorRecord) error {
	for i, record := range records {
		if record == nil {
			return fmt.Errorf("factor record %d is nil", i)
		}
		r.AddRecord(*record)
	}
	return nil
}

// AddRecord adds a single record to the repository
func (r *FactorRepository) AddRecord(record entities.EmissionFactorRecord) {
	material := record.Material.Normalize()
	r.byMaterial[material] = append(r.byMaterial[material], len(r.records))
	r.records = append(r.records, record)
}

// LookupFactors returns the values of all records for the material, in
// table order
func (r *FactorRepository) LookupFactors(material entities.Material) ([]decimal.Decimal, error) {
	records, err := r.GetRecords(material)
	if err != nil {
		return nil, err
	}

	values := make([]decimal.Decimal, len(records))
	for i, record := range records {
		values[i] = record.Value
	}
	return values, nil
}

// LookupFactorsForGeo returns factor values restricted to records covering
// the country, with rows excluded by the production pathway dropped
func (r *FactorRepository) LookupFactorsForGeo(material entities.Material, country entities.Country, pathway entities.Pathway) ([]decimal.Decimal, error) {
	records, err := r.GetRecords(material)
	if err != nil {
		return nil, err
	}

	var values []decimal.Decimal
	for _, record := range records {
		if !record.AppliesTo(country) {
			continue
		}
		if pathway.Excludes(record.Note) {
			continue
		}
		values = append(values, record.Value)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no %s emission factors for %s under pathway %s", repositories.ErrKeyNotFound, material, country, pathway)
	}
	return values, nil
}

// GetRecords returns all records for a material, in table order
func (r *FactorRepository) GetRecords(material entities.Material) ([]*entities.EmissionFactorRecord, error) {
	indexes, exists := r.byMaterial[material.Normalize()]
	if !exists || len(indexes) == 0 {
		return nil, fmt.Errorf("%w: no emission factors for material %s", repositories.ErrKeyNotFound, material)
	}

	records := make([]*entities.EmissionFactorRecord, len(indexes))
	for i, idx := range indexes {
		records[i] = &r.records[idx]
	}
	return records, nil
}

// Materials returns the distinct materials present in the table
func (r *FactorRepository) Materials() []entities.Material {
	out := make([]entities.Material, 0, len(r.byMaterial))
	for m := range r.byMaterial {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of loaded records
func (r *FactorRepository) Len() int {
	return len(r.records)
}
