package memory

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/KeaganHRankin/rasmi-sampler/pkg/domain/entities"
	"github.com/KeaganHRankin/rasmi-sampler/pkg/domain/repositories"
)

// IntensityRepository provides in-memory storage for RASMI intensity records.
// The table is append-only: records are never mutated or deleted after load,
// so concurrent readers need no locking once loading is done.
type IntensityRepository struct {
	records []entities.MaterialIntensityRecord
	byKey   map[entities.SampleKey][]int
}

// NewIntensityRepository creates a new in-memory intensity repository
func NewIntensityRepository(expectedRecords int) *IntensityRepository {
	return &IntensityRepository{
		records: make([]entities.MaterialIntensityRecord, 0, expectedRecords),
		byKey:   make(map[entities.SampleKey][]int),
	}
}

// Verify interface compliance
var _ repositories.IntensityRepository = (*IntensityRepository)(nil)

// LoadRecords loads records into the repository
func (r *IntensityRepository) LoadRecords(records []*entities.MaterialIntensityRecord) error {
	for i, record := range records {
		if record == nil {
			return fmt.Errorf("intensity record %d is nil", i)
		}
		r.AddRecord(*record)
	}
	return nil
}

// AddRecord adds a single record to the repository
func (r *IntensityRepository) AddRecord(record entities.MaterialIntensityRecord) {
	key := entities.SampleKey{
		Structure: record.Structure.Normalize(),
		Material:  record.Material.Normalize(),
		Country:   record.Country.Normalize(),
	}
	r.byKey[key] = append(r.byKey[key], len(r.records))
	r.records = append(r.records, record)
}

// LookupIntensity returns the values of all records matching the key, in
// table order
func (r *IntensityRepository) LookupIntensity(key entities.SampleKey) ([]decimal.Decimal, error) {
	records, err := r.GetRecords(key)
	if err != nil {
		return nil, err
	}

	values := make([]decimal.Decimal, len(records))
	for i, record := range records {
		values[i] = record.Value
	}
	return values, nil
}

// LookupIntensityByFunction returns values for records matching the key and
// the building function
func (r *IntensityRepository) LookupIntensityByFunction(function entities.BuildingFunction, key entities.SampleKey) ([]decimal.Decimal, error) {
	records, err := r.GetRecords(key)
	if err != nil {
		return nil, err
	}

	want := function.Normalize()
	var values []decimal.Decimal
	for _, record := range records {
		if record.Function == want {
			values = append(values, record.Value)
		}
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no intensity records for function %s, key %s", repositories.ErrKeyNotFound, function, key)
	}
	return values, nil
}

// GetRecords returns all records matching the key, in table order
func (r *IntensityRepository) GetRecords(key entities.SampleKey) ([]*entities.MaterialIntensityRecord, error) {
	normalized := entities.SampleKey{
		Structure: key.Structure.Normalize(),
		Material:  key.Material.Normalize(),
		Country:   key.Country.Normalize(),
	}

	indexes, exists := r.byKey[normalized]
	if !exists || len(indexes) == 0 {
		return nil, fmt.Errorf("%w: no intensity records for key %s", repositories.ErrKeyNotFound, normalized)
	}

	records := make([]*entities.MaterialIntensityRecord, len(indexes))
	for i, idx := range indexes {
		records[i] = &r.records[idx]
	}
	return records, nil
}

// Materials returns the distinct materials present in the table
func (r *IntensityRepository) Materials() []entities.Material {
	seen := make(map[entities.Material]bool)
	for key := range r.byKey {
		seen[key.Material] = true
	}
	out := make([]entities.Material, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Structures returns the distinct structure labels present in the table
func (r *IntensityRepository) Structures() []entities.Structure {
	seen := make(map[entities.Structure]bool)
	for key := range r.byKey {
		seen[key.Structure] = true
	}
	out := make([]entities.Structure, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Countries returns the distinct country labels present in the table
func (r *IntensityRepository) Countries() []entities.Country {
	seen := make(map[entities.Country]bool)
	for key := range r.byKey {
		seen[key.Country] = true
	}
	out := make([]entities.Country, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Functions returns the distinct building functions present in the table
func (r *IntensityRepository) Functions() []entities.BuildingFunction {
	seen := make(map[entities.BuildingFunction]bool)
	for i := range r.records {
		if r.records[i].Function != "" {
			seen[r.records[i].Function] = true
		}
	}
	out := make([]entities.BuildingFunction, 0, len(seen))
	for f := range seen {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of loaded records
func (r *IntensityRepository) Len() int {
	return len(r.records)
}
