package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaterialIntensityRecord represents one RASMI observation: the mass of a
// material per unit floor area for a structure type in a country
type MaterialIntensityRecord struct {
	Material  Material
	Function  BuildingFunction
	Structure Structure
	Country   Country
	Value     decimal.Decimal
	Year      int
	Source    string
}

// NewMaterialIntensityRecord creates a validated MaterialIntensityRecord
func NewMaterialIntensityRecord(material Material, function BuildingFunction, structure Structure, country Country, value decimal.Decimal, year int, source string) (*MaterialIntensityRecord, error) {
	if material == "" {
		return nil, fmt.Errorf("material cannot be empty")
	}
	if structure == "" {
		return nil, fmt.Errorf("structure cannot be empty")
	}
	if country == "" {
		return nil, fmt.Errorf("country cannot be empty")
	}
	if value.IsNegative() {
		return nil, fmt.Errorf("intensity value cannot be negative, got %s", value)
	}

	return &MaterialIntensityRecord{
		Material:  material.Normalize(),
		Function:  function.Normalize(),
		Structure: structure.Normalize(),
		Country:   country.Normalize(),
		Value:     value,
		Year:      year,
		Source:    source,
	}, nil
}

// SampleKey identifies one empirical intensity distribution
type SampleKey struct {
	Structure Structure
	Material  Material
	Country   Country
}

// NewSampleKey creates a validated, normalized SampleKey
func NewSampleKey(structure Structure, material Material, country Country) (SampleKey, error) {
	if structure == "" {
		return SampleKey{}, fmt.Errorf("structure cannot be empty")
	}
	if material == "" {
		return SampleKey{}, fmt.Errorf("material cannot be empty")
	}
	if country == "" {
		return SampleKey{}, fmt.Errorf("country cannot be empty")
	}

	return SampleKey{
		Structure: structure.Normalize(),
		Material:  material.Normalize(),
		Country:   country.Normalize(),
	}, nil
}

// String method for diagnostics in KeyNotFound errors
func (k SampleKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Structure, k.Material, k.Country)
}
