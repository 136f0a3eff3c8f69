package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Pathway represents the XPS insulation production pathway used when
// selecting plastics emission factors
type Pathway int

const (
	PathwayCO2 Pathway = iota
	PathwayHFC
)

// String method for Pathway enum
func (p Pathway) String() string {
	switch p {
	case PathwayCO2:
		return "XPS-CO2"
	case PathwayHFC:
		return "XPS-HFC"
	default:
		return "Unknown"
	}
}

// ParsePathway parses a pathway label as written in configuration
func ParsePathway(s string) (Pathway, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "XPS-CO2", "CO2", "":
		return PathwayCO2, nil
	case "XPS-HFC", "HFC":
		return PathwayHFC, nil
	default:
		return PathwayCO2, fmt.Errorf("invalid xps pathway: %s (expected: XPS-CO2 or XPS-HFC)", s)
	}
}

// excludedNote returns the factor-row note tag the pathway filters out.
// Choosing one pathway removes rows produced under the other.
func (p Pathway) excludedNote() string {
	if p == PathwayCO2 {
		return "XPS-HFC"
	}
	return "XPS-CO2"
}

// Excludes reports whether a factor record note is filtered out under this pathway
func (p Pathway) Excludes(note string) bool {
	return strings.EqualFold(strings.TrimSpace(note), p.excludedNote())
}

// EmissionFactorRecord represents one LCA observation: emitted mass of
// CO2-equivalent per unit mass of material (A1-A3 stages)
type EmissionFactorRecord struct {
	Material Material
	Value    decimal.Decimal
	Unit     string
	Geos     []Country
	Dataset  string
	Note     string
}

// NewEmissionFactorRecord creates a validated EmissionFactorRecord.
// geos holds the countries the factor applies to; empty means any geography.
func NewEmissionFactorRecord(material Material, value decimal.Decimal, unit string, geos []Country, dataset, note string) (*EmissionFactorRecord, error) {
	if material == "" {
		return nil, fmt.Errorf("material cannot be empty")
	}
	if value.IsNegative() {
		return nil, fmt.Errorf("emission factor cannot be negative, got %s", value)
	}

	normalized := make([]Country, 0, len(geos))
	for _, g := range geos {
		if g == "" {
			continue
		}
		normalized = append(normalized, g.Normalize())
	}

	return &EmissionFactorRecord{
		Material: material.Normalize(),
		Value:    value,
		Unit:     unit,
		Geos:     normalized,
		Dataset:  dataset,
		Note:     note,
	}, nil
}

// AppliesTo reports whether the factor covers the given country.
// A record with no geo list covers every geography.
func (r *EmissionFactorRecord) AppliesTo(country Country) bool {
	if len(r.Geos) == 0 {
		return true
	}
	want := country.Normalize()
	for _, g := range r.Geos {
		if g == want {
			return true
		}
	}
	return false
}
