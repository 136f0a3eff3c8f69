package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestEmissionFactorRecord_Validation(t *testing.T) {
	record, err := NewEmissionFactorRecord("Steel", decimal.NewFromFloat(1.85), "kgco2e/kg", []Country{"Canada", "US", ""}, "ecoinvent 3.9", "")
	if err != nil {
		t.Fatalf("Expected valid record creation to succeed: %v", err)
	}
	if record.Material != "steel" {
		t.Errorf("Expected normalized material steel, got %s", record.Material)
	}
	if len(record.Geos) != 2 {
		t.Errorf("Expected empty geo entries to be dropped, got %v", record.Geos)
	}

	if _, err := NewEmissionFactorRecord("", decimal.NewFromInt(1), "kgco2e/kg", nil, "", ""); err == nil {
		t.Error("Expected error for empty material, got none")
	}
	if _, err := NewEmissionFactorRecord("steel", decimal.NewFromInt(-1), "kgco2e/kg", nil, "", ""); err == nil {
		t.Error("Expected error for negative factor, got none")
	}
}

func TestEmissionFactorRecord_AppliesTo(t *testing.T) {
	record, err := NewEmissionFactorRecord("concrete", decimal.NewFromFloat(0.12), "kgco2e/kg", []Country{"Canada", "US"}, "ecoinvent 3.9", "")
	if err != nil {
		t.Fatalf("Failed to create record: %v", err)
	}

	if !record.AppliesTo("CANADA") {
		t.Error("Expected case-insensitive geo match for Canada")
	}
	if record.AppliesTo("france") {
		t.Error("Expected no match for france")
	}

	unrestricted, err := NewEmissionFactorRecord("concrete", decimal.NewFromFloat(0.10), "kgco2e/kg", nil, "ecoinvent 3.9", "")
	if err != nil {
		t.Fatalf("Failed to create record: %v", err)
	}
	if !unrestricted.AppliesTo("france") {
		t.Error("Expected record without geo list to cover any country")
	}
}

func TestPathway_Excludes(t *testing.T) {
	tests := []struct {
		name     string
		pathway  Pathway
		note     string
		excluded bool
	}{
		{"co2_keeps_co2_rows", PathwayCO2, "XPS-CO2", false},
		{"co2_drops_hfc_rows", PathwayCO2, "XPS-HFC", true},
		{"co2_keeps_untagged_rows", PathwayCO2, "", false},
		{"hfc_drops_co2_rows", PathwayHFC, "xps-co2", true},
		{"hfc_keeps_hfc_rows", PathwayHFC, "XPS-HFC", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pathway.Excludes(tt.note); got != tt.excluded {
				t.Errorf("Pathway %s Excludes(%q) = %v, want %v", tt.pathway, tt.note, got, tt.excluded)
			}
		})
	}
}
