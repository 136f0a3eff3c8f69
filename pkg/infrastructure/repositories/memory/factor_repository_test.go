package memory

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/KeaganHRankin/rasmi-sampler/pkg/domain/entities"
	"github.com/KeaganHRankin/rasmi-sampler/pkg/domain/repositories"
)

func factorRecord(t *testing.T, material entities.Material, value float64, geos []entities.Country, note string) *entities.EmissionFactorRecord {
	t.Helper()
	record, err := entities.NewEmissionFactorRecord(material, decimal.NewFromFloat(value), "kgco2e/kg", geos, "ecoinvent 3.9", note)
	if err != nil {
		t.Fatalf("Failed to create factor record: %v", err)
	}
	return record
}

func TestFactorRepository_LookupFactors(t *testing.T) {
	repo := NewFactorRepository(10)

	err := repo.LoadRecords([]*entities.EmissionFactorRecord{
		factorRecord(t, "steel", 1.85, nil, ""),
		factorRecord(t, "steel", 2.10, nil, ""),
		factorRecord(t, "concrete", 0.12, nil, ""),
	})
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}

	values, err := repo.LookupFactors("STEEL")
	if err != nil {
		t.Fatalf("LookupFactors failed: %v", err)
	}
	if len(values) != 2 {
		t.Fatalf("Expected 2 values, got %d", len(values))
	}
	if !values[0].Equal(decimal.NewFromFloat(1.85)) {
		t.Errorf("Expected table order preserved, got %v", values)
	}
}

func TestFactorRepository_LookupFactors_KeyNotFound(t *testing.T) {
	repo := NewFactorRepository(1)
	repo.AddRecord(*factorRecord(t, "steel", 1.85, nil, ""))

	_, err := repo.LookupFactors("wood")
	if !errors.Is(err, repositories.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got %v", err)
	}
}

func TestFactorRepository_LookupFactorsForGeo(t *testing.T) {
	repo := NewFactorRepository(4)
	repo.AddRecord(*factorRecord(t, "concrete", 0.12, []entities.Country{"canada", "us"}, ""))
	repo.AddRecord(*factorRecord(t, "concrete", 0.15, []entities.Country{"france"}, ""))
	repo.AddRecord(*factorRecord(t, "concrete", 0.10, nil, ""))

	values, err := repo.LookupFactorsForGeo("concrete", "canada", entities.PathwayCO2)
	if err != nil {
		t.Fatalf("LookupFactorsForGeo failed: %v", err)
	}
	// Canada-specific row plus the unrestricted row
	if len(values) != 2 {
		t.Fatalf("Expected 2 values for canada, got %d", len(values))
	}

	_, err = repo.LookupFactorsForGeo("concrete", "brazil", entities.PathwayCO2)
	if err != nil {
		t.Fatalf("Expected unrestricted row to cover brazil: %v", err)
	}
}

func TestFactorRepository_LookupFactorsForGeo_PathwayFilter(t *testing.T) {
	repo := NewFactorRepository(3)
	repo.AddRecord(*factorRecord(t, "plastics", 3.1, nil, "XPS-CO2"))
	repo.AddRecord(*factorRecord(t, "plastics", 4.7, nil, "XPS-HFC"))
	repo.AddRecord(*factorRecord(t, "plastics", 2.2, nil, ""))

	co2, err := repo.LookupFactorsForGeo("plastics", "global", entities.PathwayCO2)
	if err != nil {
		t.Fatalf("LookupFactorsForGeo failed: %v", err)
	}
	if len(co2) != 2 {
		t.Errorf("Expected HFC row dropped under CO2 pathway, got %d values", len(co2))
	}

	hfc, err := repo.LookupFactorsForGeo("plastics", "global", entities.PathwayHFC)
	if err != nil {
		t.Fatalf("LookupFactorsForGeo failed: %v", err)
	}
	if len(hfc) != 2 {
		t.Errorf("Expected CO2 row dropped under HFC pathway, got %d values", len(hfc))
	}
}

func TestFactorRepository_LookupFactorsForGeo_AllFilteredOut(t *testing.T) {
	repo := NewFactorRepository(1)
	repo.AddRecord(*factorRecord(t, "plastics", 4.7, []entities.Country{"canada"}, "XPS-HFC"))

	_, err := repo.LookupFactorsForGeo("plastics", "canada", entities.PathwayCO2)
	if !errors.Is(err, repositories.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound when every row is filtered out, got %v", err)
	}
}

func TestFactorRepository_Materials(t *testing.T) {
	repo := NewFactorRepository(2)
	repo.AddRecord(*factorRecord(t, "steel", 1.85, nil, ""))
	repo.AddRecord(*factorRecord(t, "concrete", 0.12, nil, ""))

	mats := repo.Materials()
	if len(mats) != 2 || mats[0] != "concrete" || mats[1] != "steel" {
		t.Errorf("Unexpected materials: %v", mats)
	}
	if repo.Len() != 2 {
		t.Errorf("Expected 2 records, got %d", repo.Len())
	}
}
