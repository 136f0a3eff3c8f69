package testing

import (
	"github.com/shopspring/decimal"

	"github.com/KeaganHRankin/rasmi-sampler/pkg/domain/entities"
	"github.com/KeaganHRankin/rasmi-sampler/pkg/infrastructure/repositories/memory"
)

// mustIntensityRecord is a helper for tests - panics on validation error
func mustIntensityRecord(material entities.Material, function entities.BuildingFunction, structure entities.Structure, country entities.Country, value string) *entities.MaterialIntensityRecord {
	record, err := entities.NewMaterialIntensityRecord(material, function, structure, country, decimal.RequireFromString(value), 2023, "RASMI")
	if err != nil {
		panic(err)
	}
	return record
}

// mustFactorRecord is a helper for tests - panics on validation error
func mustFactorRecord(material entities.Material, value string, geos []entities.Country, note string) *entities.EmissionFactorRecord {
	record, err := entities.NewEmissionFactorRecord(material, decimal.RequireFromString(value), "kgco2e/kg", geos, "ecoinvent 3.9", note)
	if err != nil {
		panic(err)
	}
	return record
}

// BuildSimpleTestData creates repositories with one multi-observation
// concrete key and singleton keys for degenerate-distribution tests
func BuildSimpleTestData() (*memory.IntensityRepository, *memory.FactorRepository) {
	intensityRepo := memory.NewIntensityRepository(8)
	_ = intensityRepo.LoadRecords([]*entities.MaterialIntensityRecord{
		mustIntensityRecord("concrete", "rm", "rc", "canada", "300.0"),
		mustIntensityRecord("concrete", "rm", "rc", "canada", "280.5"),
		mustIntensityRecord("concrete", "rm", "rc", "canada", "312.25"),
		mustIntensityRecord("steel", "rm", "rc", "canada", "2.0"),
		mustIntensityRecord("wood", "rm", "timber", "global", "120.0"),
	})

	factorRepo := memory.NewFactorRepository(8)
	_ = factorRepo.LoadRecords([]*entities.EmissionFactorRecord{
		mustFactorRecord("concrete", "0.12", nil, ""),
		mustFactorRecord("concrete", "0.15", nil, ""),
		mustFactorRecord("steel", "3.0", nil, ""),
		mustFactorRecord("wood", "0.45", nil, ""),
	})

	return intensityRepo, factorRepo
}

// BuildFullMaterialTestData creates repositories covering the whole
// canonical material set for one structure/country, for aggregate runs
func BuildFullMaterialTestData(structure entities.Structure, country entities.Country) (*memory.IntensityRepository, *memory.FactorRepository) {
	intensityRepo := memory.NewIntensityRepository(16)
	factorRepo := memory.NewFactorRepository(16)

	intensities := map[entities.Material]string{
		"concrete": "300.0",
		"brick":    "80.0",
		"wood":     "40.0",
		"steel":    "45.0",
		"glass":    "5.0",
		"plastics": "3.5",
		"aluminum": "1.2",
		"copper":   "0.8",
	}
	factors := map[entities.Material]string{
		"concrete": "0.12",
		"brick":    "0.2",
		"wood":     "0.45",
		"steel":    "1.85",
		"glass":    "1.1",
		"plastics": "3.1",
		"aluminum": "8.5",
		"copper":   "2.9",
	}

	for _, material := range entities.Materials() {
		_ = intensityRepo.LoadRecords([]*entities.MaterialIntensityRecord{
			mustIntensityRecord(material, "rm", structure, country, intensities[material]),
		})
		_ = factorRepo.LoadRecords([]*entities.EmissionFactorRecord{
			mustFactorRecord(material, factors[material], nil, ""),
		})
	}
	// Second plastics row excluded under the default pathway
	_ = factorRepo.LoadRecords([]*entities.EmissionFactorRecord{
		mustFactorRecord("plastics", "4.7", nil, "XPS-HFC"),
	})

	return intensityRepo, factorRepo
}
