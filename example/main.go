package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/KeaganHRankin/rasmi-sampler/pkg/application/services/sampling"
	"github.com/KeaganHRankin/rasmi-sampler/pkg/domain/entities"
	"github.com/KeaganHRankin/rasmi-sampler/pkg/infrastructure/config"
	"github.com/KeaganHRankin/rasmi-sampler/pkg/infrastructure/repositories/memory"
)

func main() {
	ctx := context.Background()

	// Create repositories
	intensityRepo := memory.NewIntensityRepository(32)
	factorRepo := memory.NewFactorRepository(32)

	// Set up a small slice of the RASMI and factor tables
	setupReferenceData(intensityRepo, factorRepo)

	// Create the sampling service
	service := sampling.NewService()

	seed := int64(config.DefaultSeed)
	pathway, err := entities.ParsePathway(config.DefaultXPSPathway)
	if err != nil {
		fmt.Printf("invalid pathway: %v\n", err)
		return
	}

	key, err := entities.NewSampleKey("RC", "concrete", "Canada")
	if err != nil {
		fmt.Printf("invalid key: %v\n", err)
		return
	}

	fmt.Println("🏗️  Sampling embodied emissions for RC concrete in Canada...")
	result, err := service.Sample(ctx, intensityRepo, factorRepo, sampling.SampleRequest{
		Key:   key,
		Draws: config.DefaultDrawCount,
		Seed:  &seed,
	})
	if err != nil {
		fmt.Printf("sampling failed: %v\n", err)
		return
	}

	s := result.Summarize()
	fmt.Println("📊 Combined draws (kgCO2e per m2):")
	fmt.Printf("  Draws: %d\n", s.Count)
	fmt.Printf("  Mean:  %s\n", s.Mean.Round(3))
	fmt.Printf("  Min:   %s\n", s.Min.Round(3))
	fmt.Printf("  Max:   %s\n", s.Max.Round(3))
	fmt.Printf("  P5:    %s\n", result.Quantile(0.05).Round(3))
	fmt.Printf("  P95:   %s\n", result.Quantile(0.95).Round(3))
	fmt.Println()

	fmt.Println("🏗️  Sampling whole-building totals across all materials...")
	total, err := service.SampleTotal(ctx, intensityRepo, factorRepo, sampling.TotalRequest{
		Structure: "RC",
		Country:   "Canada",
		Draws:     config.DefaultDrawCount,
		Seed:      &seed,
		Pathway:   pathway,
	})
	if err != nil {
		fmt.Printf("total sampling failed: %v\n", err)
		return
	}

	ts := total.Summarize()
	fmt.Println("📊 Per-draw totals (kgCO2e per m2):")
	fmt.Printf("  Materials: %d\n", len(total.Materials))
	fmt.Printf("  Mean:      %s\n", ts.Mean.Round(3))
	fmt.Printf("  Median:    %s\n", total.Quantile(0.5).Round(3))
}

func setupReferenceData(intensityRepo *memory.IntensityRepository, factorRepo *memory.FactorRepository) {
	intensities := map[entities.Material][]string{
		"concrete": {"295.0", "310.5", "288.25", "301.0"},
		"brick":    {"78.0", "85.5"},
		"wood":     {"38.0", "42.5"},
		"steel":    {"44.0", "47.25"},
		"glass":    {"4.8", "5.4"},
		"plastics": {"3.2", "3.9"},
		"aluminum": {"1.1", "1.4"},
		"copper":   {"0.7", "0.9"},
	}
	factors := map[entities.Material][]string{
		"concrete": {"0.11", "0.13"},
		"brick":    {"0.19", "0.22"},
		"wood":     {"0.42", "0.48"},
		"steel":    {"1.72", "1.95"},
		"glass":    {"1.05", "1.18"},
		"plastics": {"2.9", "3.3"},
		"aluminum": {"8.1", "8.9"},
		"copper":   {"2.7", "3.1"},
	}

	for material, values := range intensities {
		for _, v := range values {
			record, err := entities.NewMaterialIntensityRecord(material, "rm", "rc", "canada", decimal.RequireFromString(v), 2023, "RASMI")
			if err != nil {
				panic(err)
			}
			intensityRepo.AddRecord(*record)
		}
	}
	for material, values := range factors {
		for _, v := range values {
			record, err := entities.NewEmissionFactorRecord(material, decimal.RequireFromString(v), "kgco2e/kg", nil, "ecoinvent 3.9", "")
			if err != nil {
				panic(err)
			}
			factorRepo.AddRecord(*record)
		}
	}
}
