package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/KeaganHRankin/rasmi-sampler/pkg/domain/entities"
)

// Loader handles loading the intensity and factor tables from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadIntensityRecords loads RASMI material-intensity records from a CSV file
func (l *Loader) LoadIntensityRecords(filename string) ([]*entities.MaterialIntensityRecord, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open intensity file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read intensity CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("intensity CSV must have header and at least one data row")
	}

	// Validate header
	expectedHeader := []string{"material", "function", "structure", "country", "value", "year", "source"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("intensity CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var out []*entities.MaterialIntensityRecord
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("intensity CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		parsed, err := parseIntensityRecord(record)
		if err != nil {
			return nil, fmt.Errorf("intensity CSV row %d: %w", i+2, err)
		}

		out = append(out, parsed)
	}

	return out, nil
}

// LoadFactorRecords loads LCA emission-factor records from a CSV file
func (l *Loader) LoadFactorRecords(filename string) ([]*entities.EmissionFactorRecord, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open factors file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read factors CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("factors CSV must have header and at least one data row")
	}

	// Validate header
	expectedHeader := []string{"material", "value", "unit", "geos", "dataset", "note"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("factors CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var out []*entities.EmissionFactorRecord
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("factors CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		parsed, err := parseFactorRecord(record)
		if err != nil {
			return nil, fmt.Errorf("factors CSV row %d: %w", i+2, err)
		}

		out = append(out, parsed)
	}

	return out, nil
}

// Helper functions for parsing CSV records

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseIntensityRecord(record []string) (*entities.MaterialIntensityRecord, error) {
	material := entities.Material(record[0])
	function := entities.BuildingFunction(record[1])
	structure := entities.Structure(record[2])
	country := entities.Country(record[3])

	value, err := decimal.NewFromString(strings.TrimSpace(record[4]))
	if err != nil {
		return nil, fmt.Errorf("invalid value: %s", record[4])
	}

	year := 0
	if yearStr := strings.TrimSpace(record[5]); yearStr != "" {
		year, err = strconv.Atoi(yearStr)
		if err != nil {
			return nil, fmt.Errorf("invalid year: %s", record[5])
		}
	}

	source := record[6]

	return entities.NewMaterialIntensityRecord(material, function, structure, country, value, year, source)
}

func parseFactorRecord(record []string) (*entities.EmissionFactorRecord, error) {
	material := entities.Material(record[0])

	value, err := decimal.NewFromString(strings.TrimSpace(record[1]))
	if err != nil {
		return nil, fmt.Errorf("invalid value: %s", record[1])
	}

	unit := strings.TrimSpace(record[2])
	geos := parseGeoList(record[3])
	dataset := record[4]
	note := strings.TrimSpace(record[5])

	return entities.NewEmissionFactorRecord(material, value, unit, geos, dataset, note)
}

// parseGeoList splits the comma-separated geo cell carried over from the
// source dataset (e.g. "CA, US, global")
func parseGeoList(cell string) []entities.Country {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}

	var geos []entities.Country
	for _, part := range strings.Split(cell, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			geos = append(geos, entities.Country(part))
		}
	}
	return geos
}
