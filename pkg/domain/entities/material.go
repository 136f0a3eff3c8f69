package entities

import "strings"

// Material represents a building material label (e.g. "concrete", "steel")
type Material string

// Structure represents a structural system label (e.g. "RC", "timber")
type Structure string

// Country represents a country or region label; "global" marks world-level records
type Country string

// BuildingFunction represents the building use category (e.g. "RM", "NR")
type BuildingFunction string

// CountryGlobal is the label for records that apply to any geography
const CountryGlobal Country = "global"

// Materials returns the canonical material set covered by the RASMI dataset,
// in the fixed order used for multi-material aggregation.
func Materials() []Material {
	return []Material{
		"concrete",
		"brick",
		"wood",
		"steel",
		"glass",
		"plastics",
		"aluminum",
		"copper",
	}
}

// NormalizeLabel canonicalizes a category label for case-insensitive matching
func NormalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Normalize returns the canonical form of the material label
func (m Material) Normalize() Material {
	return Material(NormalizeLabel(string(m)))
}

// Normalize returns the canonical form of the structure label
func (s Structure) Normalize() Structure {
	return Structure(NormalizeLabel(string(s)))
}

// Normalize returns the canonical form of the country label
func (c Country) Normalize() Country {
	return Country(NormalizeLabel(string(c)))
}

// Normalize returns the canonical form of the building function label
func (f BuildingFunction) Normalize() BuildingFunction {
	return BuildingFunction(NormalizeLabel(string(f)))
}
