package domain

import (
	"context"
	"strings"
)

// NutrientField is one slot of the fixed nutrient feature block.
type NutrientField int

// The declaration order is the order the classifier was trained with. Do not reorder.
const (
	NutrientField_Fat NutrientField = iota
	NutrientField_Carbohydrates
	NutrientField_Protein
	NutrientField_VitaminC
	NutrientField_VitaminD
	NutrientField_VitaminB12
	NutrientField_Calcium
	NutrientField_Iron
	NutrientField_Magnesium
	NutrientField_Potassium

	nutrientFieldCount
)

// NutrientFieldCount is the number of nutrient values appended to every feature vector.
const NutrientFieldCount = int(nutrientFieldCount)

var nutrientFieldNames = [NutrientFieldCount]string{
	"Fat",
	"Carbohydrates",
	"Protein",
	"Vitamin_C",
	"Vitamin_D",
	"Vitamin_B12",
	"Calcium",
	"Iron",
	"Magnesium",
	"Potassium",
}

// String returns the external name of the field, e.g. "Vitamin_C".
func (f NutrientField) String() string {
	if f < 0 || f >= nutrientFieldCount {
		return "unknown"
	}
	return nutrientFieldNames[f]
}

// NutrientFields returns all nutrient fields in feature order.
func NutrientFields() []NutrientField {
	fields := make([]NutrientField, NutrientFieldCount)
	for i := range fields {
		fields[i] = NutrientField(i)
	}
	return fields
}

// ParseNutrientField returns the field with the given external name.
func ParseNutrientField(name string) (NutrientField, bool) {
	for i, n := range nutrientFieldNames {
		if n == name {
			return NutrientField(i), true
		}
	}
	return 0, false
}

// NutrientVector holds a value for every nutrient field. The zero value has all fields set to 0.
type NutrientVector struct {
	values [NutrientFieldCount]float64
}

// Get returns the value of field.
func (v NutrientVector) Get(field NutrientField) float64 {
	if field < 0 || field >= nutrientFieldCount {
		return 0
	}
	return v.values[field]
}

// With returns a copy of v with field set to value.
func (v NutrientVector) With(field NutrientField, value float64) NutrientVector {
	if field >= 0 && field < nutrientFieldCount {
		v.values[field] = value
	}
	return v
}

// Values returns the nutrient values in feature order.
func (v NutrientVector) Values() []float64 {
	out := make([]float64, NutrientFieldCount)
	copy(out, v.values[:])
	return out
}

// AsMap returns the values keyed by external field name. All fields are present.
func (v NutrientVector) AsMap() map[string]float64 {
	out := make(map[string]float64, NutrientFieldCount)
	for i, name := range nutrientFieldNames {
		out[name] = v.values[i]
	}
	return out
}

// NutrientEntry is a single named nutrient amount reported by an upstream source.
type NutrientEntry struct {
	Name  string
	Value float64
}

// NutrientRule maps upstream nutrient names containing Contains to Field.
type NutrientRule struct {
	Field    NutrientField
	Contains string
}

// ExtractNutrients builds a NutrientVector from upstream entries.
//
// Entries are visited in upstream order. For each entry the first rule whose substring occurs in
// the entry name picks the slot, and the entry value replaces whatever the slot held before.
// When several entries land in the same slot the last one wins; values are never accumulated.
func ExtractNutrients(rules []NutrientRule, entries []NutrientEntry) NutrientVector {
	var v NutrientVector
	for _, e := range entries {
		for _, r := range rules {
			if r.Contains == "" || !strings.Contains(e.Name, r.Contains) {
				continue
			}
			v = v.With(r.Field, e.Value)
			break
		}
	}
	return v
}

// NutrientResolver looks up nutrient composition for a food.
type NutrientResolver interface {
	// ResolveNutrients returns the nutrient vector of the first food matching name.
	// Failures are reported as *LookupErr.
	ResolveNutrients(ctx context.Context, name string) (NutrientVector, error)
}
