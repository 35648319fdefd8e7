package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testRules = []NutrientRule{
	{Field: NutrientField_Fat, Contains: "Total lipid"},
	{Field: NutrientField_Carbohydrates, Contains: "Carbohydrate"},
	{Field: NutrientField_Protein, Contains: "Protein"},
	{Field: NutrientField_VitaminC, Contains: "Vitamin C"},
	{Field: NutrientField_VitaminD, Contains: "Vitamin D"},
	{Field: NutrientField_VitaminB12, Contains: "Vitamin B-12"},
	{Field: NutrientField_Calcium, Contains: "Calcium"},
	{Field: NutrientField_Iron, Contains: "Iron"},
	{Field: NutrientField_Magnesium, Contains: "Magnesium"},
	{Field: NutrientField_Potassium, Contains: "Potassium"},
}

func TestNutrientFields_Order(t *testing.T) {
	names := make([]string, 0, NutrientFieldCount)
	for _, f := range NutrientFields() {
		names = append(names, f.String())
	}
	assert.Equal(t, []string{
		"Fat", "Carbohydrates", "Protein",
		"Vitamin_C", "Vitamin_D", "Vitamin_B12",
		"Calcium", "Iron", "Magnesium", "Potassium",
	}, names)
	assert.Equal(t, 10, NutrientFieldCount)
	assert.Equal(t, "unknown", NutrientField(42).String())
}

func TestParseNutrientField(t *testing.T) {
	f, ok := ParseNutrientField("Vitamin_B12")
	assert.True(t, ok)
	assert.Equal(t, NutrientField_VitaminB12, f)

	_, ok = ParseNutrientField("Vitamin_K")
	assert.False(t, ok)
}

func TestNutrientVector(t *testing.T) {
	var v NutrientVector
	assert.Equal(t, make([]float64, NutrientFieldCount), v.Values())

	w := v.With(NutrientField_Iron, 2.7)
	assert.Equal(t, 0.0, v.Get(NutrientField_Iron), "With must not mutate the receiver")
	assert.Equal(t, 2.7, w.Get(NutrientField_Iron))
	assert.Equal(t, 2.7, w.Values()[NutrientField_Iron])

	m := w.AsMap()
	assert.Len(t, m, NutrientFieldCount)
	assert.Equal(t, 2.7, m["Iron"])
	assert.Equal(t, 0.0, m["Potassium"])

	assert.Equal(t, v, v.With(NutrientField(-1), 5), "out of range fields are ignored")
	assert.Equal(t, 0.0, v.Get(NutrientField(99)))
}

func TestExtractNutrients(t *testing.T) {
	tests := map[string]struct {
		entries  []NutrientEntry
		expected map[NutrientField]float64
	}{
		"no-entries-defaults-to-zero": {
			entries:  nil,
			expected: map[NutrientField]float64{},
		},
		"matches-by-substring": {
			entries: []NutrientEntry{
				{Name: "Protein", Value: 2.86},
				{Name: "Total lipid (fat)", Value: 0.39},
				{Name: "Carbohydrate, by difference", Value: 3.63},
				{Name: "Vitamin C, total ascorbic acid", Value: 28.1},
				{Name: "Iron, Fe", Value: 2.71},
				{Name: "Vitamin K (phylloquinone)", Value: 483},
			},
			expected: map[NutrientField]float64{
				NutrientField_Protein:       2.86,
				NutrientField_Fat:           0.39,
				NutrientField_Carbohydrates: 3.63,
				NutrientField_VitaminC:      28.1,
				NutrientField_Iron:          2.71,
			},
		},
		"last-matching-entry-wins": {
			entries: []NutrientEntry{
				{Name: "Vitamin D (D2 + D3)", Value: 1.5},
				{Name: "Vitamin D (D2 + D3), International Units", Value: 60},
			},
			expected: map[NutrientField]float64{
				NutrientField_VitaminD: 60,
			},
		},
		"first-rule-in-order-picks-the-slot": {
			entries: []NutrientEntry{
				{Name: "Protein and Calcium blend", Value: 7},
			},
			expected: map[NutrientField]float64{
				NutrientField_Protein: 7,
			},
		},
		"unmatched-entries-are-ignored": {
			entries: []NutrientEntry{
				{Name: "Energy", Value: 23},
				{Name: "Water", Value: 91.4},
			},
			expected: map[NutrientField]float64{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ExtractNutrients(testRules, tt.entries)
			for _, f := range NutrientFields() {
				assert.Equal(t, tt.expected[f], got.Get(f), "field %s", f)
			}
			assert.Len(t, got.AsMap(), NutrientFieldCount)
		})
	}
}
