package domain

// FeatureVector is the numeric input consumed by the classifier: the structure vector followed by
// the nutrient values in feature order.
type FeatureVector []float64

// CombineFeatures concatenates the structure vector and the nutrient values, structure first.
func CombineFeatures(structure []float64, nutrients NutrientVector) FeatureVector {
	fv := make(FeatureVector, 0, len(structure)+NutrientFieldCount)
	fv = append(fv, structure...)
	fv = append(fv, nutrients.Values()...)
	return fv
}
