package domain

// Classifier is a pre-trained interaction classifier.
type Classifier interface {
	// InputWidth returns the feature vector width the model was trained on.
	InputWidth() int
	// NumClasses returns the number of classes in the probability distribution.
	NumClasses() int
	// PredictProba returns one probability per class for features.
	PredictProba(features FeatureVector) ([]float64, error)
}

// ArgMax returns the index of the largest value in probs and that value.
// Ties resolve to the lowest index. It returns -1 for an empty slice.
func ArgMax(probs []float64) (int, float64) {
	best := -1
	var bestValue float64
	for i, p := range probs {
		if best == -1 || p > bestValue {
			best = i
			bestValue = p
		}
	}
	return best, bestValue
}
