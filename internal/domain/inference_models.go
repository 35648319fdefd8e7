package domain

import "errors"

// InferenceModels bundles the vectorizer and classifier loaded at start-up.
// It is built once and never mutated, so it can be shared by concurrent requests.
type InferenceModels struct {
	vectorizer StructureVectorizer
	classifier Classifier
	loadErr    error
}

// NewInferenceModels checks that the artifacts agree on the feature width and bundles them.
func NewInferenceModels(v StructureVectorizer, c Classifier) (InferenceModels, error) {
	if v == nil {
		return InferenceModels{}, NewConfigurationErr("vectorizer is not loaded")
	}
	if c == nil {
		return InferenceModels{}, NewConfigurationErr("classifier is not loaded")
	}
	want := v.Width() + NutrientFieldCount
	if c.InputWidth() != want {
		return InferenceModels{}, NewConfigurationErr(
			"feature width mismatch: classifier expects %d features, vectorizer (%d) + nutrients (%d) produce %d",
			c.InputWidth(), v.Width(), NutrientFieldCount, want,
		)
	}
	return InferenceModels{vectorizer: v, classifier: c}, nil
}

// UnavailableInferenceModels returns models that report err for the life of the process.
func UnavailableInferenceModels(err error) InferenceModels {
	if err == nil {
		err = errors.New("inference models were not loaded")
	}
	return InferenceModels{loadErr: err}
}

// Loaded reports whether both artifacts are available.
func (m InferenceModels) Loaded() bool {
	return m.loadErr == nil && m.vectorizer != nil && m.classifier != nil
}

// LoadErr returns the error that prevented the models from loading, if any.
func (m InferenceModels) LoadErr() error {
	if m.loadErr != nil {
		return m.loadErr
	}
	if !m.Loaded() {
		return NewConfigurationErr("inference models were not loaded")
	}
	return nil
}

// FeatureWidth returns the width of the feature vectors accepted by the classifier.
func (m InferenceModels) FeatureWidth() int {
	if !m.Loaded() {
		return 0
	}
	return m.classifier.InputWidth()
}

// Featurize vectorizes structure and appends the nutrient values.
func (m InferenceModels) Featurize(structure string, nutrients NutrientVector) (FeatureVector, error) {
	if m.vectorizer == nil {
		return nil, NewConfigurationErr("vectorizer is not loaded")
	}
	sv, err := m.vectorizer.Transform(structure)
	if err != nil {
		return nil, err
	}
	return CombineFeatures(sv, nutrients), nil
}

// Classify runs the classifier and returns the winning class index, its probability and the full
// distribution.
func (m InferenceModels) Classify(features FeatureVector) (int, float64, []float64, error) {
	if m.classifier == nil {
		return 0, 0, nil, NewConfigurationErr("classifier is not loaded")
	}
	probs, err := m.classifier.PredictProba(features)
	if err != nil {
		return 0, 0, nil, err
	}
	idx, confidence := ArgMax(probs)
	if idx < 0 {
		return 0, 0, nil, NewInferenceErr("classifier returned an empty distribution", nil)
	}
	return idx, clampProbability(confidence), probs, nil
}

func clampProbability(p float64) float64 {
	switch {
	case p < 0 || p != p:
		return 0
	case p > 1:
		return 1
	}
	return p
}
