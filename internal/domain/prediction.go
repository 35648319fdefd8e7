package domain

import "time"

// PredictionResult is the outcome of one interaction prediction.
type PredictionResult struct {
	Effect      EffectLabel
	ClassIndex  int
	Confidence  float64 // probability of the predicted class, in [0, 1]
	Explanation string
	Structure   string
	Nutrients   NutrientVector
	DrugName    string
	FoodName    string
	Timestamp   time.Time
}

// HealthStatus reports whether the service can serve predictions.
type HealthStatus struct {
	ModelsLoaded bool
	CheckedAt    time.Time
}
