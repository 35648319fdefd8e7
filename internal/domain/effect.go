package domain

import "fmt"

// EffectLabel is the human readable outcome of an interaction prediction.
type EffectLabel string

const (
	EffectLabel_NoEffect EffectLabel = "no_effect"
	EffectLabel_Positive EffectLabel = "positive"
	EffectLabel_Possible EffectLabel = "possible"
	EffectLabel_Negative EffectLabel = "negative"
	EffectLabel_Harmful  EffectLabel = "harmful"

	// EffectLabel_Unknown is returned for class indices outside the enumeration.
	// It is a valid, uninformative result and not an error.
	EffectLabel_Unknown EffectLabel = "unknown"
)

var effectLabels = []EffectLabel{
	EffectLabel_NoEffect,
	EffectLabel_Positive,
	EffectLabel_Possible,
	EffectLabel_Negative,
	EffectLabel_Harmful,
}

// EffectLabelForIndex maps a classifier class index to its effect label.
func EffectLabelForIndex(index int) EffectLabel {
	if index < 0 || index >= len(effectLabels) {
		return EffectLabel_Unknown
	}
	return effectLabels[index]
}

// EffectLabels returns the known labels ordered by class index.
func EffectLabels() []EffectLabel {
	out := make([]EffectLabel, len(effectLabels))
	copy(out, effectLabels)
	return out
}

var effectExplanations = map[EffectLabel]string{
	EffectLabel_Harmful:  "Significant interaction detected (confidence: %.2f). This food may interfere with drug efficacy or cause adverse effects. Consult your healthcare provider.",
	EffectLabel_Negative: "Minor negative interaction possible (confidence: %.2f). The food may slightly reduce drug effectiveness or absorption.",
	EffectLabel_NoEffect: "No significant interaction expected (confidence: %.2f). The food is unlikely to affect drug absorption or metabolism significantly.",
	EffectLabel_Positive: "Beneficial interaction detected (confidence: %.2f). This food may enhance drug absorption, stability, or therapeutic effects.",
	EffectLabel_Possible: "Potential interaction identified (confidence: %.2f). Monitor for changes in drug effectiveness or side effects.",
}

// Explain returns a short plain-language summary of the label at the given confidence.
func (l EffectLabel) Explain(confidence float64) string {
	if tmpl, ok := effectExplanations[l]; ok {
		return fmt.Sprintf(tmpl, confidence)
	}
	return fmt.Sprintf("Interaction analysis completed with %.2f confidence.", confidence)
}
