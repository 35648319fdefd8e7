package artifacts

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cleitonmarx/drugfood-interactions/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoadInferenceModels(t *testing.T) {
	narrow := filepath.Join(t.TempDir(), "narrow.json")
	require.NoError(t, os.WriteFile(narrow, []byte(`{"analyzer":"char","ngram_range":[1,1],"vocabulary":{"C":0}}`), 0o600))

	tests := map[string]struct {
		vectorizerPath string
		classifierPath string
		expectLoaded   bool
		expectErr      string
	}{
		"loaded": {
			vectorizerPath: "testdata/vectorizer.json",
			classifierPath: "testdata/classifier.json",
			expectLoaded:   true,
		},
		"width-mismatch": {
			vectorizerPath: narrow,
			classifierPath: "testdata/classifier.json",
			expectErr:      "feature width mismatch",
		},
		"missing-vectorizer": {
			vectorizerPath: "testdata/missing.json",
			classifierPath: "testdata/classifier.json",
			expectErr:      "read vectorizer artifact",
		},
		"missing-both": {
			vectorizerPath: "testdata/missing.json",
			classifierPath: "testdata/missing.json",
			expectErr:      "read classifier artifact",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			models, err := LoadInferenceModels(tt.vectorizerPath, tt.classifierPath)
			if tt.expectErr != "" {
				assert.ErrorContains(t, err, tt.expectErr)
				assert.False(t, models.Loaded())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectLoaded, models.Loaded())
			assert.Equal(t, 15, models.FeatureWidth())
		})
	}
}

func TestLoadInferenceModels_EndToEnd(t *testing.T) {
	models, err := LoadInferenceModels("testdata/vectorizer.json", "testdata/classifier.json")
	require.NoError(t, err)

	nutrients := domain.NutrientVector{}.With(domain.NutrientField_Potassium, 558)
	features, err := models.Featurize("CC(=O)O", nutrients)
	require.NoError(t, err)
	assert.Len(t, features, 15)
	assert.Equal(t, 558.0, features[14])

	idx, confidence, probs, err := models.Classify(features)
	require.NoError(t, err)
	assert.Equal(t, 4, idx)
	assert.Equal(t, domain.EffectLabel_Harmful, domain.EffectLabelForIndex(idx))
	assert.InDelta(t, probs[4], confidence, 1e-12)
}

func TestInitInferenceModels_Initialize(t *testing.T) {
	tests := map[string]struct {
		vectorizerPath string
		expectLoaded   bool
		expectLevel    zapcore.Level
	}{
		"loaded": {
			vectorizerPath: "testdata/vectorizer.json",
			expectLoaded:   true,
			expectLevel:    zapcore.InfoLevel,
		},
		"unavailable": {
			vectorizerPath: "testdata/missing.json",
			expectLoaded:   false,
			expectLevel:    zapcore.ErrorLevel,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(depend.ClearContainer)
			core, logs := observer.New(zapcore.InfoLevel)

			i := InitInferenceModels{
				Logger:         zap.New(core),
				VectorizerPath: tt.vectorizerPath,
				ClassifierPath: "testdata/classifier.json",
			}
			_, err := i.Initialize(context.Background())
			require.NoError(t, err)

			models, err := depend.Resolve[domain.InferenceModels]()
			require.NoError(t, err)
			assert.Equal(t, tt.expectLoaded, models.Loaded())
			assert.Equal(t, !tt.expectLoaded, models.LoadErr() != nil)

			require.Equal(t, 1, logs.Len())
			assert.Equal(t, tt.expectLevel, logs.All()[0].Level)
		})
	}
}
