package artifacts

import (
	"context"
	"errors"

	"github.com/cleitonmarx/drugfood-interactions/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"go.uber.org/zap"
)

// InitInferenceModels loads the vectorizer and classifier once at start-up and registers the
// resulting domain.InferenceModels.
//
// A failed load does not stop the application: the models are registered as unavailable, the
// health endpoint reports them as not loaded and every prediction fails until restart.
type InitInferenceModels struct {
	Logger         *zap.Logger `resolve:""`
	VectorizerPath string      `config:"VECTORIZER_PATH" default:"models/vectorizer.json"`
	ClassifierPath string      `config:"CLASSIFIER_PATH" default:"models/classifier.json"`
}

// Initialize loads the artifacts and registers the inference models.
func (i InitInferenceModels) Initialize(ctx context.Context) (context.Context, error) {
	models, err := LoadInferenceModels(i.VectorizerPath, i.ClassifierPath)
	if err != nil {
		i.Logger.Error("inference models could not be loaded; predictions are disabled",
			zap.Error(err),
			zap.String("vectorizer_path", i.VectorizerPath),
			zap.String("classifier_path", i.ClassifierPath),
		)
		models = domain.UnavailableInferenceModels(err)
	} else {
		i.Logger.Info("inference models loaded",
			zap.String("vectorizer_path", i.VectorizerPath),
			zap.String("classifier_path", i.ClassifierPath),
			zap.Int("feature_width", models.FeatureWidth()),
		)
	}

	depend.Register(models)
	return ctx, nil
}

// LoadInferenceModels loads both artifacts and checks that their feature widths agree.
func LoadInferenceModels(vectorizerPath, classifierPath string) (domain.InferenceModels, error) {
	vectorizer, vErr := LoadNgramVectorizer(vectorizerPath)
	classifier, cErr := LoadXGBoostClassifier(classifierPath)
	if err := errors.Join(vErr, cErr); err != nil {
		return domain.InferenceModels{}, err
	}
	return domain.NewInferenceModels(vectorizer, classifier)
}
