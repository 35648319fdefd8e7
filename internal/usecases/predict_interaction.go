package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/cleitonmarx/drugfood-interactions/internal/domain"
	"github.com/cleitonmarx/drugfood-interactions/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PredictInteraction defines the interface for the PredictInteraction use case.
type PredictInteraction interface {
	Execute(ctx context.Context, drugName, foodName string) (domain.PredictionResult, error)
}

// PredictInteractionImpl is the implementation of the PredictInteraction use case.
type PredictInteractionImpl struct {
	structureResolver domain.StructureResolver
	nutrientResolver  domain.NutrientResolver
	models            domain.InferenceModels
	timeProvider      domain.CurrentTimeProvider
	logger            *zap.Logger
}

// NewPredictInteractionImpl creates a new instance of PredictInteractionImpl.
func NewPredictInteractionImpl(
	structureResolver domain.StructureResolver,
	nutrientResolver domain.NutrientResolver,
	models domain.InferenceModels,
	timeProvider domain.CurrentTimeProvider,
	logger *zap.Logger,
) PredictInteractionImpl {
	return PredictInteractionImpl{
		structureResolver: structureResolver,
		nutrientResolver:  nutrientResolver,
		models:            models,
		timeProvider:      timeProvider,
		logger:            logger,
	}
}

// Execute predicts the interaction effect between a drug and a food.
func (pi PredictInteractionImpl) Execute(ctx context.Context, drugName, foodName string) (domain.PredictionResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	drugName, foodName = strings.TrimSpace(drugName), strings.TrimSpace(foodName)
	if err := validatePredictionInput(drugName, foodName); telemetry.RecordErrorAndStatus(span, err) {
		return domain.PredictionResult{}, err
	}
	span.SetAttributes(
		attribute.String("drug.name", drugName),
		attribute.String("food.name", foodName),
	)

	if !pi.models.Loaded() {
		err := domain.NewServiceUnavailableErr("prediction service is unavailable: inference models are not loaded")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.PredictionResult{}, err
	}

	structure, nutrients, err := pi.lookup(spanCtx, drugName, foodName)
	if telemetry.RecordErrorAndStatus(span, err) {
		RecordLookupFailure(spanCtx, err)
		return domain.PredictionResult{}, err
	}

	features, err := pi.models.Featurize(structure, nutrients)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.PredictionResult{}, pi.inferenceFailure("vectorize structure", drugName, foodName, err)
	}

	classIndex, confidence, _, err := pi.models.Classify(features)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.PredictionResult{}, pi.inferenceFailure("classify features", drugName, foodName, err)
	}

	effect := domain.EffectLabelForIndex(classIndex)
	span.SetAttributes(
		attribute.String("prediction.effect", string(effect)),
		attribute.Float64("prediction.confidence", confidence),
	)
	RecordPrediction(spanCtx, effect)

	return domain.PredictionResult{
		Effect:      effect,
		ClassIndex:  classIndex,
		Confidence:  confidence,
		Explanation: effect.Explain(confidence),
		Structure:   structure,
		Nutrients:   nutrients,
		DrugName:    drugName,
		FoodName:    foodName,
		Timestamp:   pi.timeProvider.Now(),
	}, nil
}

// lookup resolves the structure and the nutrients concurrently. The first failure cancels the
// other lookup and is the one returned.
func (pi PredictInteractionImpl) lookup(ctx context.Context, drugName, foodName string) (string, domain.NutrientVector, error) {
	var (
		structure string
		nutrients domain.NutrientVector
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		structure, err = pi.structureResolver.ResolveStructure(gCtx, drugName)
		return err
	})
	g.Go(func() error {
		var err error
		nutrients, err = pi.nutrientResolver.ResolveNutrients(gCtx, foodName)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", domain.NutrientVector{}, err
	}
	return structure, nutrients, nil
}

func (pi PredictInteractionImpl) inferenceFailure(stage, drugName, foodName string, err error) error {
	pi.logger.Error("prediction failed",
		zap.String("stage", stage),
		zap.String("drug_name", drugName),
		zap.String("food_name", foodName),
		zap.Error(err),
	)

	var infErr *domain.InferenceErr
	if errors.As(err, &infErr) {
		return infErr
	}
	return domain.NewInferenceErr(stage, err)
}

func validatePredictionInput(drugName, foodName string) error {
	if drugName == "" {
		return domain.NewValidationErr("drug_name must not be empty")
	}
	if foodName == "" {
		return domain.NewValidationErr("food_name must not be empty")
	}
	return nil
}

// InitPredictInteraction initializes the PredictInteraction use case and registers it in the dependency container.
type InitPredictInteraction struct {
	StructureResolver domain.StructureResolver   `resolve:""`
	NutrientResolver  domain.NutrientResolver    `resolve:""`
	Models            domain.InferenceModels     `resolve:""`
	TimeProvider      domain.CurrentTimeProvider `resolve:""`
	Logger            *zap.Logger                `resolve:""`
}

// Initialize registers the PredictInteraction use case in the dependency container.
func (ipi InitPredictInteraction) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[PredictInteraction](NewPredictInteractionImpl(
		ipi.StructureResolver,
		ipi.NutrientResolver,
		ipi.Models,
		ipi.TimeProvider,
		ipi.Logger,
	))
	return ctx, nil
}
