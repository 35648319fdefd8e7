package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/drugfood-interactions/internal/domain"
	"github.com/cleitonmarx/drugfood-interactions/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ResolveNutrients defines the interface for the ResolveNutrients use case.
type ResolveNutrients interface {
	Query(ctx context.Context, foodName string) (domain.NutrientVector, error)
}

// ResolveNutrientsImpl is the implementation of the ResolveNutrients use case.
type ResolveNutrientsImpl struct {
	resolver domain.NutrientResolver
}

// NewResolveNutrientsImpl creates a new instance of ResolveNutrientsImpl.
func NewResolveNutrientsImpl(resolver domain.NutrientResolver) ResolveNutrientsImpl {
	return ResolveNutrientsImpl{resolver: resolver}
}

// Query returns the nutrient vector of foodName.
func (rn ResolveNutrientsImpl) Query(ctx context.Context, foodName string) (domain.NutrientVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	foodName = strings.TrimSpace(foodName)
	if foodName == "" {
		err := domain.NewValidationErr("food_name must not be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.NutrientVector{}, err
	}

	nutrients, err := rn.resolver.ResolveNutrients(spanCtx, foodName)
	if telemetry.RecordErrorAndStatus(span, err) {
		RecordLookupFailure(spanCtx, err)
		return domain.NutrientVector{}, err
	}
	return nutrients, nil
}

// InitResolveNutrients initializes the ResolveNutrients use case and registers it in the dependency container.
type InitResolveNutrients struct {
	Resolver domain.NutrientResolver `resolve:""`
}

// Initialize registers the ResolveNutrients use case in the dependency container.
func (irn InitResolveNutrients) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ResolveNutrients](NewResolveNutrientsImpl(irn.Resolver))
	return ctx, nil
}
