package usecases

import (
	"context"

	"github.com/cleitonmarx/drugfood-interactions/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// CheckHealth defines the interface for the CheckHealth use case.
type CheckHealth interface {
	Query(ctx context.Context) domain.HealthStatus
}

// CheckHealthImpl is the implementation of the CheckHealth use case.
type CheckHealthImpl struct {
	models       domain.InferenceModels
	timeProvider domain.CurrentTimeProvider
}

// NewCheckHealthImpl creates a new instance of CheckHealthImpl.
func NewCheckHealthImpl(models domain.InferenceModels, timeProvider domain.CurrentTimeProvider) CheckHealthImpl {
	return CheckHealthImpl{
		models:       models,
		timeProvider: timeProvider,
	}
}

// Query reports whether the inference models are loaded.
func (ch CheckHealthImpl) Query(_ context.Context) domain.HealthStatus {
	return domain.HealthStatus{
		ModelsLoaded: ch.models.Loaded(),
		CheckedAt:    ch.timeProvider.Now(),
	}
}

// InitCheckHealth initializes the CheckHealth use case and registers it in the dependency container.
type InitCheckHealth struct {
	Models       domain.InferenceModels     `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the CheckHealth use case in the dependency container.
func (ich InitCheckHealth) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CheckHealth](NewCheckHealthImpl(ich.Models, ich.TimeProvider))
	return ctx, nil
}
