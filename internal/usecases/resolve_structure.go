package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/drugfood-interactions/internal/domain"
	"github.com/cleitonmarx/drugfood-interactions/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ResolveStructure defines the interface for the ResolveStructure use case.
type ResolveStructure interface {
	Query(ctx context.Context, drugName string) (string, error)
}

// ResolveStructureImpl is the implementation of the ResolveStructure use case.
type ResolveStructureImpl struct {
	resolver domain.StructureResolver
}

// NewResolveStructureImpl creates a new instance of ResolveStructureImpl.
func NewResolveStructureImpl(resolver domain.StructureResolver) ResolveStructureImpl {
	return ResolveStructureImpl{resolver: resolver}
}

// Query returns the structure string of drugName.
func (rs ResolveStructureImpl) Query(ctx context.Context, drugName string) (string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	drugName = strings.TrimSpace(drugName)
	if drugName == "" {
		err := domain.NewValidationErr("drug_name must not be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return "", err
	}

	structure, err := rs.resolver.ResolveStructure(spanCtx, drugName)
	if telemetry.RecordErrorAndStatus(span, err) {
		RecordLookupFailure(spanCtx, err)
		return "", err
	}
	return structure, nil
}

// InitResolveStructure initializes the ResolveStructure use case and registers it in the dependency container.
type InitResolveStructure struct {
	Resolver domain.StructureResolver `resolve:""`
}

// Initialize registers the ResolveStructure use case in the dependency container.
func (irs InitResolveStructure) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ResolveStructure](NewResolveStructureImpl(irs.Resolver))
	return ctx, nil
}
