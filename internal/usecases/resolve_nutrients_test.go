package usecases

import (
	"context"
	"testing"

	"github.com/cleitonmarx/drugfood-interactions/internal/domain"
	domain_mocks "github.com/cleitonmarx/drugfood-interactions/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestResolveNutrientsImpl_Query(t *testing.T) {
	banana := domain.NutrientVector{}.
		With(domain.NutrientField_Carbohydrates, 22.8).
		With(domain.NutrientField_Potassium, 358)
	noResults := domain.NewLookupErr(domain.LookupSource_Nutrients, domain.LookupReason_NoResults, "could not find nutrients for food 'qwerty'")

	tests := map[string]struct {
		foodName          string
		setExpectations   func(r *domain_mocks.MockNutrientResolver)
		expectedNutrients domain.NutrientVector
		expectedErr       error
	}{
		"success": {
			foodName: "banana ",
			setExpectations: func(r *domain_mocks.MockNutrientResolver) {
				r.EXPECT().ResolveNutrients(mock.Anything, "banana").Return(banana, nil).Once()
			},
			expectedNutrients: banana,
		},
		"empty-name": {
			foodName:    "",
			expectedErr: domain.NewValidationErr("food_name must not be empty"),
		},
		"no-results": {
			foodName: "qwerty",
			setExpectations: func(r *domain_mocks.MockNutrientResolver) {
				r.EXPECT().ResolveNutrients(mock.Anything, "qwerty").Return(domain.NutrientVector{}, noResults).Once()
			},
			expectedErr: noResults,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			resolver := domain_mocks.NewMockNutrientResolver(t)
			if tt.setExpectations != nil {
				tt.setExpectations(resolver)
			}

			rn := NewResolveNutrientsImpl(resolver)
			got, gotErr := rn.Query(context.Background(), tt.foodName)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expectedNutrients, got)
		})
	}
}

func TestInitResolveNutrients_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	irn := InitResolveNutrients{Resolver: domain_mocks.NewMockNutrientResolver(t)}
	ctx, err := irn.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	_, err = depend.Resolve[ResolveNutrients]()
	assert.NoError(t, err)
}
