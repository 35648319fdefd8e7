package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/cleitonmarx/drugfood-interactions/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/drugfood-interactions/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestToError(t *testing.T) {
	tests := map[string]struct {
		err            error
		expectedStatus int
		expectedResp   gen.ErrorResp
	}{
		"validation": {
			err:            domain.NewValidationErr("food_name must not be empty"),
			expectedStatus: http.StatusBadRequest,
			expectedResp:   gen.ErrorResp{Detail: "food_name must not be empty"},
		},
		"lookup": {
			err:            domain.NewLookupErr(domain.LookupSource_Structure, domain.LookupReason_UpstreamError, "structure lookup for 'x' failed: upstream returned 502"),
			expectedStatus: http.StatusBadRequest,
			expectedResp:   gen.ErrorResp{Detail: "structure lookup for 'x' failed: upstream returned 502"},
		},
		"service-unavailable": {
			err:            domain.NewServiceUnavailableErr("prediction service is unavailable: inference models are not loaded"),
			expectedStatus: http.StatusServiceUnavailable,
			expectedResp:   gen.ErrorResp{Detail: "prediction service is unavailable: inference models are not loaded"},
		},
		"configuration": {
			err:            domain.NewConfigurationErr("classifier is not loaded"),
			expectedStatus: http.StatusInternalServerError,
			expectedResp:   gen.ErrorResp{Detail: "internal server error"},
		},
		"inference": {
			err:            domain.NewInferenceErr("classify features", errors.New("nan")),
			expectedStatus: http.StatusInternalServerError,
			expectedResp:   gen.ErrorResp{Detail: "internal server error"},
		},
		"wrapped-validation-is-generic": {
			err:            fmt.Errorf("wrapped: %w", domain.NewValidationErr("bad")),
			expectedStatus: http.StatusInternalServerError,
			expectedResp:   gen.ErrorResp{Detail: "internal server error"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			status, resp := toError(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedResp, resp)
		})
	}
}

func TestToHealth(t *testing.T) {
	assert.Equal(t, gen.Healthy, toHealth(domain.HealthStatus{ModelsLoaded: true}).Status)
	assert.Equal(t, gen.Unhealthy, toHealth(domain.HealthStatus{}).Status)
}
