package http

import (
	"net/http"

	"github.com/cleitonmarx/drugfood-interactions/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/drugfood-interactions/internal/domain"
)

// toError maps a domain error to its HTTP status and body. Only caller and lookup errors expose
// their message; server faults are reported generically.
func toError(err error) (int, gen.ErrorResp) {
	switch e := err.(type) {
	case *domain.ValidationErr:
		return http.StatusBadRequest, gen.ErrorResp{Detail: e.Error()}
	case *domain.LookupErr:
		return http.StatusBadRequest, gen.ErrorResp{Detail: e.Error()}
	case *domain.ServiceUnavailableErr:
		return http.StatusServiceUnavailable, gen.ErrorResp{Detail: e.Error()}
	default:
		return http.StatusInternalServerError, gen.ErrorResp{Detail: "internal server error"}
	}
}

func toPrediction(p domain.PredictionResult) gen.Prediction {
	return gen.Prediction{
		Effect:          gen.PredictionEffect(p.Effect),
		PredictionIndex: p.ClassIndex,
		Confidence:      p.Confidence,
		Explanation:     p.Explanation,
		Smiles:          p.Structure,
		Nutrients:       toNutrients(p.Nutrients),
		DrugName:        p.DrugName,
		FoodName:        p.FoodName,
		Timestamp:       p.Timestamp,
	}
}

func toNutrients(v domain.NutrientVector) gen.Nutrients {
	return gen.Nutrients(v.AsMap())
}

func toHealth(s domain.HealthStatus) gen.HealthResp {
	status := gen.Healthy
	if !s.ModelsLoaded {
		status = gen.Unhealthy
	}
	return gen.HealthResp{
		Status:       status,
		ModelsLoaded: s.ModelsLoaded,
		Timestamp:    s.CheckedAt,
	}
}
