package http

import (
	"net/http"

	"github.com/cleitonmarx/drugfood-interactions/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/drugfood-interactions/internal/domain"
)

// APIVersion is reported by the root endpoint.
const APIVersion = "1.0.0"

func (api InteractionServer) GetRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		respondJSON(w, http.StatusNotFound, gen.ErrorResp{Detail: "Not Found"})
		return
	}
	respondJSON(w, http.StatusOK, gen.RootResp{
		Message: "Drug-Food Interaction Prediction API",
		Status:  "running",
		Version: APIVersion,
	})
}

func (api InteractionServer) GetHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toHealth(api.CheckHealthUseCase.Query(r.Context())))
}

func (api InteractionServer) ListNutrients(w http.ResponseWriter, _ *http.Request) {
	fields := domain.NutrientFields()
	resp := gen.NutrientListResp{
		Nutrients: make([]string, 0, len(fields)),
		Count:     len(fields),
	}
	for _, f := range fields {
		resp.Nutrients = append(resp.Nutrients, f.String())
	}
	respondJSON(w, http.StatusOK, resp)
}
