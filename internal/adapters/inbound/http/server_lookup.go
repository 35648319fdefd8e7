package http

import (
	"net/http"

	"github.com/cleitonmarx/drugfood-interactions/internal/adapters/inbound/http/gen"
	"go.uber.org/zap"
)

func (api InteractionServer) GetSmiles(w http.ResponseWriter, r *http.Request, drugName string) {
	smiles, err := api.ResolveStructureUseCase.Query(r.Context(), drugName)
	if err != nil {
		api.logFailure(r, "structure lookup failed", err, zap.String("drug_name", drugName))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, gen.SmilesResp{
		Success:  true,
		DrugName: drugName,
		Smiles:   smiles,
	})
}

func (api InteractionServer) GetNutrients(w http.ResponseWriter, r *http.Request, foodName string) {
	nutrients, err := api.ResolveNutrientsUseCase.Query(r.Context(), foodName)
	if err != nil {
		api.logFailure(r, "nutrient lookup failed", err, zap.String("food_name", foodName))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, gen.NutrientsResp{
		Success:   true,
		FoodName:  foodName,
		Nutrients: toNutrients(nutrients),
	})
}
