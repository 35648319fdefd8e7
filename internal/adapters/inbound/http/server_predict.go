package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/drugfood-interactions/internal/adapters/inbound/http/gen"
	"go.uber.org/zap"
)

func (api InteractionServer) Predict(w http.ResponseWriter, r *http.Request) {
	var req gen.PredictJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, gen.ErrorResp{
			Detail: fmt.Sprintf("invalid request body: %v", err),
		})
		return
	}

	prediction, err := api.PredictInteractionUseCase.Execute(r.Context(), req.DrugName, req.FoodName)
	if err != nil {
		api.logFailure(r, "prediction failed", err,
			zap.String("drug_name", req.DrugName),
			zap.String("food_name", req.FoodName),
		)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, gen.PredictResp{
		Success:    true,
		Prediction: toPrediction(prediction),
	})
}

// logFailure logs server faults at error level and caller-facing failures at info level.
func (api InteractionServer) logFailure(r *http.Request, msg string, err error, fields ...zap.Field) {
	status, _ := toError(err)
	fields = append(fields,
		zap.String("request_id", r.Header.Get(RequestIDHeader)),
		zap.Int("status", status),
		zap.Error(err),
	)
	if status >= http.StatusInternalServerError {
		api.Logger.Error(msg, fields...)
		return
	}
	api.Logger.Info(msg, fields...)
}
