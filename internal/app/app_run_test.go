package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/cleitonmarx/drugfood-interactions/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const appTestPort = 18483

func TestInteractionApp_EndToEnd(t *testing.T) {
	cactus := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/notadrug/smiles" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, "CC(=O)O\n")
	}))
	t.Cleanup(cactus.Close)

	fdc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"totalHits":1,"foods":[{"fdcId":168462,"description":"Spinach, raw","foodNutrients":[
			{"nutrientId":1003,"nutrientName":"Protein","unitName":"G","value":2.86},
			{"nutrientId":1092,"nutrientName":"Potassium, K","unitName":"MG","value":558}
		]}]}`)
	}))
	t.Cleanup(fdc.Close)

	interactionApp := NewInteractionApp(&initEnvVars{
		envVars: map[string]string{
			"HTTP_PORT":       fmt.Sprint(appTestPort),
			"LOG_LEVEL":       "error",
			"CACTUS_BASE_URL": cactus.URL,
			"FDC_BASE_URL":    fdc.URL,
			"FDC_API_KEY":     "test-key",
			"VECTORIZER_PATH": "../adapters/outbound/artifacts/testdata/vectorizer.json",
			"CLASSIFIER_PATH": "../adapters/outbound/artifacts/testdata/classifier.json",
		},
	})
	t.Cleanup(depend.ClearContainer)

	ctx, cancel := context.WithCancel(context.Background())
	shutdownCh := interactionApp.RunAsync(ctx)
	require.NoError(t, interactionApp.WaitForReadiness(ctx, 10*time.Second))

	baseURL := fmt.Sprintf("http://localhost:%d", appTestPort)

	t.Run("health", func(t *testing.T) {
		var health gen.HealthResp
		status := doJSON(t, http.MethodGet, baseURL+"/health", nil, &health)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, gen.Healthy, health.Status)
		assert.True(t, health.ModelsLoaded)
	})

	t.Run("predict", func(t *testing.T) {
		var resp gen.PredictResp
		status := doJSON(t, http.MethodPost, baseURL+"/predict", gen.PredictReq{DrugName: "acetic acid", FoodName: "spinach"}, &resp)
		assert.Equal(t, http.StatusOK, status)
		assert.True(t, resp.Success)
		assert.Equal(t, gen.Harmful, resp.Prediction.Effect)
		assert.Equal(t, 4, resp.Prediction.PredictionIndex)
		assert.Equal(t, "CC(=O)O", resp.Prediction.Smiles)
		assert.Equal(t, 558.0, resp.Prediction.Nutrients["Potassium"])
		assert.Equal(t, 0.0, resp.Prediction.Nutrients["Fat"])
		assert.GreaterOrEqual(t, resp.Prediction.Confidence, 0.0)
		assert.LessOrEqual(t, resp.Prediction.Confidence, 1.0)
	})

	t.Run("predict-unknown-drug", func(t *testing.T) {
		var resp gen.ErrorResp
		status := doJSON(t, http.MethodPost, baseURL+"/predict", gen.PredictReq{DrugName: "notadrug", FoodName: "spinach"}, &resp)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "could not find structure for drug 'notadrug'", resp.Detail)
	})

	t.Run("predict-empty-drug", func(t *testing.T) {
		var resp gen.ErrorResp
		status := doJSON(t, http.MethodPost, baseURL+"/predict", gen.PredictReq{DrugName: "", FoodName: "spinach"}, &resp)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "drug_name must not be empty", resp.Detail)
	})

	t.Run("get-smiles", func(t *testing.T) {
		var resp gen.SmilesResp
		status := doJSON(t, http.MethodGet, baseURL+"/get_smiles/acetic%20acid", nil, &resp)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, gen.SmilesResp{Success: true, DrugName: "acetic acid", Smiles: "CC(=O)O"}, resp)
	})

	t.Run("introspect", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/introspect")
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	cancel()
	select {
	case <-time.After(30 * time.Second):
		t.Fatal("interaction app did not shut down in time")
	case err := <-shutdownCh:
		assert.NoError(t, err)
	}
}

func doJSON(t *testing.T, method, url string, body, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(t.Context(), method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

type initEnvVars struct {
	envVars map[string]string
}

func (i *initEnvVars) Initialize(ctx context.Context) (context.Context, error) {
	for key, value := range i.envVars {
		os.Setenv(key, value) //nolint:errcheck
	}
	return ctx, nil
}

func (i *initEnvVars) Close() {
	for key := range i.envVars {
		os.Unsetenv(key) //nolint:errcheck
	}
}
