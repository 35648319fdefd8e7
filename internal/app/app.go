package app

import (
	"github.com/cleitonmarx/drugfood-interactions/internal/adapters/inbound/http"
	"github.com/cleitonmarx/drugfood-interactions/internal/adapters/outbound/artifacts"
	"github.com/cleitonmarx/drugfood-interactions/internal/adapters/outbound/cactus"
	"github.com/cleitonmarx/drugfood-interactions/internal/adapters/outbound/config"
	"github.com/cleitonmarx/drugfood-interactions/internal/adapters/outbound/fooddata"
	"github.com/cleitonmarx/drugfood-interactions/internal/adapters/outbound/log"
	"github.com/cleitonmarx/drugfood-interactions/internal/adapters/outbound/time"
	"github.com/cleitonmarx/drugfood-interactions/internal/telemetry"
	"github.com/cleitonmarx/drugfood-interactions/internal/usecases"
	"github.com/cleitonmarx/symbiont"
)

// NewInteractionApp creates and returns a new instance of the interaction prediction application.
func NewInteractionApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&config.InitVaultProvider{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&time.InitCurrentTimeProvider{},
			&cactus.InitStructureResolver{},
			&fooddata.InitNutrientResolver{},
			&artifacts.InitInferenceModels{},

			&usecases.InitResolveStructure{},
			&usecases.InitResolveNutrients{},
			&usecases.InitPredictInteraction{},
			&usecases.InitCheckHealth{},
		).
		Host(
			&http.InteractionServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
