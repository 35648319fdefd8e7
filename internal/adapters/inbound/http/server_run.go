package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cleitonmarx/drugfood-interactions/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/drugfood-interactions/internal/telemetry"
	"github.com/cleitonmarx/drugfood-interactions/internal/usecases"
	"github.com/google/uuid"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

var _ gen.ServerInterface = (*InteractionServer)(nil)

// RequestIDHeader carries the request identifier echoed on every response.
const RequestIDHeader = "X-Request-ID"

// InteractionServer is the REST API HTTP server for the interaction prediction service.
type InteractionServer struct {
	Port                      int                         `config:"HTTP_PORT" default:"8000"`
	Logger                    *zap.Logger                 `resolve:""`
	PredictInteractionUseCase usecases.PredictInteraction `resolve:""`
	ResolveStructureUseCase   usecases.ResolveStructure   `resolve:""`
	ResolveNutrientsUseCase   usecases.ResolveNutrients   `resolve:""`
	CheckHealthUseCase        usecases.CheckHealth        `resolve:""`
}

// Handler returns the API handler with routing, middlewares and CORS applied.
func (api InteractionServer) Handler() http.Handler {
	mux := http.NewServeMux()

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("GET /introspect", IntrospectHandler)

	h := gen.HandlerWithOptions(api, gen.StdHTTPServerOptions{
		BaseRouter: mux,
		// The last middleware wraps outermost.
		Middlewares: []gen.MiddlewareFunc{
			telemetry.RequestHeaderAttributes(RequestIDHeader),
			telemetry.Middleware(telemetry.ServiceName),
		},
		ErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			respondJSON(w, http.StatusBadRequest, gen.ErrorResp{Detail: err.Error()})
		},
	})
	h = requestID(h)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server for the InteractionServer.
func (api InteractionServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Info("InteractionServer: listening", zap.Int("port", api.Port))
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Error("InteractionServer: error during shutdown", zap.Error(err))
		} else {
			api.Logger.Info("InteractionServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the InteractionServer is ready by calling its health endpoint.
func (api InteractionServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d/health", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// requestID propagates the caller's X-Request-ID or assigns a new one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}
