package app

import (
	"context"

	"github.com/cleitonmarx/drugfood-interactions/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
	"go.uber.org/zap"
)

// MermaidGraphIntrospector is an implementation of the Introspector interface that generates a Mermaid graph
// representation of the application's configuration and dependencies, and registers it in the dependency container.
type MermaidGraphIntrospector struct {
}

// Introspect generates a Mermaid graph from the provided introspection report and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	mermaidGraph := mermaid.GenerateIntrospectionGraph(r)
	depend.RegisterNamed(mermaidGraph, http.IntrospectionGraphName)
	return nil
}

// ReportLoggerIntrospector logs the configuration keys read at start-up and whether each one fell
// back to its default value.
type ReportLoggerIntrospector struct {
	Logger *zap.Logger
}

// Introspect writes one log entry per configuration key in r.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger := i.Logger
	if logger == nil {
		resolved, err := depend.Resolve[*zap.Logger]()
		if err != nil {
			logger = zap.NewNop()
		} else {
			logger = resolved
		}
	}

	defaults := 0
	for _, c := range r.Configs {
		if c.UsedDefault {
			defaults++
		}
		logger.Debug("configuration key",
			zap.String("key", c.Key),
			zap.Bool("used_default", c.UsedDefault),
		)
	}
	logger.Info("configuration loaded",
		zap.Int("keys", len(r.Configs)),
		zap.Int("defaults", defaults),
	)
	return nil
}
