package usecases

import (
	"context"
	"errors"

	"github.com/cleitonmarx/drugfood-interactions/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                  = otel.Meter("usecases")
	InteractionPredictions metric.Int64Counter
	UpstreamLookupFailures metric.Int64Counter
)

func init() {
	var err error
	// Successful predictions by effect label
	InteractionPredictions, err = meter.Int64Counter(
		"interaction_predictions_total",
		metric.WithDescription("Total interaction predictions by effect label"),
	)
	if err != nil {
		panic(err)
	}

	// Structure and nutrient lookups that did not return usable data
	UpstreamLookupFailures, err = meter.Int64Counter(
		"upstream_lookup_failures_total",
		metric.WithDescription("Total upstream lookups that did not return usable data"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordPrediction records a successful prediction.
func RecordPrediction(ctx context.Context, effect domain.EffectLabel) {
	InteractionPredictions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("effect", string(effect)),
	))
}

// RecordLookupFailure records err when it is a lookup failure.
func RecordLookupFailure(ctx context.Context, err error) {
	var lookupErr *domain.LookupErr
	if !errors.As(err, &lookupErr) {
		return
	}
	UpstreamLookupFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("source", string(lookupErr.Source)),
		attribute.String("reason", string(lookupErr.Reason)),
	))
}
