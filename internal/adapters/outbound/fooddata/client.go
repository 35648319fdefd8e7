// Package fooddata resolves food names to nutrient vectors using the USDA FoodData Central API.
package fooddata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cleitonmarx/drugfood-interactions/internal/common"
	"github.com/cleitonmarx/drugfood-interactions/internal/domain"
	"github.com/cleitonmarx/drugfood-interactions/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

// Client is a domain.NutrientResolver backed by the FoodData Central search endpoint.
type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	rules   []domain.NutrientRule
	limiter *rate.Limiter
	http    *http.Client
}

// NewClient creates a new FoodData Central client.
//
// Outbound calls are paced by limiter; a nil limiter disables pacing.
func NewClient(baseURL, apiKey string, timeout time.Duration, rules []domain.NutrientRule, limiter *rate.Limiter, httpClient *http.Client) Client {
	return Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		timeout: timeout,
		rules:   rules,
		limiter: limiter,
		http:    httpClient,
	}
}

// ResolveNutrients searches for name and extracts the nutrient vector of the first food found.
func (c Client) ResolveNutrients(ctx context.Context, name string) (domain.NutrientVector, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("food.name", name),
	))
	defer span.End()

	food, err := c.search(spanCtx, name)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.NutrientVector{}, err
	}
	span.SetAttributes(
		attribute.Int("food.fdc_id", food.FdcID),
		attribute.Int("food.nutrient_count", len(food.FoodNutrients)),
	)

	return domain.ExtractNutrients(c.rules, toEntries(food.FoodNutrients)), nil
}

func (c Client) search(ctx context.Context, name string) (searchFood, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return searchFood{}, domain.NewLookupErr(
				domain.LookupSource_Nutrients,
				domain.LookupReason_Timeout,
				fmt.Sprintf("nutrient lookup for '%s' timed out waiting for quota", name),
			)
		}
	}

	body, err := json.Marshal(searchRequest{Query: name, PageSize: 1})
	if err != nil {
		return searchFood{}, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := c.baseURL + "/foods/search?" + url.Values{"api_key": {c.apiKey}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return searchFood{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return searchFood{}, transportErr(name, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return searchFood{}, upstreamErr(name, fmt.Sprintf("upstream returned %d", resp.StatusCode))
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if common.IsTimeout(err) {
			return searchFood{}, transportErr(name, err)
		}
		return searchFood{}, upstreamErr(name, "malformed response")
	}

	if len(out.Foods) == 0 {
		return searchFood{}, domain.NewLookupErr(
			domain.LookupSource_Nutrients,
			domain.LookupReason_NoResults,
			fmt.Sprintf("could not find nutrients for food '%s'", name),
		)
	}
	return out.Foods[0], nil
}

func toEntries(nutrients []foodNutrient) []domain.NutrientEntry {
	entries := make([]domain.NutrientEntry, 0, len(nutrients))
	for _, n := range nutrients {
		if n.Value == nil {
			continue
		}
		entries = append(entries, domain.NutrientEntry{Name: n.NutrientName, Value: *n.Value})
	}
	return entries
}

func upstreamErr(name, detail string) error {
	return domain.NewLookupErr(
		domain.LookupSource_Nutrients,
		domain.LookupReason_UpstreamError,
		fmt.Sprintf("nutrient lookup for '%s' failed: %s", name, detail),
	)
}

func transportErr(name string, err error) error {
	if common.IsTimeout(err) {
		return domain.NewLookupErr(
			domain.LookupSource_Nutrients,
			domain.LookupReason_Timeout,
			fmt.Sprintf("nutrient lookup for '%s' timed out", name),
		)
	}
	return domain.NewLookupErr(
		domain.LookupSource_Nutrients,
		domain.LookupReason_NetworkError,
		fmt.Sprintf("nutrient lookup for '%s' failed: nutrient service unreachable", name),
	)
}

// InitNutrientResolver registers the FoodData Central client as the domain.NutrientResolver.
type InitNutrientResolver struct {
	HttpClient  *http.Client  `resolve:""`
	BaseURL     string        `config:"FDC_BASE_URL" default:"https://api.nal.usda.gov/fdc/v1"`
	APIKey      string        `config:"FDC_API_KEY" default:"DEMO_KEY"`
	Timeout     time.Duration `config:"FDC_TIMEOUT" default:"8s"`
	MinInterval time.Duration `config:"FDC_MIN_INTERVAL" default:"100ms"`
	Burst       int           `config:"FDC_BURST" default:"5"`
}

// Initialize registers the nutrient resolver.
func (i InitNutrientResolver) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.NutrientResolver](NewClient(
		i.BaseURL,
		i.APIKey,
		i.Timeout,
		DefaultRules(),
		newLimiter(i.MinInterval, i.Burst),
		i.HttpClient,
	))
	return ctx, nil
}

func newLimiter(minInterval time.Duration, burst int) *rate.Limiter {
	if minInterval <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(minInterval), max(burst, 1))
}
