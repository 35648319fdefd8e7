// Package cactus resolves substance names to chemical structure strings using the NCI CACTUS
// Chemical Identifier Resolver.
package cactus

import (
	"bufio"
	"context"
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
)

const maxBodySize = 64 << 10

// Client is a domain.StructureResolver backed by the CACTUS HTTP API.
type Client struct {
	baseURL        string
	representation string
	timeout        time.Duration
	http           *http.Client
}

// NewClient creates a new CACTUS client.
//
// Requests are issued as GET {baseURL}/{name}/{representation}, each bounded by timeout.
func NewClient(baseURL, representation string, timeout time.Duration, httpClient *http.Client) Client {
	return Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		representation: representation,
		timeout:        timeout,
		http:           httpClient,
	}
}

// ResolveStructure returns the first structure line CACTUS reports for name.
func (c Client) ResolveStructure(ctx context.Context, name string) (string, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("drug.name", name),
	))
	defer span.End()

	structure, err := c.resolve(spanCtx, name)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}
	return structure, nil
}

func (c Client) resolve(ctx context.Context, name string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, url.PathEscape(name), c.representation)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", transportErr(name, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", notFoundErr(name)
	case resp.StatusCode != http.StatusOK:
		return "", domain.NewLookupErr(
			domain.LookupSource_Structure,
			domain.LookupReason_UpstreamError,
			fmt.Sprintf("structure lookup for '%s' failed: upstream returned %d", name, resp.StatusCode),
		)
	}

	structure, err := firstLine(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", transportErr(name, err)
	}
	if structure == "" {
		return "", notFoundErr(name)
	}
	return structure, nil
}

// firstLine returns the first non-empty trimmed line of r.
func firstLine(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line, nil
		}
	}
	return "", scanner.Err()
}

func notFoundErr(name string) error {
	return domain.NewLookupErr(
		domain.LookupSource_Structure,
		domain.LookupReason_NotFound,
		fmt.Sprintf("could not find structure for drug '%s'", name),
	)
}

func transportErr(name string, err error) error {
	if common.IsTimeout(err) {
		return domain.NewLookupErr(
			domain.LookupSource_Structure,
			domain.LookupReason_Timeout,
			fmt.Sprintf("structure lookup for '%s' timed out", name),
		)
	}
	return domain.NewLookupErr(
		domain.LookupSource_Structure,
		domain.LookupReason_NetworkError,
		fmt.Sprintf("structure lookup for '%s' failed: structure service unreachable", name),
	)
}

// InitStructureResolver registers the CACTUS client as the domain.StructureResolver.
type InitStructureResolver struct {
	HttpClient     *http.Client  `resolve:""`
	BaseURL        string        `config:"CACTUS_BASE_URL" default:"https://cactus.nci.nih.gov/chemical/structure"`
	Representation string        `config:"CACTUS_REPRESENTATION" default:"smiles"`
	Timeout        time.Duration `config:"CACTUS_TIMEOUT" default:"5s"`
}

// Initialize registers the structure resolver.
func (i InitStructureResolver) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.StructureResolver](
		NewClient(i.BaseURL, i.Representation, i.Timeout, i.HttpClient),
	)
	return ctx, nil
}
