// Package pokeapi provides the HTTP client for the public PokeAPI catalog.
//
// Every call is a single rate-limited GET: no retries and no caching.
// A 404 from the catalog is reported as provider.ErrNotFound, every other
// failure as provider.ErrNetwork.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/albapepper/pokedex-data/internal/metrics"
	"github.com/albapepper/pokedex-data/internal/provider"
)

const (
	DefaultBaseURL          = "https://pokeapi.co/api/v2"
	DefaultEvolutionBaseURL = "https://pokeapi.co/api/v2/evolution-chain"

	defaultTimeout = 30 * time.Second
	defaultBurst   = 10
)

// Options configures a Client. Zero values fall back to the public API
// defaults; RequestsPerMinute <= 0 disables client-side rate limiting.
type Options struct {
	BaseURL           string
	EvolutionBaseURL  string
	RequestsPerMinute int
	Timeout           time.Duration
	HTTPClient        *http.Client
	Metrics           *metrics.Catalog
	Logger            *slog.Logger
}

// Client is the catalog request layer. It holds no per-request state and is
// safe for concurrent use.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	evolutionURL string
	limiter      *rate.Limiter
	metrics      *metrics.Catalog
	logger       *slog.Logger
}

// NewClient creates a PokeAPI client with rate limiting.
func NewClient(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	evolutionURL := opts.EvolutionBaseURL
	if evolutionURL == "" {
		evolutionURL = DefaultEvolutionBaseURL
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	limit := rate.Inf
	if opts.RequestsPerMinute > 0 {
		limit = rate.Limit(float64(opts.RequestsPerMinute) / 60.0)
	}

	return &Client{
		httpClient:   httpClient,
		baseURL:      trimSlash(baseURL),
		evolutionURL: trimSlash(evolutionURL),
		limiter:      rate.NewLimiter(limit, defaultBurst),
		metrics:      opts.Metrics,
		logger:       logger,
	}
}

// get performs a rate-limited GET and returns the raw body of a 200 response.
// endpoint is a low-cardinality label used for metrics and logs.
func (c *Client) get(ctx context.Context, endpoint, rawURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w: %w", provider.ErrNetwork, err)
	}

	start := time.Now()
	body, err := c.do(ctx, rawURL)
	outcome := metrics.OutcomeOK
	switch {
	case errors.Is(err, provider.ErrNotFound):
		outcome = metrics.OutcomeNotFound
	case err != nil:
		outcome = metrics.OutcomeError
		c.logger.Warn("Catalog request failed", "endpoint", endpoint, "url", rawURL, "error", err)
	}
	c.metrics.ObserveRequest(endpoint, outcome, time.Since(start))
	return body, err
}

func (c *Client) do(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w: %w", provider.ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w: %w", rawURL, provider.ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w: %w", provider.ErrNetwork, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("pokeapi %s: %w", rawURL, provider.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("pokeapi %s returned %d: %s: %w",
			rawURL, resp.StatusCode, truncate(body, 200), provider.ErrNetwork)
	}
	return body, nil
}

// getJSON performs get and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, endpoint, rawURL string, out interface{}) error {
	body, err := c.get(ctx, endpoint, rawURL)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w: %w", endpoint, provider.ErrNetwork, err)
	}
	return nil
}

func (c *Client) url(path string, params url.Values) string {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
