package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/VishnuKaku/workshipai/internal/common"
	"github.com/VishnuKaku/workshipai/internal/entity"
)

// apiResult mirrors the upstream response shape: coordinates arrive as
// strings.
type apiResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Client wraps the upstream geocoding HTTP API with rate-limit-aware retries.
type Client struct {
	baseURL        string
	userAgent      string
	httpc          *http.Client
	maxAttempts    int
	initialBackoff time.Duration
	logger         *slog.Logger
}

func NewClient(cfg common.GeocoderConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	backoff := cfg.InitialBackoff
	if backoff <= 0 {
		backoff = time.Second
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:        cfg.BaseURL,
		userAgent:      cfg.UserAgent,
		httpc:          &http.Client{Timeout: timeout},
		maxAttempts:    maxAttempts,
		initialBackoff: backoff,
		logger:         logger,
	}
}

// Lookup resolves a free-text query to coordinates. HTTP 429 responses are
// retried with exponential backoff starting at the initial delay and doubling
// each attempt. Zero upstream matches return (nil, nil): an empty result is
// not an error.
func (c *Client) Lookup(ctx context.Context, query string) (*entity.GeocodeResult, error) {
	backoff := c.initialBackoff
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		res, retryable, err := c.lookupOnce(ctx, query)
		if err == nil {
			return res, nil
		}
		if !retryable || attempt == c.maxAttempts {
			return nil, err
		}
		c.logger.Warn("geocode rate limited, backing off",
			"query", query, "attempt", attempt, "backoff", backoff)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		backoff *= 2
	}
	return nil, nil
}

func (c *Client) lookupOnce(ctx context.Context, query string) (*entity.GeocodeResult, bool, error) {
	u := fmt.Sprintf("%s/search?format=json&limit=1&q=%s", c.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, false, err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, true, fmt.Errorf("geocode %q: rate limited", query)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("geocode %q: unexpected status %d", query, resp.StatusCode)
	}

	var results []apiResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, false, fmt.Errorf("geocode %q: decode response: %w", query, err)
	}
	if len(results) == 0 {
		return nil, false, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, false, fmt.Errorf("geocode %q: bad latitude %q", query, results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, false, fmt.Errorf("geocode %q: bad longitude %q", query, results[0].Lon)
	}
	return &entity.GeocodeResult{Latitude: lat, Longitude: lon}, false, nil
}
