// Package supabase implements the record store adapters over the Supabase
// PostgREST API. Rows live in remote tables reached via
// GET/POST/PATCH/DELETE {base}/rest/v1/{table}?{col}=eq.{value}; reads return
// JSON arrays, empty when nothing matches.
package supabase

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

	"github.com/elibrary/library-system/internal/api/metrics"
)

const defaultTimeout = 10 * time.Second

// Config holds the connection settings for the record store.
type Config struct {
	// BaseURL is the project root, e.g. https://xyz.supabase.co.
	BaseURL string
	// ServiceKey authenticates every request (apikey + bearer headers).
	ServiceKey string
	// HTTPClient overrides the default client; mainly for tests.
	HTTPClient *http.Client
}

// Client is a thin PostgREST client shared by the table repositories. It is
// stateless after construction and safe for concurrent use.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		serviceKey: cfg.ServiceKey,
		httpClient: client,
	}
}

// restURL builds {base}/rest/v1/{table} with the given query parameters.
// Filter values are escaped by url.Values, so user input cannot smuggle
// extra PostgREST operators into the request.
func (c *Client) restURL(table string, query url.Values) string {
	u := c.baseURL + "/rest/v1/" + table
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do performs a request with the store's auth headers and returns the raw
// response body together with the status code. Transport errors and non-2xx
// statuses are reported through the returned error by the callers.
func (c *Client) do(ctx context.Context, method, rawURL string, payload any, extraHeaders map[string]string) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	for k, v := range extraHeaders {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, data, nil
}

// Ping verifies the record store answers on its API root. Used by the
// readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	status, _, err := c.do(ctx, http.MethodGet, c.baseURL+"/rest/v1/", nil, nil)
	if err != nil {
		return fmt.Errorf("supabase ping: %w", err)
	}
	if status >= 500 {
		return fmt.Errorf("supabase ping: status %d", status)
	}
	return nil
}

// eq builds a single-column PostgREST equality filter.
func eq(column, value string) url.Values {
	q := url.Values{}
	q.Set(column, "eq."+value)
	return q
}
