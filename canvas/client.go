// Package canvas provides the Canvas REST API implementation of
// canvex.CourseService: an authenticated, rate-limit-aware, paginated
// HTTP client with typed accessors for each course resource.
package canvas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bhilliardga/canvex"
	"golang.org/x/time/rate"
)

// DefaultTimeout is the per-request timeout for API calls and downloads.
const DefaultTimeout = 60 * time.Second

// maxRetryDelay caps the backoff delay between rate-limit retries.
const maxRetryDelay = 30 * time.Second

// DefaultRetryDelays returns the backoff delays applied after rate-limited
// responses: 2s, 4s, 8s, 16s (one initial attempt plus four retries).
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second}
}

// APIError carries the status and body of a non-2xx API response so callers
// can decide how to react (rate-limit retry, authenticated download retry).
type APIError struct {
	URL        string
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("canvas: GET %s returned %d: %s", e.URL, e.StatusCode, snippet(e.Body, 200))
}

// RateLimited reports whether the response indicates Canvas API throttling.
// Canvas signals throttling with a 403 whose body mentions "Rate Limit".
func (e *APIError) RateLimited() bool {
	return e.StatusCode == http.StatusForbidden && strings.Contains(e.Body, "Rate Limit")
}

func snippet(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// Ensure Client implements canvex.CourseService at compile time.
var _ canvex.CourseService = (*Client)(nil)

// Client talks to one Canvas instance with one bearer credential.
// All state is request-scoped; a Client is safe to discard after an export.
type Client struct {
	baseURL     string
	token       string
	httpClient  *http.Client
	retryDelays []time.Duration
	limiter     *rate.Limiter
	sleep       func(ctx context.Context, d time.Duration) error
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// WithRetryDelays overrides the rate-limit backoff delays.
// Useful for testing without waiting for real delays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(cl *Client) { cl.retryDelays = delays }
}

// WithRequestsPerSecond enables client-side pacing of outbound requests in
// addition to the reactive rate-limit retry. Zero or negative disables it.
func WithRequestsPerSecond(rps float64) Option {
	return func(cl *Client) {
		if rps > 0 {
			cl.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// NewClient creates a Client for the given API base URL and bearer token.
func NewClient(apiBase, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(apiBase, "/"),
		token:       token,
		retryDelays: DefaultRetryDelays(),
		sleep: func(ctx context.Context, d time.Duration) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d):
				return nil
			}
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return c
}

// response is a fully-read API response.
type response struct {
	body   []byte
	header http.Header
}

// get issues one authenticated GET, absorbing rate-limited responses up to
// the retry budget. Any other non-2xx status is returned as an *APIError.
func (c *Client) get(ctx context.Context, rawURL string, params url.Values) (*response, error) {
	for attempt := 0; ; attempt++ {
		resp, err := c.do(ctx, rawURL, params, true)
		if err != nil {
			return nil, err
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return nil, readErr
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return &response{body: body, header: resp.Header}, nil
		}

		apiErr := &APIError{URL: rawURL, StatusCode: resp.StatusCode, Body: string(body)}
		if !apiErr.RateLimited() || attempt >= len(c.retryDelays) {
			return nil, apiErr
		}

		delay := c.retryDelays[attempt]
		if delay > maxRetryDelay {
			delay = maxRetryDelay
		}
		if err := c.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
}

// do builds and issues a single request without interpreting the status.
// The caller owns the response body.
func (c *Client) do(ctx context.Context, rawURL string, params url.Values, auth bool) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if params != nil {
		q := u.Query()
		for key, vals := range params {
			q[key] = vals
		}
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	if auth {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return c.httpClient.Do(req)
}

// fetchAll repeatedly calls get, following the Link header's rel="next"
// relation until exhausted. params apply to the first request only;
// subsequent requests use the query state carried by the pagination links.
func (c *Client) fetchAll(ctx context.Context, rawURL string, params url.Values) ([]canvex.Resource, error) {
	var out []canvex.Resource
	first := true
	for rawURL != "" {
		var p url.Values
		if first {
			p = params
		}
		first = false

		resp, err := c.get(ctx, rawURL, p)
		if err != nil {
			return nil, err
		}

		items, err := decodeList(resp.body)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", rawURL, err)
		}
		out = append(out, items...)

		rawURL = nextLink(resp.header)
	}
	return out, nil
}

// getOne fetches a singleton resource.
func (c *Client) getOne(ctx context.Context, rawURL string, params url.Values) (canvex.Resource, error) {
	resp, err := c.get(ctx, rawURL, params)
	if err != nil {
		return nil, err
	}
	var r canvex.Resource
	if err := json.Unmarshal(resp.body, &r); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", rawURL, err)
	}
	return r, nil
}

// decodeList normalizes a response body into a list of resources.
// A bare object is treated as a one-item page.
func decodeList(body []byte) ([]canvex.Resource, error) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, err
	}
	switch t := v.(type) {
	case []any:
		out := make([]canvex.Resource, 0, len(t))
		for _, el := range t {
			if m, ok := el.(map[string]any); ok {
				out = append(out, canvex.Resource(m))
			}
		}
		return out, nil
	case map[string]any:
		return []canvex.Resource{canvex.Resource(t)}, nil
	default:
		return nil, fmt.Errorf("unexpected response shape %T", v)
	}
}

// nextLink extracts the rel="next" URL from a Link response header.
// Returns "" when no next page exists.
func nextLink(h http.Header) string {
	link := h.Get("Link")
	if link == "" {
		return ""
	}
	for _, part := range strings.Split(link, ",") {
		segs := strings.Split(part, ";")
		if len(segs) < 2 {
			continue
		}
		for _, s := range segs[1:] {
			if strings.Contains(s, `rel="next"`) {
				return strings.Trim(strings.TrimSpace(segs[0]), "<>")
			}
		}
	}
	return ""
}
