package parse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Holmfrior/Technopreneurship/pkg/cache"
	"github.com/Holmfrior/Technopreneurship/pkg/httputil"
	"github.com/Holmfrior/Technopreneurship/pkg/logic"
	"github.com/Holmfrior/Technopreneurship/pkg/observability"
)

const httpTimeout = 60 * time.Second

// DefaultCacheTTL is how long parsed trees are cached. Parses are
// deterministic for a given model, so a generous TTL is safe.
const DefaultCacheTTL = 24 * time.Hour

// Retry policy for transient failures. The base delay is a variable so
// tests can shrink it.
const retryAttempts = 3

var retryBaseDelay = time.Second

var (
	// ErrNotFound is returned when the parse endpoint doesn't exist at the
	// configured base URL.
	ErrNotFound = errors.New("parse endpoint not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// Client provides access to the remote discourse-parsing service.
// It handles HTTP requests with caching and automatic retries.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	http     *http.Client
	cache    cache.Cache
	cacheTTL time.Duration
	baseURL  string
	headers  map[string]string
}

// NewClient creates a parsing client for the service at baseURL.
//
// Parameters:
//   - baseURL: service base URL; the client POSTs to <baseURL>/parse
//   - backend: cache backend for response caching (use cache.NewNullCache() for none)
//   - cacheTTL: how long responses are cached (typical: 1-24 hours)
//
// The returned Client is safe for concurrent use. The tunnel bypass header
// is set on every request so notebook-hosted services answer with JSON
// instead of an interstitial page.
func NewClient(baseURL string, backend cache.Cache, cacheTTL time.Duration) *Client {
	if backend == nil {
		backend = cache.NewNullCache()
	}
	return &Client{
		http:     &http.Client{Timeout: httpTimeout},
		cache:    backend,
		cacheTTL: cacheTTL,
		baseURL:  strings.TrimRight(baseURL, "/"),
		headers: map[string]string{
			"ngrok-skip-browser-warning": "true",
		},
	}
}

// BaseURL returns the configured service base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Parse sends text to the service and returns the parsed logic tree.
//
// If refresh is true, the cache is bypassed and a fresh request is made.
// Transient failures (network errors, 5xx) are retried with exponential
// backoff; a tree is returned whole or not at all.
//
// The returned node pointer is never nil if err is nil.
func (c *Client) Parse(ctx context.Context, text string, refresh bool) (*logic.Node, error) {
	key := "parse:" + cache.Hash([]byte(text))

	if !refresh {
		if data, hit, _ := c.cache.Get(ctx, key); hit {
			observability.Cache().OnCacheHit(ctx, "parse")
			return decodeTree(data)
		}
		observability.Cache().OnCacheMiss(ctx, "parse")
	}

	var body []byte
	err := httputil.Retry(ctx, retryAttempts, retryBaseDelay, func() error {
		var err error
		body, err = c.post(ctx, c.baseURL+"/parse", parseRequest{Text: text})
		return err
	})
	if err != nil {
		return nil, err
	}

	tree, err := decodeTree(body)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, key, body, c.cacheTTL); err == nil {
		observability.Cache().OnCacheSet(ctx, "parse", len(body))
	}
	return tree, nil
}

// Health probes the service with a tiny parse request and reports whether
// it answered with a usable tree.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.Parse(ctx, "ok", true)
	return err
}

type parseRequest struct {
	Text string `json:"text"`
}

func (c *Client) post(ctx context.Context, url string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	observability.HTTP().OnRequest(ctx, req.Method, req.URL.Host, req.URL.Path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, req.Method, req.URL.Host, req.URL.Path, err)
		return nil, &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	defer resp.Body.Close()

	observability.HTTP().OnResponse(ctx, req.Method, req.URL.Host, req.URL.Path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, err
	}
	return io.ReadAll(resp.Body)
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return &httputil.RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}

func decodeTree(data []byte) (*logic.Node, error) {
	var n logic.Node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	return &n, nil
}
