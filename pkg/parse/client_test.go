package parse

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Holmfrior/Technopreneurship/pkg/cache"
	"github.com/Holmfrior/Technopreneurship/pkg/httputil"
)

const sampleTree = `{
	"type": "span",
	"relation": "cause",
	"children": [
		{"type": "leaf", "text": "the fuse blew"},
		{"type": "leaf", "text": "the motor stopped"}
	]
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestParse(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/parse" {
			t.Errorf("path = %s, want /parse", r.URL.Path)
		}
		if got := r.Header.Get("ngrok-skip-browser-warning"); got != "true" {
			t.Errorf("tunnel bypass header = %q, want \"true\"", got)
		}

		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Text != "the fuse blew" {
			t.Errorf("text = %q", req.Text)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleTree))
	})

	c := NewClient(srv.URL, cache.NewNullCache(), 0)
	tree, err := c.Parse(context.Background(), "the fuse blew", false)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tree.Relation != "cause" {
		t.Errorf("relation = %q, want cause", tree.Relation)
	}
	if len(tree.Children) != 2 {
		t.Errorf("children = %d, want 2", len(tree.Children))
	}
}

func TestParseTrailingSlashBaseURL(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/parse" {
			t.Errorf("path = %s, want /parse", r.URL.Path)
		}
		_, _ = w.Write([]byte(sampleTree))
	})

	c := NewClient(srv.URL+"/", cache.NewNullCache(), 0)
	if _, err := c.Parse(context.Background(), "x", false); err != nil {
		t.Fatalf("Parse: %v", err)
	}
}

func TestParseUsesCache(t *testing.T) {
	var calls atomic.Int32
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(sampleTree))
	})

	backend, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	c := NewClient(srv.URL, backend, time.Hour)

	ctx := context.Background()
	if _, err := c.Parse(ctx, "same text", false); err != nil {
		t.Fatalf("first Parse: %v", err)
	}
	if _, err := c.Parse(ctx, "same text", false); err != nil {
		t.Fatalf("second Parse: %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("server calls = %d, want 1 (second should hit cache)", got)
	}

	// refresh bypasses the cache
	if _, err := c.Parse(ctx, "same text", true); err != nil {
		t.Fatalf("refresh Parse: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("server calls = %d, want 2 after refresh", got)
	}
}

func TestParseRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(sampleTree))
	})

	old := retryBaseDelay
	retryBaseDelay = time.Millisecond
	defer func() { retryBaseDelay = old }()

	c := NewClient(srv.URL, cache.NewNullCache(), 0)
	if _, err := c.Parse(context.Background(), "x", false); err != nil {
		t.Fatalf("Parse after retries: %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("server calls = %d, want 3", got)
	}
}

func TestParseNotFound(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	c := NewClient(srv.URL, cache.NewNullCache(), 0)
	_, err := c.Parse(context.Background(), "x", false)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestParseClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	})

	c := NewClient(srv.URL, cache.NewNullCache(), 0)
	_, err := c.Parse(context.Background(), "x", false)
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("error = %v, want ErrNetwork", err)
	}
	if httputil.IsRetryable(err) {
		t.Error("4xx errors must not be retryable")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("server calls = %d, want 1", got)
	}
}

func TestParseMalformedBody(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	})

	c := NewClient(srv.URL, cache.NewNullCache(), 0)
	if _, err := c.Parse(context.Background(), "x", false); err == nil {
		t.Error("expected decode error for malformed body")
	}
}

func TestHealth(t *testing.T) {
	var calls atomic.Int32
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(sampleTree))
	})

	backend, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	c := NewClient(srv.URL, backend, time.Hour)

	ctx := context.Background()
	if err := c.Health(ctx); err != nil {
		t.Fatalf("Health: %v", err)
	}

	// A warm cache must not mask a dead service.
	if err := c.Health(ctx); err != nil {
		t.Fatalf("second Health: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("server calls = %d, want 2 (probe must bypass the cache)", got)
	}
}

func TestHealthServiceDown(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	c := NewClient(srv.URL, cache.NewNullCache(), 0)
	if err := c.Health(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestParsePermissiveFields(t *testing.T) {
	// A tree with missing type/relation/text fields decodes cleanly.
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"children": [{}, {"text": "spare"}]}`))
	})

	c := NewClient(srv.URL, cache.NewNullCache(), 0)
	tree, err := c.Parse(context.Background(), "x", false)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tree.Kind() != "span" {
		t.Errorf("Kind() = %q, want span default", tree.Kind())
	}
	if len(tree.Children) != 2 {
		t.Errorf("children = %d, want 2", len(tree.Children))
	}
}
