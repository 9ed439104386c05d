package observability

import (
	"context"
	"testing"
	"time"
)

type recordingAnalysisHooks struct {
	NoopAnalysisHooks
	parseStarts int
	parseDone   int
}

func (h *recordingAnalysisHooks) OnParseStart(context.Context, string) { h.parseStarts++ }
func (h *recordingAnalysisHooks) OnParseComplete(context.Context, string, int, time.Duration, error) {
	h.parseDone++
}

type recordingCacheHooks struct {
	NoopCacheHooks
	hits int
}

func (h *recordingCacheHooks) OnCacheHit(context.Context, string) { h.hits++ }

func TestDefaultsAreNoops(t *testing.T) {
	Reset()

	// None of these should panic.
	ctx := context.Background()
	Analysis().OnParseStart(ctx, "ref")
	Analysis().OnParseComplete(ctx, "ref", 3, time.Second, nil)
	Analysis().OnFlattenComplete(ctx, "ref", 5, 4)
	Cache().OnCacheHit(ctx, "parse")
	HTTP().OnRequest(ctx, "POST", "example.com", "/parse")
}

func TestSetAnalysisHooks(t *testing.T) {
	defer Reset()

	h := &recordingAnalysisHooks{}
	SetAnalysisHooks(h)

	ctx := context.Background()
	Analysis().OnParseStart(ctx, "ref")
	Analysis().OnParseStart(ctx, "comp")
	Analysis().OnParseComplete(ctx, "ref", 3, time.Second, nil)

	if h.parseStarts != 2 {
		t.Errorf("parseStarts = %d, want 2", h.parseStarts)
	}
	if h.parseDone != 1 {
		t.Errorf("parseDone = %d, want 1", h.parseDone)
	}
}

func TestSetCacheHooks(t *testing.T) {
	defer Reset()

	h := &recordingCacheHooks{}
	SetCacheHooks(h)
	Cache().OnCacheHit(context.Background(), "parse")

	if h.hits != 1 {
		t.Errorf("hits = %d, want 1", h.hits)
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	defer Reset()

	h := &recordingAnalysisHooks{}
	SetAnalysisHooks(h)
	SetAnalysisHooks(nil)

	Analysis().OnParseStart(context.Background(), "ref")
	if h.parseStarts != 1 {
		t.Error("nil registration replaced the current hooks")
	}
}
