package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestAIMetricsSignatures verifies that all exported convenience functions
// plus Timer compile and can be called with the documented parameter types.
func TestAIMetricsSignatures(t *testing.T) {
	// Histograms
	RecordEmbeddingCallDuration("openai", "embed", 123.4)
	RecordVectorSearchDuration("query", 45.6)
	RecordRecommendationDuration("history", "success", 200.0)

	// Counters
	IncEmbeddingCallCount("openai", "success")
	IncVectorSearchCount("query", true)
	IncRecommendationCount("history", false)
	IncEmbeddingCacheCount("hit")

	// Gauge
	SetCatalogAvailable(true)

	// Timer
	timer := NewTimer()
	elapsed := timer.ElapsedMs()
	if elapsed < 0 {
		t.Error("ElapsedMs returned negative value")
	}

	// MetricsHandler returns http.HandlerFunc
	var _ http.HandlerFunc = MetricsHandler()
}

// TestAIMetricsOutput verifies that the /metrics endpoint produces output
// containing the expected metric names.
func TestAIMetricsOutput(t *testing.T) {
	// Record at least one observation per metric so they appear in output
	RecordEmbeddingCallDuration("test_provider", "embed", 42.0)
	IncEmbeddingCallCount("test_provider", "success")

	handler := MetricsHandler()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	body := rec.Body.String()

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	// Must contain these metric names
	for _, want := range []string{
		"fashion_embedding_call_duration_ms",
		"fashion_embedding_call_total",
		"fashion_catalog_available",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

// TestAIMetricsBuckets verifies that histogram bucket boundaries include the
// expected le values from defaultBuckets.
func TestAIMetricsBuckets(t *testing.T) {
	RecordEmbeddingCallDuration("bucket_test", "embed", 5.0)

	handler := MetricsHandler()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	body := rec.Body.String()

	for _, want := range []string{
		`le="10"`,
		`le="250"`,
		`le="60000"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing bucket boundary %s", want)
		}
	}
}

// TestAIMetricsRegistry verifies that GetMetricsRegistry returns a non-nil
// registry that can be used as a Gatherer.
func TestAIMetricsRegistry(t *testing.T) {
	reg := GetMetricsRegistry()
	if reg == nil {
		t.Fatal("GetMetricsRegistry() returned nil")
	}

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	if len(mfs) == 0 {
		t.Error("Gather() returned no metric families")
	}
}
