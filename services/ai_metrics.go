package services

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ---------- private registry & metric vars ----------

var (
	aiRegistry     *prometheus.Registry
	aiRegistryOnce sync.Once

	// Histograms
	embeddingCallDuration  *prometheus.HistogramVec
	vectorSearchDuration   *prometheus.HistogramVec
	recommendationDuration *prometheus.HistogramVec

	// Counters
	embeddingCallTotal  *prometheus.CounterVec
	vectorSearchTotal   *prometheus.CounterVec
	recommendationTotal *prometheus.CounterVec
	embeddingCacheTotal *prometheus.CounterVec

	// Gauges
	catalogAvailableGauge prometheus.Gauge
)

// defaultBuckets bucket 边界（毫秒）
var defaultBuckets = []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000, 60000}

// initAIMetrics lazily creates the private registry and registers all metrics.
func initAIMetrics() {
	aiRegistryOnce.Do(func() {
		aiRegistry = prometheus.NewRegistry()

		embeddingCallDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fashion_embedding_call_duration_ms",
			Help:    "Embedding service call duration in milliseconds",
			Buckets: defaultBuckets,
		}, []string{"provider", "stage"})

		vectorSearchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fashion_vector_search_duration_ms",
			Help:    "Catalog vector search duration in milliseconds",
			Buckets: defaultBuckets,
		}, []string{"source"})

		recommendationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fashion_recommendation_duration_ms",
			Help:    "End-to-end recommendation duration in milliseconds",
			Buckets: defaultBuckets,
		}, []string{"source", "status"})

		embeddingCallTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fashion_embedding_call_total",
			Help: "Total number of embedding service calls",
		}, []string{"provider", "status"})

		vectorSearchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fashion_vector_search_total",
			Help: "Total number of catalog vector searches",
		}, []string{"source", "status"})

		recommendationTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fashion_recommendation_total",
			Help: "Total number of recommendation requests",
		}, []string{"source", "status"})

		embeddingCacheTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fashion_embedding_cache_total",
			Help: "Embedding cache lookups by outcome",
		}, []string{"outcome"})

		catalogAvailableGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fashion_catalog_available",
			Help: "1 if the catalog vector index loaded successfully, 0 otherwise",
		})

		aiRegistry.MustRegister(
			embeddingCallDuration,
			vectorSearchDuration,
			recommendationDuration,
			embeddingCallTotal,
			vectorSearchTotal,
			recommendationTotal,
			embeddingCacheTotal,
			catalogAvailableGauge,
		)
	})
}

// ---------- exported convenience functions ----------

// RecordEmbeddingCallDuration 记录 embedding 调用耗时（毫秒）
func RecordEmbeddingCallDuration(provider, stage string, ms float64) {
	initAIMetrics()
	embeddingCallDuration.WithLabelValues(provider, stage).Observe(ms)
}

// RecordVectorSearchDuration 记录向量检索耗时（毫秒）
func RecordVectorSearchDuration(source string, ms float64) {
	initAIMetrics()
	vectorSearchDuration.WithLabelValues(source).Observe(ms)
}

// RecordRecommendationDuration 记录推荐请求端到端耗时（毫秒）
func RecordRecommendationDuration(source, status string, ms float64) {
	initAIMetrics()
	recommendationDuration.WithLabelValues(source, status).Observe(ms)
}

// IncEmbeddingCallCount 累计 embedding 调用次数
func IncEmbeddingCallCount(provider, status string) {
	initAIMetrics()
	embeddingCallTotal.WithLabelValues(provider, status).Inc()
}

// IncVectorSearchCount 累计向量检索次数
func IncVectorSearchCount(source string, success bool) {
	initAIMetrics()
	vectorSearchTotal.WithLabelValues(source, statusLabel(success)).Inc()
}

// IncRecommendationCount 累计推荐请求次数
func IncRecommendationCount(source string, success bool) {
	initAIMetrics()
	recommendationTotal.WithLabelValues(source, statusLabel(success)).Inc()
}

// IncEmbeddingCacheCount 累计缓存命中/未命中次数
func IncEmbeddingCacheCount(outcome string) {
	initAIMetrics()
	embeddingCacheTotal.WithLabelValues(outcome).Inc()
}

// SetCatalogAvailable 更新目录索引可用状态
func SetCatalogAvailable(available bool) {
	initAIMetrics()
	if available {
		catalogAvailableGauge.Set(1)
	} else {
		catalogAvailableGauge.Set(0)
	}
}

func statusLabel(success bool) string {
	if success {
		return "success"
	}
	return "error"
}

// Timer 简单计时器，用于耗时统计
type Timer struct {
	start time.Time
}

// NewTimer 创建计时器
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ElapsedMs 返回自创建以来的毫秒数
func (t *Timer) ElapsedMs() float64 {
	return float64(time.Since(t.start)) / float64(time.Millisecond)
}

// GetMetricsRegistry 返回私有 registry（供自定义 Gatherer 场景使用）
func GetMetricsRegistry() *prometheus.Registry {
	initAIMetrics()
	return aiRegistry
}

// MetricsHandler 返回 /metrics 的 HTTP handler（仅暴露私有 registry）
func MetricsHandler() http.HandlerFunc {
	initAIMetrics()
	h := promhttp.HandlerFor(aiRegistry, promhttp.HandlerOpts{})
	return func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r)
	}
}
