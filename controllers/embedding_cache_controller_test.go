package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fashion-platform/internal/config"
	"fashion-platform/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAdminRouter(t *testing.T) (*gin.Engine, *services.EmbeddingCacheService) {
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	cache := services.NewEmbeddingCacheService(db)
	catalog := services.NewCatalogIndex(config.CatalogConfig{
		IndexPath:   "/nonexistent/index.bin",
		DetailsPath: "/nonexistent/details.json",
	})
	cacheController := NewEmbeddingCacheController(cache, catalog)

	router := gin.New()
	router.GET("/admin/embedding-cache/stats", cacheController.GetStats)
	router.POST("/admin/embedding-cache/purge", cacheController.Purge)
	router.GET("/admin/catalog/status", cacheController.GetCatalogStatus)
	return router, cache
}

func TestEmbeddingCacheController_StatsAndPurge(t *testing.T) {
	router, cache := newAdminRouter(t)

	cache.Put("summer dress", "test-model", []float32{1, 2})
	cache.Get("summer dress", "test-model")

	req, _ := http.NewRequest("GET", "/admin/embedding-cache/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total_count"])
	assert.Equal(t, float64(1), data["total_hits"])

	req, _ = http.NewRequest("POST", "/admin/embedding-cache/purge", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", "/admin/embedding-cache/stats", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data = response["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["total_count"])
}

func TestEmbeddingCacheController_CatalogStatus(t *testing.T) {
	router, _ := newAdminRouter(t)

	req, _ := http.NewRequest("GET", "/admin/catalog/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, false, data["available"])
	assert.Equal(t, float64(0), data["size"])
	assert.Equal(t, "product catalog index unavailable", data["error"])
}
