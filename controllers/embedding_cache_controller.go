package controllers

import (
	"net/http"

	"fashion-platform/services"

	"github.com/gin-gonic/gin"
)

// EmbeddingCacheController 向量缓存与目录索引状态控制器（运维接口）
type EmbeddingCacheController struct {
	cache   *services.EmbeddingCacheService
	catalog *services.CatalogIndex
}

// NewEmbeddingCacheController 创建缓存控制器
func NewEmbeddingCacheController(cache *services.EmbeddingCacheService, catalog *services.CatalogIndex) *EmbeddingCacheController {
	return &EmbeddingCacheController{cache: cache, catalog: catalog}
}

// GetStats 缓存统计
// GET /api/v1/admin/embedding-cache/stats
func (c *EmbeddingCacheController) GetStats(ctx *gin.Context) {
	stats, err := c.cache.Stats()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": stats,
	})
}

// Purge 清空缓存
// POST /api/v1/admin/embedding-cache/purge
func (c *EmbeddingCacheController) Purge(ctx *gin.Context) {
	if err := c.cache.Purge(); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "Embedding cache purged",
	})
}

// GetCatalogStatus 目录索引状态
// GET /api/v1/admin/catalog/status
func (c *EmbeddingCacheController) GetCatalogStatus(ctx *gin.Context) {
	data := gin.H{
		"available": c.catalog.Available(),
		"size":      c.catalog.Size(),
	}
	if err := c.catalog.LoadError(); err != nil {
		data["error"] = err.Error()
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": data,
	})
}
