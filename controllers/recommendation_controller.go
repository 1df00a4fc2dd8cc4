package controllers

import (
	"net/http"
	"strconv"

	"fashion-platform/services"

	"github.com/gin-gonic/gin"
)

// RecommendationController 推荐榜单控制器
type RecommendationController struct {
	search  *services.SearchService
	ranking *services.RankingService
}

// NewRecommendationController 创建推荐控制器
func NewRecommendationController(search *services.SearchService, ranking *services.RankingService) *RecommendationController {
	return &RecommendationController{search: search, ranking: ranking}
}

// History 基于历史活动的个性化推荐
// GET /api/v1/recommendations/history
func (c *RecommendationController) History(ctx *gin.Context) {
	customerID := ctx.GetString("customer_id")
	gender := c.genderHint(ctx)

	results := c.search.RecommendForCustomer(customerID, gender)

	ctx.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": gin.H{
			"count":    len(results),
			"products": results,
		},
	})
}

// Trending 热度榜
// GET /api/v1/recommendations/trending
func (c *RecommendationController) Trending(ctx *gin.Context) {
	results, err := c.ranking.TopTrendingFromCatalog(c.genderHint(ctx), c.limit(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": gin.H{
			"count":    len(results),
			"products": results,
		},
	})
}

// Discounted 折扣榜
// GET /api/v1/recommendations/discounted
func (c *RecommendationController) Discounted(ctx *gin.Context) {
	results, err := c.ranking.TopDiscountedFromCatalog(c.genderHint(ctx), c.limit(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": gin.H{
			"count":    len(results),
			"products": results,
		},
	})
}

// genderHint 性别过滤：优先取查询参数，缺省用登录客户的性别
func (c *RecommendationController) genderHint(ctx *gin.Context) string {
	if gender := ctx.Query("gender"); gender != "" {
		return gender
	}
	return ctx.GetString("gender")
}

func (c *RecommendationController) limit(ctx *gin.Context) int {
	if raw := ctx.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return 5
}
