package controllers

import (
	"net/http"

	"fashion-platform/internal/models"
	"fashion-platform/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProductController 商品检索控制器
type ProductController struct {
	db      *gorm.DB
	search  *services.SearchService
	ranking *services.RankingService
}

// NewProductController 创建商品控制器
func NewProductController(db *gorm.DB, search *services.SearchService, ranking *services.RankingService) *ProductController {
	return &ProductController{db: db, search: search, ranking: ranking}
}

// Search 自由文本商品检索
// POST /api/v1/products/search
func (c *ProductController) Search(ctx *gin.Context) {
	var req models.SearchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": err.Error(),
		})
		return
	}

	gender := req.Gender
	if gender == "" {
		gender = ctx.GetString("gender")
	}

	results := c.search.Search(req.Query, req.K, gender)

	ctx.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": gin.H{
			"query":    req.Query,
			"count":    len(results),
			"products": results,
		},
	})
}

// GetProduct 商品详情
// GET /api/v1/products/:id
func (c *ProductController) GetProduct(ctx *gin.Context) {
	productID := ctx.Param("id")

	var product models.Product
	if err := c.db.Where("product_id = ?", productID).First(&product).Error; err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": "Product not found",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": c.ranking.DisplayFromProduct(product),
	})
}
