package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"fashion-platform/internal/models"
	"fashion-platform/services"

	"github.com/gin-gonic/gin"
)

// StyleController 体型分类与穿搭建议控制器
type StyleController struct {
	advisor *services.StyleAdvisorService
	search  *services.SearchService
}

// NewStyleController 创建穿搭控制器
func NewStyleController(advisor *services.StyleAdvisorService, search *services.SearchService) *StyleController {
	return &StyleController{advisor: advisor, search: search}
}

// ClassifyBodyShape 体型分类
// POST /api/v1/style/body-shape
func (c *StyleController) ClassifyBodyShape(ctx *gin.Context) {
	var req models.StyleAdviceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": err.Error(),
		})
		return
	}

	shape, err := c.classify(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": gin.H{
			"gender":     services.NormalizeGender(req.Gender),
			"body_shape": shape,
		},
	})
}

// GetStyleAdvice 体型分类 + 穿搭建议 + 搭配商品
// POST /api/v1/style/advice
func (c *StyleController) GetStyleAdvice(ctx *gin.Context) {
	var req models.StyleAdviceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": err.Error(),
		})
		return
	}

	shape, err := c.classify(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": err.Error(),
		})
		return
	}

	rule, err := c.advisor.LookupRule(req.Gender, shape)
	if err != nil {
		if errors.Is(err, services.ErrNoTipsForShape) {
			// 无匹配规则时不发起检索，给用户一个明确的降级提示
			ctx.JSON(http.StatusOK, gin.H{
				"code":    200,
				"message": fmt.Sprintf("No styling tips found for the '%s' body shape.", shape),
				"data": gin.H{
					"body_shape": shape,
					"advice":     "",
					"products":   []models.DisplayProduct{},
				},
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": err.Error(),
		})
		return
	}

	query, err := services.DeriveQuery(rule)
	if err != nil {
		ctx.JSON(http.StatusOK, gin.H{
			"code":    200,
			"message": fmt.Sprintf("No styling tips found for the '%s' body shape.", shape),
			"data": gin.H{
				"body_shape": shape,
				"advice":     "",
				"products":   []models.DisplayProduct{},
			},
		})
		return
	}

	// LLM 文案失败时降级为空文案，搭配商品照常返回
	advice, err := c.advisor.GenerateAdvice(shape, rule)
	if err != nil {
		log.Printf("[StyleController] 生成穿搭建议文案失败: %v", err)
		advice = ""
	}

	products := c.search.Search(query, 4, req.Gender)

	ctx.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": gin.H{
			"body_shape":   shape,
			"advice":       advice,
			"search_query": query,
			"products":     products,
		},
	})
}

// classify 按性别选择测量模式并分类
func (c *StyleController) classify(req models.StyleAdviceRequest) (string, error) {
	switch services.NormalizeGender(req.Gender) {
	case "Women":
		return services.ClassifyWomenShape(req.Shoulders, req.Bust, req.Waist, req.Hips), nil
	case "Men":
		return services.ClassifyMenShape(req.Chest, req.Waist, req.Hips), nil
	default:
		return "", fmt.Errorf("unsupported gender: %s", req.Gender)
	}
}
