package controllers

import (
	"fmt"
	"net/http"

	"fashion-platform/internal/models"
	"fashion-platform/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CartController 购物车/心愿单控制器
// 会话内的可变状态都在 SessionStateManager 中，按客户隔离
type CartController struct {
	db       *gorm.DB
	sessions *services.SessionStateManager
	ranking  *services.RankingService
}

// NewCartController 创建购物车控制器
func NewCartController(db *gorm.DB, sessions *services.SessionStateManager, ranking *services.RankingService) *CartController {
	return &CartController{db: db, sessions: sessions, ranking: ranking}
}

// GetCart 当前购物车
// GET /api/v1/cart
func (c *CartController) GetCart(ctx *gin.Context) {
	customerID := ctx.GetString("customer_id")
	items := c.sessions.Cart(customerID)

	ctx.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": gin.H{
			"items":       items,
			"count":       len(items),
			"total":       c.sessions.CartTotal(customerID),
			"total_price": models.FormatPrice(c.sessions.CartTotal(customerID)),
		},
	})
}

// AddToCart 加入购物车
// POST /api/v1/cart
func (c *CartController) AddToCart(ctx *gin.Context) {
	customerID := ctx.GetString("customer_id")

	product, ok := c.bindProduct(ctx)
	if !ok {
		return
	}

	if !c.sessions.AddToCart(customerID, product) {
		ctx.JSON(http.StatusOK, gin.H{
			"code":    200,
			"message": fmt.Sprintf("%s is already in your cart.", product.Name),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": fmt.Sprintf("Added %s to cart!", product.Name),
		"data":    gin.H{"count": len(c.sessions.Cart(customerID))},
	})
}

// RemoveFromCart 从购物车移除
// DELETE /api/v1/cart/:product_id
func (c *CartController) RemoveFromCart(ctx *gin.Context) {
	customerID := ctx.GetString("customer_id")
	productID := ctx.Param("product_id")

	if !c.sessions.RemoveFromCart(customerID, productID) {
		ctx.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": "Product not in cart",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "Removed from cart",
		"data":    gin.H{"count": len(c.sessions.Cart(customerID))},
	})
}

// GetWishlist 当前心愿单
// GET /api/v1/wishlist
func (c *CartController) GetWishlist(ctx *gin.Context) {
	customerID := ctx.GetString("customer_id")
	items := c.sessions.Wishlist(customerID)

	ctx.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": gin.H{
			"items": items,
			"count": len(items),
		},
	})
}

// AddToWishlist 加入心愿单
// POST /api/v1/wishlist
func (c *CartController) AddToWishlist(ctx *gin.Context) {
	customerID := ctx.GetString("customer_id")

	product, ok := c.bindProduct(ctx)
	if !ok {
		return
	}

	if !c.sessions.AddToWishlist(customerID, product) {
		ctx.JSON(http.StatusOK, gin.H{
			"code":    200,
			"message": fmt.Sprintf("%s is already in your wishlist.", product.Name),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": fmt.Sprintf("Added %s to wishlist!", product.Name),
		"data":    gin.H{"count": len(c.sessions.Wishlist(customerID))},
	})
}

// RemoveFromWishlist 从心愿单移除
// DELETE /api/v1/wishlist/:product_id
func (c *CartController) RemoveFromWishlist(ctx *gin.Context) {
	customerID := ctx.GetString("customer_id")
	productID := ctx.Param("product_id")

	if !c.sessions.RemoveFromWishlist(customerID, productID) {
		ctx.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": "Product not in wishlist",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "Removed from wishlist",
		"data":    gin.H{"count": len(c.sessions.Wishlist(customerID))},
	})
}

// bindProduct 解析请求中的商品ID并装配展示记录
func (c *CartController) bindProduct(ctx *gin.Context) (models.DisplayProduct, bool) {
	var req models.CartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": err.Error(),
		})
		return models.DisplayProduct{}, false
	}

	var product models.Product
	if err := c.db.Where("product_id = ?", req.ProductID).First(&product).Error; err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": "Product not found",
		})
		return models.DisplayProduct{}, false
	}

	return c.ranking.DisplayFromProduct(product), true
}
