package controllers

import (
	"net/http"
	"strings"
	"time"

	"fashion-platform/internal/middleware"
	"fashion-platform/internal/models"
	"fashion-platform/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthController 登录/注册控制器
// 登录只做客户ID查验，登录成功后从客户记录恢复购物车和心愿单
type AuthController struct {
	db       *gorm.DB
	sessions *services.SessionStateManager
	ranking  *services.RankingService
}

// NewAuthController 创建登录控制器
func NewAuthController(db *gorm.DB, sessions *services.SessionStateManager, ranking *services.RankingService) *AuthController {
	return &AuthController{db: db, sessions: sessions, ranking: ranking}
}

// Login 客户登录
// POST /api/v1/auth/login
func (c *AuthController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": err.Error(),
		})
		return
	}

	var customer models.Customer
	if err := c.db.Where("customer_id = ?", req.CustomerID).First(&customer).Error; err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "Customer ID not found. Please check your ID or create a new account.",
		})
		return
	}

	token, err := middleware.GenerateToken(customer.CustomerID, customer.Gender)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "Failed to generate token",
		})
		return
	}

	// 恢复上次会话留下的购物车和心愿单
	cart := c.hydrateIDList(customer.AbandonedCart)
	wishlist := c.hydrateIDList(customer.WishlistItems)
	c.sessions.SetCart(customer.CustomerID, cart)
	c.sessions.SetWishlist(customer.CustomerID, wishlist)

	now := time.Now()
	c.db.Model(&models.Customer{}).Where("customer_id = ?", customer.CustomerID).
		Update("last_login_at", &now)

	ctx.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": gin.H{
			"token":       token,
			"customer_id": customer.CustomerID,
			"gender":      customer.Gender,
			"cart":        cart,
			"wishlist":    wishlist,
		},
	})
}

// Register 创建新客户
// POST /api/v1/auth/register
func (c *AuthController) Register(ctx *gin.Context) {
	var req struct {
		Gender string `json:"gender"`
	}
	// gender 可选，注册体可以为空
	_ = ctx.ShouldBindJSON(&req)

	customer := models.Customer{
		CustomerID:    "CUST" + strings.ToUpper(uuid.NewString()[:8]),
		Gender:        services.NormalizeGender(req.Gender),
		AbandonedCart: "[]",
		WishlistItems: "[]",
	}

	if err := c.db.Create(&customer).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "Failed to create customer",
		})
		return
	}

	token, err := middleware.GenerateToken(customer.CustomerID, customer.Gender)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "Failed to generate token",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "Welcome! Please save your Customer ID for future logins.",
		"data": gin.H{
			"token":       token,
			"customer_id": customer.CustomerID,
			"gender":      customer.Gender,
		},
	})
}

// Logout 登出，清空会话状态
// POST /api/v1/auth/logout
func (c *AuthController) Logout(ctx *gin.Context) {
	customerID := ctx.GetString("customer_id")
	c.sessions.Clear(customerID)

	ctx.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "Logged out",
	})
}

// Me 当前登录客户信息
// GET /api/v1/auth/me
func (c *AuthController) Me(ctx *gin.Context) {
	customerID := ctx.GetString("customer_id")

	var customer models.Customer
	if err := c.db.Where("customer_id = ?", customerID).First(&customer).Error; err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": "Customer not found",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": gin.H{
			"customer_id":    customer.CustomerID,
			"gender":         customer.Gender,
			"cart_count":     len(c.sessions.Cart(customerID)),
			"wishlist_count": len(c.sessions.Wishlist(customerID)),
		},
	})
}

// hydrateIDList 把序列化的商品ID列表装配成展示记录
// 解析失败或商品不存在的条目静默丢弃
func (c *AuthController) hydrateIDList(raw string) []models.DisplayProduct {
	ids := services.ParseIDList(raw)
	if len(ids) == 0 {
		return []models.DisplayProduct{}
	}

	var products []models.Product
	if err := c.db.Where("product_id IN ?", ids).Find(&products).Error; err != nil {
		return []models.DisplayProduct{}
	}

	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ProductID] = p
	}

	out := make([]models.DisplayProduct, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, c.ranking.DisplayFromProduct(p))
		}
	}
	return out
}
