package router

import (
	"net/http"

	"fashion-platform/controllers"
	"fashion-platform/internal/middleware"
	"fashion-platform/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Dependencies 路由装配所需的服务集合
type Dependencies struct {
	DB       *gorm.DB
	Catalog  *services.CatalogIndex
	Search   *services.SearchService
	Ranking  *services.RankingService
	Advisor  *services.StyleAdvisorService
	Cache    *services.EmbeddingCacheService
	Sessions *services.SessionStateManager

	// AdminPasswordHash 非空时运维接口额外要求口令
	AdminPasswordHash string
}

// Setup 装配全部路由
func Setup(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery(), middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Prometheus 指标
	r.GET("/metrics", gin.WrapF(services.MetricsHandler()))

	authController := controllers.NewAuthController(deps.DB, deps.Sessions, deps.Ranking)
	productController := controllers.NewProductController(deps.DB, deps.Search, deps.Ranking)
	recommendationController := controllers.NewRecommendationController(deps.Search, deps.Ranking)
	styleController := controllers.NewStyleController(deps.Advisor, deps.Search)
	cartController := controllers.NewCartController(deps.DB, deps.Sessions, deps.Ranking)
	cacheController := controllers.NewEmbeddingCacheController(deps.Cache, deps.Catalog)

	api := r.Group("/api/v1")

	// 公开接口
	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
	}

	// 登录后接口
	protected := api.Group("")
	protected.Use(middleware.JWTAuth())
	{
		protected.POST("/auth/logout", authController.Logout)
		protected.GET("/auth/me", authController.Me)

		protected.POST("/products/search", productController.Search)
		protected.GET("/products/:id", productController.GetProduct)

		recommendations := protected.Group("/recommendations")
		{
			recommendations.GET("/history", recommendationController.History)
			recommendations.GET("/trending", recommendationController.Trending)
			recommendations.GET("/discounted", recommendationController.Discounted)
		}

		style := protected.Group("/style")
		{
			style.POST("/body-shape", styleController.ClassifyBodyShape)
			style.POST("/advice", styleController.GetStyleAdvice)
		}

		protected.GET("/cart", cartController.GetCart)
		protected.POST("/cart", cartController.AddToCart)
		protected.DELETE("/cart/:product_id", cartController.RemoveFromCart)

		protected.GET("/wishlist", cartController.GetWishlist)
		protected.POST("/wishlist", cartController.AddToWishlist)
		protected.DELETE("/wishlist/:product_id", cartController.RemoveFromWishlist)

		admin := protected.Group("/admin")
		admin.Use(middleware.AdminAuth(deps.AdminPasswordHash))
		{
			admin.GET("/embedding-cache/stats", cacheController.GetStats)
			admin.POST("/embedding-cache/purge", cacheController.Purge)
			admin.GET("/catalog/status", cacheController.GetCatalogStatus)
		}
	}

	return r
}
