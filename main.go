package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fashion-platform/internal/config"
	"fashion-platform/internal/database"
	"fashion-platform/internal/router"
	"fashion-platform/services"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化数据库
	db, err := database.Initialize(cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// 初始化穿搭规则静态数据
	if err := database.SeedStyleRules(db); err != nil {
		log.Fatal("Failed to seed style rules:", err)
	}

	// 商品目录向量索引（延迟加载，首次检索时读盘）
	catalog := services.NewCatalogIndex(cfg.Catalog)

	// 域服务装配
	images := services.NewImageService(cfg.Image)
	cache := services.NewEmbeddingCacheService(db)
	embeddings := services.NewEmbeddingService(cfg.AI, cache)
	profiles := services.NewCustomerProfileService(db)
	search := services.NewSearchService(catalog, embeddings, images, profiles)
	ranking := services.NewRankingService(db, images)
	advisor := services.NewStyleAdvisorService(db, cfg.AI)
	sessions := services.GetSessionStateManager()

	r := router.Setup(router.Dependencies{
		DB:       db,
		Catalog:  catalog,
		Search:   search,
		Ranking:  ranking,
		Advisor:  advisor,
		Cache:    cache,
		Sessions: sessions,

		AdminPasswordHash: cfg.Admin.PasswordHash,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Server starting on port %s (env: %s)", cfg.Server.Port, cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed:", err)
		}
	}()

	// 优雅退出
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
