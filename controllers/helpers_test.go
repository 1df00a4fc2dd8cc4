package controllers

import (
	"testing"

	"fashion-platform/internal/config"
	"fashion-platform/internal/models"
	"fashion-platform/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with all tables migrated
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	err = db.AutoMigrate(
		&models.Product{},
		&models.Customer{},
		&models.SessionLog{},
		&models.Transaction{},
		&models.StyleRule{},
		&models.QueryEmbeddingCache{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func testImageService() *services.ImageService {
	return services.NewImageService(config.ImageConfig{
		CDNBaseURL: "https://cdn.test/upload",
		Width:      400,
	})
}

// fixedEmbedder returns the same vector for every input
type fixedEmbedder struct {
	vec []float32
	err error
}

func (f *fixedEmbedder) GenerateEmbedding(text string) ([]float32, error) {
	return f.vec, f.err
}

// testCatalog builds a small in-memory catalog index
func testCatalog() *services.CatalogIndex {
	vectors := [][]float32{
		{0, 1},
		{0, 2},
		{0, 3},
	}
	details := []models.ProductDetail{
		{ProductID: "P001", ProductName: "Linen Shirt", Price: 150000, GenderOrientation: "Men"},
		{ProductID: "P002", ProductName: "Denim Jacket", Price: 300000, GenderOrientation: "Women"},
		{ProductID: "P003", ProductName: "Silk Scarf", Price: 90000, GenderOrientation: "Women"},
	}
	return services.NewCatalogIndexFromData(2, vectors, details)
}

// authAs injects the identity claims the JWT middleware would set
func authAs(customerID, gender string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("customer_id", customerID)
		c.Set("gender", gender)
		c.Next()
	}
}
