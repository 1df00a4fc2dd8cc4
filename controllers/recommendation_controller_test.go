package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fashion-platform/internal/models"
	"fashion-platform/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newRecommendationRouter(t *testing.T, embedder services.Embedder) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	images := testImageService()
	search := services.NewSearchService(testCatalog(), embedder, images, services.NewCustomerProfileService(db))
	ranking := services.NewRankingService(db, images)
	recommendationController := NewRecommendationController(search, ranking)

	router := gin.New()
	router.Use(authAs("CUST0001", "Women"))
	router.GET("/recommendations/history", recommendationController.History)
	router.GET("/recommendations/trending", recommendationController.Trending)
	router.GET("/recommendations/discounted", recommendationController.Discounted)
	return router, db
}

func getJSON(t *testing.T, router *gin.Engine, path string) map[string]interface{} {
	t.Helper()
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func seedRankingProducts(t *testing.T, db *gorm.DB) {
	t.Helper()
	products := []models.Product{
		{ProductID: "P001", ProductName: "Linen Shirt", GenderOrientation: "Men", Rating: 3.0, Discount: "5%"},
		{ProductID: "P002", ProductName: "Denim Jacket", GenderOrientation: "Women", Rating: 5.0, Discount: "20% off"},
		{ProductID: "P003", ProductName: "Silk Scarf", GenderOrientation: "Women", Rating: 4.0, Discount: ""},
	}
	if err := db.Create(&products).Error; err != nil {
		t.Fatalf("failed to seed products: %v", err)
	}
}

func TestRecommendationController_History_NoActivity(t *testing.T) {
	router, _ := newRecommendationRouter(t, &fixedEmbedder{vec: []float32{0, 0}})

	response := getJSON(t, router, "/recommendations/history")
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["count"])
}

func TestRecommendationController_History_WithActivity(t *testing.T) {
	router, db := newRecommendationRouter(t, &fixedEmbedder{vec: []float32{0, 0}})
	db.Create(&models.SessionLog{CustomerID: "CUST0001", SearchQueries: "summer dress"})

	response := getJSON(t, router, "/recommendations/history")
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["count"])
}

func TestRecommendationController_Trending(t *testing.T) {
	router, db := newRecommendationRouter(t, &fixedEmbedder{vec: []float32{0, 0}})
	seedRankingProducts(t, db)

	// Token gender (Women) applies when no query parameter is given
	response := getJSON(t, router, "/recommendations/trending")
	data := response["data"].(map[string]interface{})
	products := data["products"].([]interface{})
	assert.Len(t, products, 2)
	first := products[0].(map[string]interface{})
	assert.Equal(t, "P002", first["id"])

	// Explicit query parameter wins over the token gender
	response = getJSON(t, router, "/recommendations/trending?gender=male&limit=1")
	data = response["data"].(map[string]interface{})
	products = data["products"].([]interface{})
	assert.Len(t, products, 1)
	assert.Equal(t, "P001", products[0].(map[string]interface{})["id"])
}

func TestRecommendationController_Discounted(t *testing.T) {
	router, db := newRecommendationRouter(t, &fixedEmbedder{vec: []float32{0, 0}})
	seedRankingProducts(t, db)

	response := getJSON(t, router, "/recommendations/discounted")
	data := response["data"].(map[string]interface{})
	products := data["products"].([]interface{})
	assert.Len(t, products, 2)
	// Women-only ranking: 20% beats no discount
	assert.Equal(t, "P002", products[0].(map[string]interface{})["id"])
	assert.Equal(t, "P003", products[1].(map[string]interface{})["id"])
}
