package services

import (
	"errors"
	"testing"

	"fashion-platform/internal/config"
	"fashion-platform/internal/models"
)

// stubEmbedder records the text it was asked to embed and returns a fixed vector
type stubEmbedder struct {
	lastText string
	calls    int
	vec      []float32
	err      error
}

func (s *stubEmbedder) GenerateEmbedding(text string) ([]float32, error) {
	s.calls++
	s.lastText = text
	return s.vec, s.err
}

func newTestSearchService(embedder Embedder, catalog *CatalogIndex) *SearchService {
	images := NewImageService(config.ImageConfig{CDNBaseURL: "https://cdn.test/upload", Width: 400})
	return NewSearchService(catalog, embedder, images, nil)
}

func searchTestCatalog() *CatalogIndex {
	vectors := [][]float32{
		{0, 5},
		{0, 1},
		{0, 3},
	}
	details := []models.ProductDetail{
		{ProductID: "P0", ProductName: "Far Jacket", Price: 500000},
		{ProductID: "P1", ProductName: "Near Shirt", Price: 150000},
		{ProductID: "P2", ProductName: "Mid Dress", Price: 300000},
	}
	return NewCatalogIndexFromData(2, vectors, details)
}

func TestSearchService_Search(t *testing.T) {
	embedder := &stubEmbedder{vec: []float32{0, 0}}
	s := newTestSearchService(embedder, searchTestCatalog())

	got := s.Search("casual shirt", 2, "")
	if embedder.lastText != "casual shirt" {
		t.Errorf("embedded text %q, want %q", embedder.lastText, "casual shirt")
	}
	if len(got) != 2 {
		t.Fatalf("got %d products, want 2", len(got))
	}
	if got[0].ID != "P1" || got[1].ID != "P2" {
		t.Errorf("unexpected order: %s, %s", got[0].ID, got[1].ID)
	}
	if got[0].Price != "IDR 150,000" {
		t.Errorf("got price %q", got[0].Price)
	}
}

func TestSearchService_Search_GenderHintPrefix(t *testing.T) {
	embedder := &stubEmbedder{vec: []float32{0, 0}}
	s := newTestSearchService(embedder, searchTestCatalog())

	s.Search("casual shirt", 2, "male")
	if embedder.lastText != "Men casual shirt" {
		t.Errorf("embedded text %q, want %q", embedder.lastText, "Men casual shirt")
	}

	s.Search("summer dress", 2, "FEMALE")
	if embedder.lastText != "Women summer dress" {
		t.Errorf("embedded text %q, want %q", embedder.lastText, "Women summer dress")
	}
}

func TestSearchService_Search_DefaultK(t *testing.T) {
	embedder := &stubEmbedder{vec: []float32{0, 0}}
	s := newTestSearchService(embedder, searchTestCatalog())

	// k<1 falls back to the default; catalog only has 3 entries
	got := s.Search("anything", 0, "")
	if len(got) != 3 {
		t.Errorf("got %d products, want 3", len(got))
	}
}

func TestSearchService_Search_EmbeddingFailure(t *testing.T) {
	embedder := &stubEmbedder{err: errors.New("upstream down")}
	s := newTestSearchService(embedder, searchTestCatalog())

	got := s.Search("casual shirt", 2, "")
	if got == nil {
		t.Fatal("degraded result should be an empty slice, not nil")
	}
	if len(got) != 0 {
		t.Errorf("got %d products, want 0", len(got))
	}
}

func TestSearchService_Search_UnavailableCatalog(t *testing.T) {
	embedder := &stubEmbedder{vec: []float32{0, 0}}
	catalog := NewCatalogIndex(config.CatalogConfig{
		IndexPath:   "/nonexistent/index.bin",
		DetailsPath: "/nonexistent/details.json",
	})
	s := newTestSearchService(embedder, catalog)

	if got := s.Search("casual shirt", 2, ""); len(got) != 0 {
		t.Errorf("got %d products, want 0", len(got))
	}
}

func TestSearchService_HydrateMatches_DropsUnresolvable(t *testing.T) {
	s := newTestSearchService(&stubEmbedder{}, searchTestCatalog())

	matches := []IndexMatch{
		{Ordinal: -1},
		{Ordinal: 2},
		{Ordinal: 99},
		{Ordinal: 0},
	}
	got := s.hydrateMatches(matches)
	if len(got) != 2 {
		t.Fatalf("got %d products, want 2", len(got))
	}
	if got[0].ID != "P2" || got[1].ID != "P0" {
		t.Errorf("unexpected products: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestSearchService_DisplayDefaults(t *testing.T) {
	s := newTestSearchService(&stubEmbedder{}, searchTestCatalog())

	got := s.displayFromDetail(&models.ProductDetail{Price: 1000})
	if got.ID != "N/A" || got.Name != "N/A" || got.Brand != "N/A" {
		t.Errorf("missing placeholders: %+v", got)
	}
	if got.Description != "No description available." {
		t.Errorf("got description %q", got.Description)
	}
	if got.Price != "IDR 1,000" {
		t.Errorf("got price %q", got.Price)
	}
}

func TestSearchService_RecommendForCustomer_UnusableProfile(t *testing.T) {
	db := newProfileTestDB(t)
	embedder := &stubEmbedder{vec: []float32{0, 0}}
	images := NewImageService(config.ImageConfig{CDNBaseURL: "https://cdn.test/upload", Width: 400})
	s := NewSearchService(searchTestCatalog(), embedder, images, NewCustomerProfileService(db))

	got := s.RecommendForCustomer("CUST0001", "")
	if len(got) != 0 {
		t.Errorf("got %d products, want 0", len(got))
	}
	// No embedding call for an unusable profile
	if embedder.calls != 0 {
		t.Errorf("embedder called %d times, want 0", embedder.calls)
	}
}

func TestSearchService_RecommendForCustomer_WithActivity(t *testing.T) {
	db := newProfileTestDB(t)
	seedProfileProducts(t, db)
	db.Create(&models.SessionLog{CustomerID: "CUST0001", SearchQueries: "summer dress"})

	embedder := &stubEmbedder{vec: []float32{0, 0}}
	images := NewImageService(config.ImageConfig{CDNBaseURL: "https://cdn.test/upload", Width: 400})
	s := NewSearchService(searchTestCatalog(), embedder, images, NewCustomerProfileService(db))

	got := s.RecommendForCustomer("CUST0001", "women")
	if embedder.lastText != "Women Searched for: summer dress." {
		t.Errorf("embedded text %q", embedder.lastText)
	}
	if len(got) != 3 {
		t.Errorf("got %d products, want 3", len(got))
	}
}
