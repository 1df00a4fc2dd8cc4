package services

import (
	"log"
	"strings"

	"fashion-platform/internal/models"
)

// 检索默认参数，与离线评估保持一致
const (
	defaultSearchK    = 8
	historyRecommendK = 5
)

// Embedder 文本向量化边界
// 生产实现为 EmbeddingService，测试中可用桩实现替换
type Embedder interface {
	GenerateEmbedding(text string) ([]float32, error)
}

// SearchService 向量检索推荐服务
// 查询检索和历史画像推荐共用同一条 embedding → 最近邻 → 明细装配管线。
// 外部调用失败一律降级为空结果，不向上抛应用级错误
type SearchService struct {
	catalog    *CatalogIndex
	embeddings Embedder
	images     *ImageService
	profiles   *CustomerProfileService
}

// NewSearchService 创建检索服务实例
func NewSearchService(catalog *CatalogIndex, embeddings Embedder, images *ImageService, profiles *CustomerProfileService) *SearchService {
	return &SearchService{
		catalog:    catalog,
		embeddings: embeddings,
		images:     images,
		profiles:   profiles,
	}
}

// Search 按自由文本查询检索商品
// genderHint 非空时规范化后作为软提示前缀拼进查询文本，只影响相似度，不做硬过滤
func (s *SearchService) Search(query string, k int, genderHint string) []models.DisplayProduct {
	if k < 1 {
		k = defaultSearchK
	}
	timer := NewTimer()

	searchQuery := applyGenderHint(query, genderHint)

	vec, err := s.embeddings.GenerateEmbedding(searchQuery)
	if err != nil {
		log.Printf("[SearchService] 查询 embedding 失败，返回空结果: %v", err)
		IncRecommendationCount("query", false)
		return []models.DisplayProduct{}
	}

	results := s.searchAndHydrate(vec, k, "query")
	RecordRecommendationDuration("query", "success", timer.ElapsedMs())
	IncRecommendationCount("query", true)
	return results
}

// RecommendForCustomer 基于客户历史活动画像的个性化推荐
// 画像不可用（无活动或构建出错）时直接返回空，不发起 embedding 调用
func (s *SearchService) RecommendForCustomer(customerID, genderHint string) []models.DisplayProduct {
	timer := NewTimer()

	profile := s.profiles.BuildProfile(customerID)
	if IsUnusableProfile(profile) {
		log.Printf("[SearchService] 客户 %s 画像不可用: %q", customerID, profile)
		IncRecommendationCount("history", false)
		return []models.DisplayProduct{}
	}

	searchProfile := applyGenderHint(profile, genderHint)

	vec, err := s.embeddings.GenerateEmbedding(searchProfile)
	if err != nil {
		log.Printf("[SearchService] 画像 embedding 失败，返回空结果: %v", err)
		IncRecommendationCount("history", false)
		return []models.DisplayProduct{}
	}

	results := s.searchAndHydrate(vec, historyRecommendK, "history")
	RecordRecommendationDuration("history", "success", timer.ElapsedMs())
	IncRecommendationCount("history", true)
	return results
}

// searchAndHydrate 最近邻检索并装配展示记录
// 无法解析成明细的序号（含 -1）直接丢弃，不补位
func (s *SearchService) searchAndHydrate(vec []float32, k int, source string) []models.DisplayProduct {
	timer := NewTimer()
	matches := s.catalog.SearchByVector(vec, k)
	RecordVectorSearchDuration(source, timer.ElapsedMs())
	IncVectorSearchCount(source, len(matches) > 0)

	return s.hydrateMatches(matches)
}

// hydrateMatches 按命中顺序装配展示记录，无法解析的序号丢弃
func (s *SearchService) hydrateMatches(matches []IndexMatch) []models.DisplayProduct {
	results := make([]models.DisplayProduct, 0, len(matches))
	for _, m := range matches {
		detail, ok := s.catalog.Hydrate(m.Ordinal)
		if !ok {
			continue
		}
		results = append(results, s.displayFromDetail(detail))
	}
	return results
}

// displayFromDetail 明细记录转展示结构，缺失字段在此处一次性兜底
func (s *SearchService) displayFromDetail(d *models.ProductDetail) models.DisplayProduct {
	return models.DisplayProduct{
		ID:          defaultStr(d.ProductID, "N/A"),
		Name:        defaultStr(d.ProductName, "N/A"),
		Price:       models.FormatPrice(d.Price),
		RawPrice:    d.Price,
		Brand:       defaultStr(d.Brand, "N/A"),
		Color:       defaultStr(d.Color, "N/A"),
		Gender:      defaultStr(d.GenderOrientation, "N/A"),
		ImageURL:    s.images.ProductImageURL(d.ProductID),
		Rating:      d.Rating,
		Reviews:     d.NumberOfReviews,
		Category:    defaultStr(d.Category, "N/A"),
		Description: defaultStr(d.Description, "No description available."),
		Material:    defaultStr(d.Material, "N/A"),
		Size:        d.Size,
	}
}

// applyGenderHint 将规范化后的性别词作为软提示拼到查询前
func applyGenderHint(query, genderHint string) string {
	normalized := NormalizeGender(strings.TrimSpace(genderHint))
	if normalized == "" {
		return query
	}
	return normalized + " " + query
}

func defaultStr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
