package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"fashion-platform/internal/models"

	"gorm.io/gorm"
)

// RankingService 榜单排序服务
// 热度榜和折扣榜，均支持按规范化性别过滤，输出与检索路径相同的展示结构
type RankingService struct {
	db     *gorm.DB
	images *ImageService
}

// NewRankingService 创建榜单服务实例
func NewRankingService(db *gorm.DB, images *ImageService) *RankingService {
	return &RankingService{db: db, images: images}
}

// TopTrending 热度榜
// score = 0.6*rating + 0.2*reviews + 0.2*trending_score，降序稳定排序取前 limit 条
func (s *RankingService) TopTrending(products []models.Product, genderHint string, limit int) []models.DisplayProduct {
	if limit < 1 {
		limit = 5
	}
	target := filterByGender(products, genderHint)

	sort.SliceStable(target, func(i, j int) bool {
		return TrendingScore(target[i]) > TrendingScore(target[j])
	})

	if len(target) > limit {
		target = target[:limit]
	}
	return s.displayAll(target)
}

// TopDiscounted 折扣榜
// 取折扣字段中第一个整数作为百分比，缺失或无法解析按 0 处理
func (s *RankingService) TopDiscounted(products []models.Product, genderHint string, limit int) []models.DisplayProduct {
	if limit < 1 {
		limit = 5
	}
	target := filterByGender(products, genderHint)

	sort.SliceStable(target, func(i, j int) bool {
		return DiscountPercent(target[i].Discount) > DiscountPercent(target[j].Discount)
	})

	if len(target) > limit {
		target = target[:limit]
	}
	return s.displayAll(target)
}

// TopTrendingFromCatalog 从数据库目录读取全部商品后计算热度榜
func (s *RankingService) TopTrendingFromCatalog(genderHint string, limit int) ([]models.DisplayProduct, error) {
	products, err := s.loadCatalog()
	if err != nil {
		return nil, err
	}
	return s.TopTrending(products, genderHint, limit), nil
}

// TopDiscountedFromCatalog 从数据库目录读取全部商品后计算折扣榜
func (s *RankingService) TopDiscountedFromCatalog(genderHint string, limit int) ([]models.DisplayProduct, error) {
	products, err := s.loadCatalog()
	if err != nil {
		return nil, err
	}
	return s.TopDiscounted(products, genderHint, limit), nil
}

func (s *RankingService) loadCatalog() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("product_id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// TrendingScore 热度得分
func TrendingScore(p models.Product) float64 {
	return p.Rating*0.6 + float64(p.NumberOfReviews)*0.2 + p.TrendingScore*0.2
}

var firstIntPattern = regexp.MustCompile(`\d+`)

// DiscountPercent 提取折扣字符串中第一个整数，如 "20% off" -> 20
func DiscountPercent(discount string) int {
	m := firstIntPattern.FindString(discount)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// filterByGender 按规范化性别过滤
// 给定提示时，性别字段缺失或无法识别的商品会被排除
func filterByGender(products []models.Product, genderHint string) []models.Product {
	hint := NormalizeGender(strings.TrimSpace(genderHint))
	if hint == "" {
		out := make([]models.Product, len(products))
		copy(out, products)
		return out
	}
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if NormalizeGender(p.GenderOrientation) == hint {
			out = append(out, p)
		}
	}
	return out
}

func (s *RankingService) displayAll(products []models.Product) []models.DisplayProduct {
	out := make([]models.DisplayProduct, 0, len(products))
	for _, p := range products {
		out = append(out, s.DisplayFromProduct(p))
	}
	return out
}

// DisplayFromProduct 目录记录转展示结构，与检索路径的字段形状一致
func (s *RankingService) DisplayFromProduct(p models.Product) models.DisplayProduct {
	return models.DisplayProduct{
		ID:          defaultStr(p.ProductID, "N/A"),
		Name:        defaultStr(p.ProductName, "N/A"),
		Price:       models.FormatPrice(p.Price),
		RawPrice:    p.Price,
		Brand:       defaultStr(p.Brand, "N/A"),
		Color:       defaultStr(p.Color, "N/A"),
		Gender:      defaultStr(p.GenderOrientation, "N/A"),
		ImageURL:    s.images.ProductImageURL(p.ProductID),
		Rating:      p.Rating,
		Reviews:     p.NumberOfReviews,
		Category:    defaultStr(p.Category, "N/A"),
		Description: defaultStr(p.Description, "No description available."),
		Material:    defaultStr(p.Material, "N/A"),
		Size:        strings.Join(p.Sizes, ","),
	}
}
