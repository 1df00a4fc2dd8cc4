package services

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"time"

	"fashion-platform/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EmbeddingCacheService 查询向量缓存服务
// 相同查询文本（同一模型）只向 embedding 服务请求一次，之后走数据库缓存
type EmbeddingCacheService struct {
	db *gorm.DB
}

// NewEmbeddingCacheService 创建缓存服务实例
func NewEmbeddingCacheService(db *gorm.DB) *EmbeddingCacheService {
	return &EmbeddingCacheService{db: db}
}

// Get 查找缓存的向量，命中时累计命中次数
func (s *EmbeddingCacheService) Get(text, model string) ([]float32, bool) {
	var entry models.QueryEmbeddingCache
	hash := hashQueryText(text, model)

	err := s.db.Where("query_hash = ?", hash).First(&entry).Error
	if err != nil {
		return nil, false
	}

	var vec []float32
	if err := json.Unmarshal([]byte(entry.Embedding), &vec); err != nil || len(vec) == 0 {
		// 缓存内容损坏，删掉让下次重建
		s.db.Delete(&models.QueryEmbeddingCache{}, entry.ID)
		return nil, false
	}

	now := time.Now()
	s.db.Model(&models.QueryEmbeddingCache{}).Where("id = ?", entry.ID).
		Updates(map[string]interface{}{
			"hit_count":   gorm.Expr("hit_count + 1"),
			"last_hit_at": &now,
		})

	return vec, true
}

// Put 写入缓存，已存在时覆盖向量内容
// 空向量不入缓存
func (s *EmbeddingCacheService) Put(text, model string, vec []float32) {
	raw := VectorToString(vec)
	if raw == "" {
		return
	}

	entry := models.QueryEmbeddingCache{
		QueryText:      text,
		QueryHash:      hashQueryText(text, model),
		Embedding:      raw,
		EmbeddingModel: model,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "query_hash"}},
		DoUpdates: clause.AssignmentColumns([]string{"embedding", "embedding_model", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		log.Printf("[EmbeddingCache] 写入缓存失败: %v", err)
	}
}

// Stats 缓存统计
func (s *EmbeddingCacheService) Stats() (*models.EmbeddingCacheStats, error) {
	var stats models.EmbeddingCacheStats

	if err := s.db.Model(&models.QueryEmbeddingCache{}).Count(&stats.TotalCount).Error; err != nil {
		return nil, err
	}
	if stats.TotalCount == 0 {
		return &stats, nil
	}

	row := s.db.Model(&models.QueryEmbeddingCache{}).
		Select("COALESCE(SUM(hit_count),0), COALESCE(AVG(hit_count),0)").Row()
	if err := row.Scan(&stats.TotalHits, &stats.AvgHitCount); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Purge 清空缓存
func (s *EmbeddingCacheService) Purge() error {
	return s.db.Where("1 = 1").Delete(&models.QueryEmbeddingCache{}).Error
}

// hashQueryText 查询文本+模型名的 sha256，作为缓存键
func hashQueryText(text, model string) string {
	sum := sha256.Sum256([]byte(model + "\x00" + text))
	return hex.EncodeToString(sum[:])
}
