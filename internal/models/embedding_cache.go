package models

import (
	"time"
)

// QueryEmbeddingCache 查询文本向量缓存
// Embedding 以 JSON 数组文本存储，避免依赖数据库端向量类型
type QueryEmbeddingCache struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	QueryText      string     `gorm:"type:text;not null" json:"query_text"`
	QueryHash      string     `gorm:"size:64;uniqueIndex;not null" json:"query_hash"`
	Embedding      string     `gorm:"type:text" json:"-"`
	EmbeddingModel string     `gorm:"size:100;not null" json:"embedding_model"`
	HitCount       int        `gorm:"default:0" json:"hit_count"`
	LastHitAt      *time.Time `json:"last_hit_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TableName 指定表名
func (QueryEmbeddingCache) TableName() string {
	return "query_embedding_cache"
}

// EmbeddingCacheStats 缓存统计信息
type EmbeddingCacheStats struct {
	TotalCount  int64   `json:"total_count"`
	TotalHits   int64   `json:"total_hits"`
	AvgHitCount float64 `json:"avg_hit_count"`
}
