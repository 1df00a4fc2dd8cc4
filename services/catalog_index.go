package services

import (
	"encoding/gob"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"sync"

	"fashion-platform/internal/config"
	"fashion-platform/internal/models"
)

// ErrCatalogUnavailable 索引或明细文件加载失败后的固定错误
var ErrCatalogUnavailable = fmt.Errorf("product catalog index unavailable")

// IndexMatch 一次最近邻查询的单条命中
// Ordinal 是向量在索引中的序号，与明细数组位置一一对应
type IndexMatch struct {
	Ordinal  int
	Distance float32
}

// flatIndexFile 离线构建流程产出的扁平索引文件结构（gob 编码）
type flatIndexFile struct {
	Dim     int
	Vectors [][]float32
}

// CatalogIndex 商品目录向量索引
// 持有预构建的扁平向量索引和并行的商品明细数组，进程生命周期内只读。
// 首次使用时加载一次；加载失败后缓存不可用状态，后续查询确定性返回空，
// 不再反复尝试读盘
type CatalogIndex struct {
	indexPath   string
	detailsPath string

	mu          sync.RWMutex
	loaded      bool
	unavailable bool
	dim         int
	vectors     [][]float32
	details     []models.ProductDetail
}

// NewCatalogIndex 创建目录索引（延迟加载）
func NewCatalogIndex(cfg config.CatalogConfig) *CatalogIndex {
	return &CatalogIndex{
		indexPath:   cfg.IndexPath,
		detailsPath: cfg.DetailsPath,
	}
}

// NewCatalogIndexFromData 从内存数据直接构建索引（测试和离线工具使用）
func NewCatalogIndexFromData(dim int, vectors [][]float32, details []models.ProductDetail) *CatalogIndex {
	return &CatalogIndex{
		loaded:  true,
		dim:     dim,
		vectors: vectors,
		details: details,
	}
}

// ensureLoaded 加载索引和明细文件（只执行一次）
func (c *CatalogIndex) ensureLoaded() bool {
	c.mu.RLock()
	if c.loaded || c.unavailable {
		ok := c.loaded
		c.mu.RUnlock()
		return ok
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded || c.unavailable {
		return c.loaded
	}

	if err := c.loadLocked(); err != nil {
		log.Printf("[CatalogIndex] 加载目录索引失败，检索降级为空结果: %v", err)
		c.unavailable = true
		SetCatalogAvailable(false)
		return false
	}

	c.loaded = true
	SetCatalogAvailable(true)
	log.Printf("[CatalogIndex] 目录索引加载完成: %d 个向量, 维度 %d", len(c.vectors), c.dim)
	return true
}

func (c *CatalogIndex) loadLocked() error {
	f, err := os.Open(c.indexPath)
	if err != nil {
		return fmt.Errorf("打开索引文件失败: %w", err)
	}
	defer f.Close()

	var idx flatIndexFile
	if err := gob.NewDecoder(f).Decode(&idx); err != nil {
		return fmt.Errorf("解码索引文件失败: %w", err)
	}
	if idx.Dim <= 0 || len(idx.Vectors) == 0 {
		return fmt.Errorf("索引文件内容为空")
	}

	raw, err := os.ReadFile(c.detailsPath)
	if err != nil {
		return fmt.Errorf("读取明细文件失败: %w", err)
	}
	var details []models.ProductDetail
	if err := json.Unmarshal(raw, &details); err != nil {
		return fmt.Errorf("解析明细文件失败: %w", err)
	}
	if len(details) != len(idx.Vectors) {
		return fmt.Errorf("索引与明细数量不匹配: %d vs %d", len(idx.Vectors), len(details))
	}

	c.dim = idx.Dim
	c.vectors = idx.Vectors
	c.details = details
	return nil
}

// Available 索引是否可用
func (c *CatalogIndex) Available() bool {
	return c.ensureLoaded()
}

// LoadError 索引加载状态
// 加载失败（含缓存的不可用状态）返回 ErrCatalogUnavailable，可用返回 nil
func (c *CatalogIndex) LoadError() error {
	if c.ensureLoaded() {
		return nil
	}
	return ErrCatalogUnavailable
}

// Size 索引中的向量数量
func (c *CatalogIndex) Size() int {
	if !c.ensureLoaded() {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.vectors)
}

// SearchByVector 精确最近邻检索，按 L2 距离升序返回至多 k 条命中
// 距离相同时保持索引序号顺序（稳定排序）。索引不可用返回空
func (c *CatalogIndex) SearchByVector(vec []float32, k int) []IndexMatch {
	if k < 1 || !c.ensureLoaded() {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(vec) != c.dim {
		log.Printf("[CatalogIndex] 查询向量维度不匹配: %d, 期望 %d", len(vec), c.dim)
		return nil
	}

	matches := make([]IndexMatch, 0, len(c.vectors))
	for i, v := range c.vectors {
		matches = append(matches, IndexMatch{Ordinal: i, Distance: l2Squared(vec, v)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	return matches
}

// Hydrate 将序号解析为商品明细记录
// 序号越界（包括表示无命中的 -1）返回 false
func (c *CatalogIndex) Hydrate(ordinal int) (*models.ProductDetail, bool) {
	if !c.ensureLoaded() {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if ordinal < 0 || ordinal >= len(c.details) {
		return nil, false
	}
	d := c.details[ordinal]
	return &d, true
}

func l2Squared(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
