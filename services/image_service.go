package services

import (
	"fmt"

	"fashion-platform/internal/config"
)

// ImageService 商品图片 URL 构建
// 图片托管在外部 CDN，按商品ID和宽度拼出展示 URL，服务端不做图片处理
type ImageService struct {
	baseURL string
	width   int
}

// NewImageService 创建图片服务实例
func NewImageService(cfg config.ImageConfig) *ImageService {
	width := cfg.Width
	if width <= 0 {
		width = 400
	}
	return &ImageService{baseURL: cfg.CDNBaseURL, width: width}
}

// ProductImageURL 根据商品ID构建展示图 URL
func (s *ImageService) ProductImageURL(productID string) string {
	return fmt.Sprintf("%s/w_%d/%s", s.baseURL, s.width, productID)
}
