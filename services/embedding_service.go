package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	appconfig "fashion-platform/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/sashabaranov/go-openai"
)

// EmbeddingService embedding 服务
// 负责生成查询文本的语义向量，支持 OpenAI（及兼容网关）和 Bedrock
type EmbeddingService struct {
	cfg   appconfig.AIConfig
	cache *EmbeddingCacheService
}

// NewEmbeddingService 创建 embedding 服务实例
// cache 可为 nil，表示不启用查询向量缓存
func NewEmbeddingService(cfg appconfig.AIConfig, cache *EmbeddingCacheService) *EmbeddingService {
	return &EmbeddingService{cfg: cfg, cache: cache}
}

// GenerateEmbedding 生成文本的 embedding 向量
// 命中缓存时不触发外部调用
func (s *EmbeddingService) GenerateEmbedding(text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("embedding 文本不能为空")
	}

	if s.cache != nil {
		if vec, ok := s.cache.Get(text, s.cfg.EmbeddingModel); ok {
			IncEmbeddingCacheCount("hit")
			return vec, nil
		}
		IncEmbeddingCacheCount("miss")
	}

	timer := NewTimer()
	var vec []float32
	var err error

	switch s.cfg.ServiceType {
	case "openai":
		vec, err = s.callOpenAIEmbedding([]string{text})
	case "bedrock":
		vec, err = s.callBedrockEmbedding(text)
	default:
		err = fmt.Errorf("不支持的服务类型: %s", s.cfg.ServiceType)
	}

	RecordEmbeddingCallDuration(s.cfg.ServiceType, "embed", timer.ElapsedMs())
	if err != nil {
		IncEmbeddingCallCount(s.cfg.ServiceType, "error")
		return nil, err
	}
	IncEmbeddingCallCount(s.cfg.ServiceType, "success")

	if s.cache != nil {
		s.cache.Put(text, s.cfg.EmbeddingModel, vec)
	}
	return vec, nil
}

// GenerateEmbeddingsBatch 批量生成 embedding
// OpenAI 原生支持批量；Bedrock 逐个调用
func (s *EmbeddingService) GenerateEmbeddingsBatch(texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("文本列表不能为空")
	}

	if s.cfg.ServiceType == "openai" {
		return s.callOpenAIEmbeddingBatch(texts)
	}

	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := s.GenerateEmbedding(text)
		if err != nil {
			return nil, fmt.Errorf("生成第 %d 个 embedding 失败: %w", i+1, err)
		}
		embeddings[i] = vec
	}
	return embeddings, nil
}

// callOpenAIEmbedding 调用 OpenAI embedding API，返回第一条结果
func (s *EmbeddingService) callOpenAIEmbedding(texts []string) ([]float32, error) {
	client := s.createOpenAIClient()

	resp, err := client.CreateEmbeddings(context.Background(), openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(s.cfg.EmbeddingModel),
		Input: texts,
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI embedding 调用失败: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("OpenAI embedding 返回空结果")
	}
	return resp.Data[0].Embedding, nil
}

// callOpenAIEmbeddingBatch 批量调用 OpenAI embedding API
func (s *EmbeddingService) callOpenAIEmbeddingBatch(texts []string) ([][]float32, error) {
	client := s.createOpenAIClient()

	resp, err := client.CreateEmbeddings(context.Background(), openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(s.cfg.EmbeddingModel),
		Input: texts,
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI embedding 批量调用失败: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("OpenAI embedding 返回数量不匹配: 期望 %d, 实际 %d", len(texts), len(resp.Data))
	}

	results := make([][]float32, len(texts))
	for i, data := range resp.Data {
		results[i] = data.Embedding
	}
	return results, nil
}

// createOpenAIClient 创建 OpenAI 客户端
func (s *EmbeddingService) createOpenAIClient() *openai.Client {
	clientConfig := openai.DefaultConfig(s.cfg.APIKey)
	if s.cfg.BaseURL != "" {
		clientConfig.BaseURL = s.cfg.BaseURL
	}
	return openai.NewClientWithConfig(clientConfig)
}

// callBedrockEmbedding 调用 Bedrock Embedding API
// 支持 Amazon Titan Embedding 和 Cohere Embedding 模型
func (s *EmbeddingService) callBedrockEmbedding(text string) ([]float32, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(s.cfg.AWSRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("无法加载 AWS 配置: %w", err)
	}

	client := bedrockruntime.NewFromConfig(cfg)
	modelID := s.cfg.EmbeddingModel

	var requestBody []byte
	if strings.Contains(modelID, "titan-embed") {
		// Titan 请求格式: {"inputText": "text"}
		requestBody, err = json.Marshal(map[string]interface{}{
			"inputText": text,
		})
	} else if strings.Contains(modelID, "cohere.embed") {
		// Cohere 请求格式，检索查询使用 search_query
		requestBody, err = json.Marshal(map[string]interface{}{
			"texts":           []string{text},
			"input_type":      "search_query",
			"embedding_types": []string{"float"},
		})
	} else {
		return nil, fmt.Errorf("不支持的 Bedrock embedding 模型: %s", modelID)
	}
	if err != nil {
		return nil, fmt.Errorf("无法序列化请求: %w", err)
	}

	log.Printf("[EmbeddingService] 调用 Bedrock embedding: model=%s, region=%s", modelID, s.cfg.AWSRegion)

	output, err := client.InvokeModel(context.TODO(), &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(modelID),
		ContentType: aws.String("application/json"),
		Body:        requestBody,
	})
	if err != nil {
		return nil, fmt.Errorf("Bedrock embedding API 调用失败: %w", err)
	}

	if strings.Contains(modelID, "titan-embed") {
		// Titan 响应格式: {"embedding": [0.1, 0.2, ...]}
		var titanResponse struct {
			Embedding []float32 `json:"embedding"`
		}
		if err := json.Unmarshal(output.Body, &titanResponse); err != nil {
			return nil, fmt.Errorf("无法解析 Titan embedding 响应: %w", err)
		}
		return titanResponse.Embedding, nil
	}

	// Cohere 响应格式 (v4): {"embeddings": {"float": [[...]]}}
	var cohereResponse struct {
		Embeddings struct {
			Float [][]float32 `json:"float"`
		} `json:"embeddings"`
	}
	if err := json.Unmarshal(output.Body, &cohereResponse); err != nil {
		return nil, fmt.Errorf("无法解析 Cohere embedding 响应: %w", err)
	}
	if len(cohereResponse.Embeddings.Float) == 0 {
		return nil, fmt.Errorf("Cohere embedding 返回空结果")
	}
	return cohereResponse.Embeddings.Float[0], nil
}

// VectorToString 将向量转换为 JSON 数组文本（缓存存储格式）
func VectorToString(v []float32) string {
	if len(v) == 0 {
		return ""
	}
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = fmt.Sprintf("%g", f)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
