package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	appconfig "fashion-platform/internal/config"
	"fashion-platform/internal/models"

	"github.com/sashabaranov/go-openai"
	"gorm.io/gorm"
)

// ErrNoTipsForShape 分类出的体型没有对应穿搭规则
var ErrNoTipsForShape = errors.New("no styling tips available for this body shape")

// StyleAdvisorService 穿搭建议服务
// 按体型查静态穿搭规则，从规则推导检索查询；建议文案由外部 LLM 生成
type StyleAdvisorService struct {
	db  *gorm.DB
	cfg appconfig.AIConfig
}

// NewStyleAdvisorService 创建穿搭建议服务实例
func NewStyleAdvisorService(db *gorm.DB, cfg appconfig.AIConfig) *StyleAdvisorService {
	return &StyleAdvisorService{db: db, cfg: cfg}
}

// LookupRule 查找指定性别+体型的穿搭规则
// 无匹配规则返回 ErrNoTipsForShape
func (s *StyleAdvisorService) LookupRule(gender, shape string) (*models.StyleRule, error) {
	var rule models.StyleRule
	err := s.db.Where("gender = ? AND name = ?", NormalizeGender(gender), shape).First(&rule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoTipsForShape
		}
		return nil, err
	}
	return &rule, nil
}

// DeriveQuery 从穿搭规则推导商品检索查询
// 把除体型名之外的全部建议字段值按字段名排序后用空格拼接
func DeriveQuery(rule *models.StyleRule) (string, error) {
	guidance, err := rule.GuidanceMap()
	if err != nil {
		return "", fmt.Errorf("解析穿搭规则失败: %w", err)
	}
	if len(guidance) == 0 {
		return "", ErrNoTipsForShape
	}

	keys := make([]string, 0, len(guidance))
	for k := range guidance {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make([]string, 0, len(keys))
	for _, k := range keys {
		if v := strings.TrimSpace(guidance[k]); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return "", ErrNoTipsForShape
	}
	return strings.Join(values, " "), nil
}

// RuleContext 规则的可读文本形式，作为 LLM 提示词上下文
func RuleContext(rule *models.StyleRule) string {
	guidance, err := rule.GuidanceMap()
	if err != nil {
		return ""
	}

	keys := make([]string, 0, len(guidance))
	for k := range guidance {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var lines []string
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("- %s: %s", titleizeKey(k), guidance[k]))
	}
	return strings.Join(lines, "\n")
}

// GenerateAdvice 调用 LLM 生成穿搭建议文案（外部边界）
// 失败时返回错误，调用方降级为"暂无建议"展示，不中断请求
func (s *StyleAdvisorService) GenerateAdvice(shape string, rule *models.StyleRule) (string, error) {
	client := openai.NewClientWithConfig(s.openAIConfig())

	prompt := fmt.Sprintf(`Act as a friendly and encouraging personal fashion stylist.
A user has been identified with a '%s' body shape.

Based *only* on the following styling rules, provide a personalized and encouraging style recommendation.
Choose one of the products in the styling tips and emphasize with your knowledge why it works well for them.
Separate the recommended styles and the styles to avoid, one point per recommendation.

Styling rules:
%s

Make sure to follow this format:
**Styling Rules for %s:**
**1. for tops:** describe the necklines, shoulders, and fit
**2. for pants:** describe the cutting (e.g., mid/low/high rise)
**3. etc
**Avoids:**
- for this type of body, please avoid (e.g., flare pants) because ..`,
		shape, RuleContext(rule), shape)

	resp, err := client.CreateChatCompletion(context.Background(), openai.ChatCompletionRequest{
		Model: s.cfg.ChatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a helpful fashion assistant."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   400,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("生成穿搭建议失败: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("LLM 返回空结果")
	}
	return resp.Choices[0].Message.Content, nil
}

func (s *StyleAdvisorService) openAIConfig() openai.ClientConfig {
	clientConfig := openai.DefaultConfig(s.cfg.APIKey)
	if s.cfg.BaseURL != "" {
		clientConfig.BaseURL = s.cfg.BaseURL
	}
	return clientConfig
}

// titleizeKey 字段名转可读标题，如 "tops_to_wear" -> "Tops To Wear"
func titleizeKey(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
