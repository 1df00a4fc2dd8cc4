package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Admin    AdminConfig
	AI       AIConfig
	Catalog  CatalogConfig
	Image    ImageConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
}

type JWTConfig struct {
	Secret string
}

// AdminConfig 运维接口配置
// PasswordHash 为 bcrypt 哈希，为空时运维接口仅要求登录态
type AdminConfig struct {
	PasswordHash string
}

// AIConfig embedding / LLM 服务配置
// ServiceType 支持 openai（含兼容网关）和 bedrock
type AIConfig struct {
	ServiceType    string
	APIKey         string
	BaseURL        string
	EmbeddingModel string
	ChatModel      string
	AWSRegion      string
}

// CatalogConfig 商品向量索引文件位置
// 索引和明细文件由离线构建流程产出，服务端只读
type CatalogConfig struct {
	IndexPath   string
	DetailsPath string
}

type ImageConfig struct {
	CDNBaseURL string
	Width      int
}

func Load() *Config {
	// .env 文件可选，仅用于本地开发
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env file")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "fashion_platform"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres123"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret: GetJWTSecret(),
		},
		Admin: AdminConfig{
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		AI: AIConfig{
			ServiceType:    getEnv("AI_SERVICE_TYPE", "openai"),
			APIKey:         getEnv("AI_API_KEY", ""),
			BaseURL:        getEnv("AI_BASE_URL", ""),
			EmbeddingModel: getEnv("AI_EMBEDDING_MODEL", "text-embedding-3-large"),
			ChatModel:      getEnv("AI_CHAT_MODEL", "gpt-4o"),
			AWSRegion:      getEnv("AWS_REGION", "ap-southeast-1"),
		},
		Catalog: CatalogConfig{
			IndexPath:   getEnv("CATALOG_INDEX_PATH", "artifacts/product_index.bin"),
			DetailsPath: getEnv("CATALOG_DETAILS_PATH", "artifacts/product_details.json"),
		},
		Image: ImageConfig{
			CDNBaseURL: getEnv("IMAGE_CDN_BASE_URL", "https://res.cloudinary.com/fashion-platform/image/upload"),
			Width:      getEnvInt("IMAGE_WIDTH", 400),
		},
	}
}

// GetJWTSecret 获取JWT密钥
// 优先从环境变量JWT_SECRET读取，如果为空则使用默认值
func GetJWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "fashion-platform-jwt-secret" // 默认密钥，生产环境应该设置环境变量
	}
	return secret
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return defaultValue
}
