package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderGigaChat  = "gigachat"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	AI        AIConfig
	Anthropic AnthropicConfig
	GigaChat  GigaChatConfig
	Logger    LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig points at the database holding the widget preference
// table. URL wins over the individual fields when set.
type DatabaseConfig struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// AIConfig selects the text-generation provider and the per-mode model
// parameters.
type AIConfig struct {
	Provider         string
	ChatModel        string
	ReceiptModel     string
	ChatMaxTokens    int
	ReceiptMaxTokens int
	// Timeout of zero means the provider call is bounded only by the
	// request context.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey  string
	BaseURL string
	Version string
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	InsecureSkipVerify bool
}

var defaultModels = map[string][2]string{
	ProviderAnthropic: {"claude-sonnet-4-20250514", "claude-3-5-haiku-20241022"},
	ProviderGigaChat:  {"GigaChat", "GigaChat"},
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work the same way
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	aiTimeout, _ := strconv.Atoi(getEnv("AI_TIMEOUT", "0"))

	chatMaxTokens, err := strconv.Atoi(getEnv("AI_CHAT_MAX_TOKENS", "1024"))
	if err != nil {
		return nil, fmt.Errorf("invalid AI_CHAT_MAX_TOKENS: %w", err)
	}
	receiptMaxTokens, err := strconv.Atoi(getEnv("AI_RECEIPT_MAX_TOKENS", "256"))
	if err != nil {
		return nil, fmt.Errorf("invalid AI_RECEIPT_MAX_TOKENS: %w", err)
	}

	provider := getEnv("AI_PROVIDER", ProviderAnthropic)
	models := defaultModels[provider]

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			URL:      getEnv("DATABASE_URL", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "finanzas"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		AI: AIConfig{
			Provider:         provider,
			ChatModel:        getEnv("AI_CHAT_MODEL", models[0]),
			ReceiptModel:     getEnv("AI_RECEIPT_MODEL", models[1]),
			ChatMaxTokens:    chatMaxTokens,
			ReceiptMaxTokens: receiptMaxTokens,
			Timeout:          time.Duration(aiTimeout) * time.Second,
		},
		Anthropic: AnthropicConfig{
			APIKey:  getEnv("ANTHROPIC_API_KEY", ""),
			BaseURL: getEnv("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
			Version: getEnv("ANTHROPIC_VERSION", "2023-06-01"),
		},
		GigaChat: GigaChatConfig{
			APIKey:             getEnv("GIGACHAT_API_KEY", ""),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			InsecureSkipVerify: getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "false") == "true",
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports configuration that would make every request fail.
// A missing API key is not an error here: the provider client is built
// lazily and reports it on first use.
func (c *Config) Validate() error {
	if _, ok := defaultModels[c.AI.Provider]; !ok {
		return fmt.Errorf("unknown AI_PROVIDER %q (supported: %s, %s)", c.AI.Provider, ProviderAnthropic, ProviderGigaChat)
	}
	if c.AI.ChatMaxTokens <= 0 {
		return fmt.Errorf("AI_CHAT_MAX_TOKENS must be positive, got %d", c.AI.ChatMaxTokens)
	}
	if c.AI.ReceiptMaxTokens <= 0 {
		return fmt.Errorf("AI_RECEIPT_MAX_TOKENS must be positive, got %d", c.AI.ReceiptMaxTokens)
	}
	if c.AI.Timeout < 0 {
		return fmt.Errorf("AI_TIMEOUT must not be negative")
	}
	return nil
}

// DSN returns the connection string for pgx.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
