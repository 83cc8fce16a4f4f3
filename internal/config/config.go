package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

type Config struct {
	Port        string
	Env         string
	LogLevel    string
	LogFormat   string
	CorsOrigins []string

	Storage StorageConfig
	Gemini  GeminiConfig
}

type StorageConfig struct {
	Driver   string
	FilePath string
	DSN      string
}

// GeminiConfig is read once at startup. An empty APIKey is allowed here;
// the provider refuses to send requests until one is configured.
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8000"),
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", ""),
		CorsOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		Storage: StorageConfig{
			Driver:   strings.ToLower(getEnv("STORAGE_DRIVER", StorageFile)),
			FilePath: getEnv("DB_FILE", "tests.json"),
			DSN:      os.Getenv("DATABASE_DSN"),
		},
		Gemini: GeminiConfig{
			APIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
			BaseURL: strings.TrimRight(getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"), "/"),
			Model:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		},
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
		if IsLambda() {
			cfg.LogFormat = "json"
		}
	}

	switch cfg.Storage.Driver {
	case StorageFile:
	case StoragePostgres:
		if cfg.Storage.DSN == "" {
			return nil, fmt.Errorf("DATABASE_DSN is required when STORAGE_DRIVER=%s", StoragePostgres)
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}

	return cfg, nil
}

func IsLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
