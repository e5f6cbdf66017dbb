package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Chatbot  ChatbotConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JWTSecret string
	// TokenTransport is "header" (bearer Authorization) or "cookie"
	// (HTTP-only secure cookie).
	TokenTransport string
}

type ChatbotConfig struct {
	Provider string // "gemini" or "openai"
	Model    string
	APIKey   string
	Timeout  time.Duration
}

// Load reads configuration from the environment. The signing secret, the
// database connection string, the CORS origin list, and the provider API
// key have no defaults: startup fails without them.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	cfg := &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: os.Getenv("CORS_ALLOWED_ORIGINS"),
		},
		Database: DatabaseConfig{
			Connection: os.Getenv("DB_CONNECTION_STRING"),
		},
		Auth: AuthConfig{
			JWTSecret:      os.Getenv("JWT_SECRET"),
			TokenTransport: getEnv("AUTH_TOKEN_TRANSPORT", "header"),
		},
		Chatbot: ChatbotConfig{
			Provider: getEnv("CHATBOT_PROVIDER", "gemini"),
			Model:    getEnv("CHATBOT_MODEL", ""),
			Timeout:  time.Duration(getEnvAsInt("CHATBOT_TIMEOUT_SECONDS", 30)) * time.Second,
		},
	}

	switch cfg.Chatbot.Provider {
	case "gemini":
		cfg.Chatbot.APIKey = os.Getenv("GOOGLE_GEMINI_API_KEY")
		if cfg.Chatbot.APIKey == "" {
			return nil, fmt.Errorf("GOOGLE_GEMINI_API_KEY is required")
		}
	case "openai":
		cfg.Chatbot.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Chatbot.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required")
		}
	default:
		return nil, fmt.Errorf("unsupported CHATBOT_PROVIDER: %s", cfg.Chatbot.Provider)
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.Database.Connection == "" {
		return nil, fmt.Errorf("DB_CONNECTION_STRING is required")
	}
	if cfg.App.CorsAllowedOrigins == "" {
		return nil, fmt.Errorf("CORS_ALLOWED_ORIGINS is required")
	}
	if t := cfg.Auth.TokenTransport; t != "header" && t != "cookie" {
		return nil, fmt.Errorf("unsupported AUTH_TOKEN_TRANSPORT: %s", t)
	}
	if cfg.Chatbot.Timeout <= 0 {
		return nil, fmt.Errorf("CHATBOT_TIMEOUT_SECONDS must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
