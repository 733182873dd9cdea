package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Telegram
	TelegramBotToken string
	PollTimeout      int // long-poll timeout in seconds

	// OpenAI (Whisper + chat)
	OpenAIAPIKey    string
	OpenAIModel     string
	WhisperModel    string
	WhisperLanguage string

	// AI provider selection
	AIProvider    string // "openai", "gemini", "ollama" or "auto"
	GeminiAPIKey  string
	OllamaBaseURL string
	OllamaModel   string
	MaxTokens     int

	// Database
	DatabaseDriver string // "postgres" or "sqlite"
	DatabaseDSN    string

	// Response formatting
	CompactAnswers bool

	// REST API
	APIPort  string
	APIToken string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		PollTimeout:      getEnvInt("TELEGRAM_POLL_TIMEOUT", 25),
		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		WhisperModel:     getEnv("WHISPER_MODEL", "whisper-1"),
		WhisperLanguage:  getEnv("WHISPER_LANGUAGE", ""),
		AIProvider:       getEnv("AI_PROVIDER", "auto"),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		OllamaBaseURL:    getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:      getEnv("OLLAMA_MODEL", "llama3"),
		MaxTokens:        getEnvInt("MAX_TOKENS", 2000),
		DatabaseDriver:   getEnv("DATABASE_DRIVER", "sqlite"),
		DatabaseDSN:      getEnv("DATABASE_DSN", "data/bot.db"),
		CompactAnswers:   getEnvBool("COMPACT_ANSWERS", false),
		APIPort:          getEnv("API_PORT", "8080"),
		APIToken:         getEnv("API_TOKEN", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
