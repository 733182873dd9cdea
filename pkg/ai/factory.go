package ai

import (
	"fmt"

	"github.com/AlexanderModestov/thoughtreader/pkg/gemini"
)

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "openai", "gemini", "ollama" or "auto"

	// OpenAI config
	OpenAIAPIKey string
	OpenAIModel  string

	// Gemini config
	GeminiAPIKey string

	// Ollama config
	OllamaBaseURL string // e.g., "http://localhost:11434"
	OllamaModel   string // e.g., "llama3", "mistral"

	MaxTokens int
}

// NewLanguageModel creates a LanguageModel based on the config.
// This is the factory function - switch AI provider by changing config.Provider.
func NewLanguageModel(cfg Config) (LanguageModel, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for OpenAI provider")
		}
		return NewOpenAIModel(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.MaxTokens), nil

	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for Gemini provider")
		}
		return gemini.NewGeminiService(cfg.GeminiAPIKey), nil

	case ProviderOllama:
		return NewOllamaModel(cfg.OllamaBaseURL, cfg.OllamaModel), nil

	default:
		// Pick whichever hosted key is available, falling back to a local Ollama
		if cfg.OpenAIAPIKey != "" {
			return NewOpenAIModel(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.MaxTokens), nil
		}
		if cfg.GeminiAPIKey != "" {
			return gemini.NewGeminiService(cfg.GeminiAPIKey), nil
		}
		return NewOllamaModel(cfg.OllamaBaseURL, cfg.OllamaModel), nil
	}
}
