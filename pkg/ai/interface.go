package ai

import "context"

// LanguageModel is the interface for the structuring model call: prompt in,
// free-form text out. There is no structured-output guarantee; callers parse
// and validate the raw response themselves.
// Implement this interface to add new AI providers (OpenAI, Gemini, Ollama, etc.)
type LanguageModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
