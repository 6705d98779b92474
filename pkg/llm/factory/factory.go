package factory

import (
	"fmt"

	"conevibes-be/pkg/llm"
	"conevibes-be/pkg/llm/ollama"
	"conevibes-be/pkg/llm/openai"
)

// NewLLMProvider builds the configured LLM backend.
// providerType: "ollama" | "openai"
func NewLLMProvider(providerType, model, ollamaBaseURL, openAIKey, openAIBaseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		return ollama.NewOllamaProvider(ollamaBaseURL, model), nil
	case "openai":
		if openAIKey == "" {
			return nil, fmt.Errorf("openai provider selected but no API key configured")
		}
		return openai.NewOpenAIProvider(openAIKey, openAIBaseURL, model), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", providerType)
	}
}
