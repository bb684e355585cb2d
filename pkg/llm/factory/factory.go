package factory

import (
	"fmt"

	"ai-interviewer-be/pkg/llm"
	"ai-interviewer-be/pkg/llm/ollama"
	"ai-interviewer-be/pkg/llm/openaicompat"
)

func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "openai", "nvidia":
		if baseURL == "" {
			return nil, fmt.Errorf("provider %q requires a chat-completions URL", providerType)
		}
		return openaicompat.NewProvider(baseURL, apiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
