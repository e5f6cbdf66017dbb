package chatbot

import (
	"fmt"
	"time"
)

func NewProvider(providerType, model, apiKey string, timeout time.Duration) (Provider, error) {
	switch providerType {
	case "gemini":
		if model == "" {
			model = "gemini-1.5-flash" // Default
		}
		return NewGeminiProvider(apiKey, model, timeout), nil
	case "openai":
		if model == "" {
			model = "gpt-3.5-turbo" // Default
		}
		return NewOpenAIProvider(apiKey, model, timeout), nil
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s", providerType)
	}
}
