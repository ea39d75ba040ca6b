package llm

import (
	"context"
	"fmt"
	"strings"

	"NamingStudio/internal/models"
)

// Recommender turns one naming request into one normalized result.
type Recommender interface {
	Name() string
	Recommend(ctx context.Context, req models.NamingRequest) (models.NamingResult, error)
}

// 생성 파라미터 (원래 서비스와 동일한 창의성 수준)
const temperature = 0.8

type Options struct {
	Provider string

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	GeminiAPIKey string
	GeminiModel  string
}

// New returns the recommender for opts.Provider ("openai" or "gemini").
func New(opts Options) (Recommender, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case "", "openai", "gpt":
		return NewOpenAI(opts.OpenAIAPIKey, opts.OpenAIModel).WithBaseURL(opts.OpenAIBaseURL), nil
	case "gemini":
		return NewGemini(opts.GeminiAPIKey, opts.GeminiModel), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q; use openai or gemini", opts.Provider)
	}
}
