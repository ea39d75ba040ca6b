package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"NamingStudio/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-2.5-flash"

// Gemini calls GenerateContent once per request through the genai SDK.
type Gemini struct {
	APIKey string
	Model  string
}

func NewGemini(key, model string) *Gemini {
	model = strings.TrimSpace(model)
	if model == "" {
		model = defaultGeminiModel
	}
	return &Gemini{
		APIKey: strings.TrimSpace(key),
		Model:  model,
	}
}

func (g *Gemini) Name() string { return "gemini" }

func (g *Gemini) Recommend(ctx context.Context, req models.NamingRequest) (models.NamingResult, error) {
	if g.APIKey == "" {
		return models.NamingResult{}, &ConfigurationError{Key: "GEMINI_API_KEY"}
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(g.APIKey))
	if err != nil {
		return models.NamingResult{}, fmt.Errorf("gemini client: %w", err)
	}
	defer cl.Close()

	prompt := BuildPrompt(req)
	m := cl.GenerativeModel(g.Model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(temperature),
		ResponseMIMEType: "application/json",
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(prompt.System)},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt.User))
	if err != nil {
		return models.NamingResult{}, geminiError(err)
	}

	txt := firstText(resp)
	if txt == "" {
		return models.NamingResult{}, fmt.Errorf("%w: empty candidate", ErrUpstreamFormat)
	}
	parsed := ExtractJSON(txt)
	if parsed == nil {
		return models.NamingResult{}, ErrUpstreamFormat
	}
	return models.Normalize(parsed), nil
}

func geminiError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code != 0 {
		msg := strings.TrimSpace(gerr.Message)
		if msg == "" {
			msg = fmt.Sprintf("Gemini API 호출 실패 (%d)", gerr.Code)
		}
		return &UpstreamError{StatusCode: gerr.Code, Message: msg}
	}
	return &UpstreamError{StatusCode: http.StatusBadGateway, Message: "Gemini API 호출 실패: " + err.Error()}
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
