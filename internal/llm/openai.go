package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"NamingStudio/internal/models"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultOpenAIModel   = "gpt-4o-mini"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat responseFormat `json:"response_format"`
	Messages       []chatMessage  `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// OpenAI calls the Chat Completions endpoint once per request.
type OpenAI struct {
	APIKey  string
	Model   string
	BaseURL string
	httpc   *http.Client
}

func NewOpenAI(key, model string) *OpenAI {
	model = strings.TrimSpace(model)
	if model == "" {
		model = defaultOpenAIModel
	}
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		IdleConnTimeout:       90 * time.Second,
	}
	return &OpenAI{
		APIKey:  strings.TrimSpace(key),
		Model:   model,
		BaseURL: defaultOpenAIBaseURL,
		// 응답 대기 타임아웃은 두지 않는다. 취소는 요청 context 로만 한다.
		httpc: &http.Client{Transport: tr},
	}
}

// WithBaseURL points the client at another Chat Completions compatible host.
func (o *OpenAI) WithBaseURL(u string) *OpenAI {
	if u = strings.TrimRight(strings.TrimSpace(u), "/"); u != "" {
		o.BaseURL = u
	}
	return o
}

// WithHTTPClient overrides the internal HTTP client.
func (o *OpenAI) WithHTTPClient(c *http.Client) *OpenAI {
	if c != nil {
		o.httpc = c
	}
	return o
}

func (o *OpenAI) Name() string { return "openai" }

func (o *OpenAI) Recommend(ctx context.Context, req models.NamingRequest) (models.NamingResult, error) {
	if o.APIKey == "" {
		return models.NamingResult{}, &ConfigurationError{Key: "OPENAI_API_KEY"}
	}

	prompt := BuildPrompt(req)
	reqBody, err := json.Marshal(chatRequest{
		Model:          o.Model,
		Temperature:    temperature,
		ResponseFormat: responseFormat{Type: "json_object"},
		Messages: []chatMessage{
			{Role: "system", Content: prompt.System},
			{Role: "user", Content: prompt.User},
		},
	})
	if err != nil {
		return models.NamingResult{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.BaseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return models.NamingResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.APIKey)

	start := time.Now()
	resp, err := o.httpc.Do(httpReq)
	if err != nil {
		return models.NamingResult{}, fmt.Errorf("openai request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.NamingResult{}, fmt.Errorf("openai read body: %w", err)
	}
	slog.Debug("OpenAI.Recommend(): upstream responded", "status", resp.StatusCode, "model", o.Model, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.NamingResult{}, upstreamError(resp.StatusCode, raw)
	}

	var chat chatResponse
	if err := json.Unmarshal(raw, &chat); err != nil {
		return models.NamingResult{}, fmt.Errorf("%w: %v", ErrUpstreamFormat, err)
	}
	if len(chat.Choices) == 0 || chat.Choices[0].Message.Content == nil {
		return models.NamingResult{}, fmt.Errorf("%w: missing choices[0].message.content", ErrUpstreamFormat)
	}

	parsed := ExtractJSON(*chat.Choices[0].Message.Content)
	if parsed == nil {
		return models.NamingResult{}, ErrUpstreamFormat
	}
	return models.Normalize(parsed), nil
}

// upstreamError prefers the provider's own error.message over a generic one.
func upstreamError(status int, body []byte) *UpstreamError {
	message := fmt.Sprintf("OpenAI API 호출 실패 (%d)", status)
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && strings.TrimSpace(eb.Error.Message) != "" {
		message = eb.Error.Message
	}
	return &UpstreamError{StatusCode: status, Message: message}
}
