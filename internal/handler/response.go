package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"NamingStudio/internal/card"
	"NamingStudio/internal/llm"
	"NamingStudio/internal/middleware"

	"github.com/gin-gonic/gin"
)

const (
	msgEmptyBody      = "요청 본문이 비어 있습니다."
	msgInvalidJSON    = "JSON 본문 형식이 올바르지 않습니다."
	msgMissingFields  = "koreanName, birthDate, birthTime을 모두 입력해 주세요."
	msgInternal       = "서버 처리 중 오류가 발생했습니다."
	msgBodyTooLarge   = "요청 본문이 너무 큽니다."
	msgCardTooLarge   = "카드에 담기에는 내용이 너무 깁니다."
	msgNotFound       = "Not Found"
	maxRequestBodyLen = 1 << 20
)

// MessageResponse is the body of every API error.
type MessageResponse struct {
	Message string `json:"message" example:"koreanName, birthDate, birthTime을 모두 입력해 주세요."`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// errBadRequest carries a message that is safe to show the client verbatim.
type errBadRequest string

func (e errBadRequest) Error() string { return string(e) }

// readJSONBody decodes the request body into an untyped value.
func readJSONBody(c *gin.Context) (any, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBodyLen))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errBadRequest(msgBodyTooLarge)
		}
		return nil, err
	}

	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil, errBadRequest(msgEmptyBody)
	}
	var body any
	if err := json.Unmarshal([]byte(text), &body); err != nil {
		return nil, errBadRequest(msgInvalidJSON)
	}
	return body, nil
}

func providerLabel(name string) string {
	switch name {
	case "openai":
		return "OpenAI"
	case "gemini":
		return "Gemini"
	default:
		return "AI"
	}
}

// fail maps err to a status and a {"message"} body. Unknown errors are
// logged and answered with a fixed message.
func (h *Handler) fail(c *gin.Context, err error) {
	var (
		badReq   errBadRequest
		cfgErr   *llm.ConfigurationError
		upErr    *llm.UpstreamError
		status   int
		message  string
		provider = "AI"
	)
	if h.recommender != nil {
		provider = providerLabel(h.recommender.Name())
	}

	switch {
	case errors.As(err, &badReq):
		status, message = http.StatusBadRequest, badReq.Error()
	case errors.As(err, &cfgErr):
		status, message = http.StatusInternalServerError, cfgErr.Error()
	case errors.As(err, &upErr):
		status, message = upErr.StatusCode, upErr.Message
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
	case errors.Is(err, llm.ErrUpstreamFormat):
		status, message = http.StatusBadGateway, provider+" 응답을 JSON으로 해석하지 못했습니다."
	case errors.Is(err, card.ErrCardTooLarge):
		status, message = http.StatusBadRequest, msgCardTooLarge
	case errors.Is(err, card.ErrRenderUnavailable):
		status, message = http.StatusServiceUnavailable, card.ErrRenderUnavailable.Error()
	default:
		status, message = http.StatusInternalServerError, msgInternal
	}

	attrs := []any{"status", status, "error", err, "request_id", c.GetString(middleware.RequestIDKey)}
	if status >= 500 {
		h.log.Error("Handler.fail(): "+c.FullPath(), attrs...)
	} else {
		h.log.Debug("Handler.fail(): "+c.FullPath(), attrs...)
	}
	c.AbortWithStatusJSON(status, MessageResponse{Message: message})
}
