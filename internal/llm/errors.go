package llm

import (
	"errors"
	"fmt"
)

// ErrUpstreamFormat means the provider answered but no JSON object could be recovered.
var ErrUpstreamFormat = errors.New("upstream response is not a JSON object")

// ConfigurationError reports a missing provider credential.
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s가 설정되지 않았습니다.", e.Key)
}

// UpstreamError carries the provider's non-success status and its best-effort message.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return e.Message
}
