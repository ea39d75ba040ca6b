package llm

import (
	"encoding/json"
	"strings"
)

// ExtractJSON recovers a JSON object from model output. It tries the whole
// trimmed text first, then the span from the first '{' to the last '}'.
// Truncated JSON, stray braces inside strings and trailing commas are not repaired.
func ExtractJSON(text string) map[string]any {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	if obj, ok := parseObject(trimmed); ok {
		return obj
	}

	first := strings.Index(trimmed, "{")
	last := strings.LastIndex(trimmed, "}")
	if first == -1 || last == -1 || first >= last {
		return nil
	}
	obj, _ := parseObject(trimmed[first : last+1])
	return obj
}

func parseObject(s string) (map[string]any, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}
