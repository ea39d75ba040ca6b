package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// LLM 응답과 요청 본문은 형태를 신뢰할 수 없으므로 디코딩된 값(any)을 직접 다룬다.

// isFalsy reports whether v is nil, false, zero, NaN or the empty string.
func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case float64:
		return t == 0 || math.IsNaN(t)
	case json.Number:
		f, err := t.Float64()
		return err == nil && f == 0
	}
	return false
}

// stringify converts any decoded JSON value to text. Arrays join their
// elements with "," and objects collapse to "[object Object]".
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return formatNumber(t)
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return formatNumber(f)
		}
		return t.String()
	case map[string]any:
		return "[object Object]"
	case []any:
		parts := make([]string, len(t))
		for i, el := range t {
			if el != nil {
				parts[i] = stringify(el)
			}
		}
		return strings.Join(parts, ",")
	}
	return ""
}

// formatNumber prints plain decimals inside [1e-6, 1e21) and switches to
// exponent form outside it, without exponent padding: 1e+21, 1.5e-7.
func formatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	if abs := math.Abs(f); abs < 1e21 && abs >= 1e-6 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}

// CoerceString returns "" for falsy values and the text form otherwise.
func CoerceString(v any) string {
	if isFalsy(v) {
		return ""
	}
	return stringify(v)
}

func asObject(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asList(v any) []any {
	l, _ := v.([]any)
	return l
}

// CoerceRequest builds a NamingRequest from a decoded request body.
// Text fields are trimmed and NFC-normalized so decomposed Hangul from some
// keyboards renders and wraps as whole syllables.
func CoerceRequest(raw any) NamingRequest {
	body := asObject(raw)
	text := func(key string) string {
		return norm.NFC.String(strings.TrimSpace(CoerceString(body[key])))
	}
	return NamingRequest{
		KoreanName: text("koreanName"),
		BirthDate:  text("birthDate"),
		BirthTime:  text("birthTime"),
		Gender:     ParseGender(text("gender")),
		Style:      ParseStyle(text("style")),
	}
}
