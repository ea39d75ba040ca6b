package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Host string
	Port int

	LLMProvider   string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	GeminiAPIKey  string
	GeminiModel   string

	DistDir string

	LogLevel     string
	LogFile      string
	LogMaxSizeMB int

	RateLimitPerMinute int
	CORSAllowOrigins   []string
	SwaggerEnabled     bool

	CardFontPath     string
	CardFontFallback string
	CardFontCacheDir string
	CardThemeFile    string
}

// Addr is the listen address, host:port.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) (int, error) {
	v := getEnv(k, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %q는 정수가 아닙니다", k, v)
	}
	return n, nil
}

func getBool(k string, def bool) (bool, error) {
	v := getEnv(k, "")
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %q는 불리언 값이 아닙니다", k, v)
	}
	return b, nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Load reads .env (if any) and then the process environment.
// Values already present in the environment win over .env.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("config.Load(): .env 파일을 읽지 못했습니다", "error", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the environment only.
func FromEnv() (*Config, error) {
	host := "127.0.0.1"
	if os.Getenv("RENDER") != "" {
		host = "0.0.0.0"
	}

	cfg := &Config{
		Host: getEnv("HOST", host),

		LLMProvider:   strings.ToLower(getEnv("LLM_PROVIDER", "openai")),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		DistDir: getEnv("DIST_DIR", "dist"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),

		CORSAllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),

		CardFontPath:     getEnv("CARD_FONT_PATH", ""),
		CardFontFallback: getEnv("CARD_FONT_FALLBACK", "google:Noto Sans KR:500"),
		CardFontCacheDir: getEnv("CARD_FONT_CACHE_DIR", ".cache/fonts"),
		CardThemeFile:    getEnv("CARD_THEME_FILE", ""),
	}

	var err error
	if cfg.Port, err = getInt("PORT", 3001); err != nil {
		return nil, err
	}
	if cfg.LogMaxSizeMB, err = getInt("LOG_MAX_SIZE_MB", 10); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerMinute, err = getInt("RATE_LIMIT_PER_MINUTE", 30); err != nil {
		return nil, err
	}
	if cfg.SwaggerEnabled, err = getBool("SWAGGER_ENABLED", true); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges. Missing API keys are not an error here;
// the recommend endpoint reports them per request.
func (c *Config) Validate() error {
	switch c.LLMProvider {
	case "openai", "gpt", "gemini":
	default:
		return fmt.Errorf("LLM_PROVIDER: 지원하지 않는 값 %q (openai, gemini)", c.LLMProvider)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT: 범위를 벗어났습니다 (%d)", c.Port)
	}
	if c.LogMaxSizeMB < 1 {
		return fmt.Errorf("LOG_MAX_SIZE_MB: 1 이상이어야 합니다 (%d)", c.LogMaxSizeMB)
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE: 0 이상이어야 합니다 (%d)", c.RateLimitPerMinute)
	}
	if len(c.CORSAllowOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOW_ORIGINS: 비어 있습니다")
	}
	return nil
}
