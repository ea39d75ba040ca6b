package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"NamingStudio/internal/card"
	"NamingStudio/internal/config"
	"NamingStudio/internal/handler"
	"NamingStudio/internal/llm"
	"NamingStudio/internal/logger"

	"github.com/gin-gonic/gin"
)

// @title        AI Naming Studio API
// @version      1.0
// @description  한글 이름과 생년월일시로 영어 이름을 추천하고 결과 카드를 만드는 API
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("main(): 설정 로드 실패", "error", err)
		os.Exit(1)
	}

	log, closer := logger.New(logger.Options{
		Level:     cfg.LogLevel,
		File:      cfg.LogFile,
		MaxSizeMB: cfg.LogMaxSizeMB,
	})
	defer closer.Close()
	slog.SetDefault(log)

	recommender, err := llm.New(llm.Options{
		Provider:      cfg.LLMProvider,
		OpenAIAPIKey:  cfg.OpenAIAPIKey,
		OpenAIModel:   cfg.OpenAIModel,
		OpenAIBaseURL: cfg.OpenAIBaseURL,
		GeminiAPIKey:  cfg.GeminiAPIKey,
		GeminiModel:   cfg.GeminiModel,
	})
	if err != nil {
		log.Error("main(): LLM 초기화 실패", "error", err)
		os.Exit(1)
	}

	renderer := newRenderer(cfg, log)

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handler.New(recommender, renderer, log), handler.RouterOptions{
		DistDir:            cfg.DistDir,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		CORSAllowOrigins:   cfg.CORSAllowOrigins,
		SwaggerEnabled:     cfg.SwaggerEnabled,
		Logger:             log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("main(): 서버 시작", "addr", "http://"+cfg.Addr(), "provider", recommender.Name())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("main(): 서버 종료", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("main(): graceful shutdown 실패", "error", err)
	}
	log.Info("main(): 서버 종료")
}

// newRenderer never fails the process: without a usable font or theme the
// card endpoint answers 503 and everything else keeps working.
func newRenderer(cfg *config.Config, log *slog.Logger) *card.Renderer {
	theme, err := card.LoadTheme(cfg.CardThemeFile)
	if err != nil {
		log.Warn("newRenderer(): 테마 파일 무시, 기본 테마 사용", "path", cfg.CardThemeFile, "error", err)
		theme = card.DefaultTheme()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	f, err := card.LoadFont(ctx, card.FontSource{
		Path:     cfg.CardFontPath,
		Fallback: cfg.CardFontFallback,
		CacheDir: cfg.CardFontCacheDir,
	}, log)
	if err != nil {
		log.Error("newRenderer(): 폰트 로드 실패, 카드 이미지 비활성화", "error", err)
	}

	r, err := card.New(f, theme)
	if err != nil {
		log.Error("newRenderer(): 렌더러 생성 실패", "error", err)
		return nil
	}
	return r
}
