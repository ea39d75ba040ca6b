package handler

import (
	"log/slog"

	"NamingStudio/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "NamingStudio/docs"
)

type RouterOptions struct {
	DistDir            string
	RateLimitPerMinute int
	CORSAllowOrigins   []string
	SwaggerEnabled     bool
	Logger             *slog.Logger
}

// NewRouter wires middleware, the API routes, swagger and the static frontend.
func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(log),
		middleware.CORS(opts.CORSAllowOrigins),
	)

	api := router.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/options", h.Options)
		// 라우트마다 한도를 따로 센다
		api.POST("/recommend-name", middleware.RateLimit(opts.RateLimitPerMinute), h.RecommendName)
		api.POST("/name-card", middleware.RateLimit(opts.RateLimitPerMinute), h.NameCard)
	}

	if opts.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	static := NewStatic(opts.DistDir, log)
	if !static.HasIndex() {
		log.Warn("NewRouter(): 프론트엔드 빌드 결과가 없습니다", "dist", opts.DistDir)
	}
	router.NoRoute(static.NoRoute)

	return router
}
