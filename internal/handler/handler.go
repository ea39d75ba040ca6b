package handler

import (
	"log/slog"
	"time"

	"NamingStudio/internal/card"
	"NamingStudio/internal/llm"
)

// Handler holds what the API endpoints share. Nothing in it is mutated
// after construction.
type Handler struct {
	recommender llm.Recommender
	renderer    *card.Renderer
	log         *slog.Logger
	now         func() time.Time
}

func New(recommender llm.Recommender, renderer *card.Renderer, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		recommender: recommender,
		renderer:    renderer,
		log:         log,
		now:         time.Now,
	}
}
