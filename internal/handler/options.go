package handler

import (
	"net/http"

	"NamingStudio/internal/models"

	"github.com/gin-gonic/gin"
)

type OptionsResponse struct {
	Genders []models.Option `json:"genders"`
	Styles  []models.Option `json:"styles"`
}

// Options godoc
// @Summary      입력 선택지 조회
// @Description  입력 폼에서 쓰는 성별, 스타일 선택지(표준 키와 한글 라벨)를 표시 순서대로 돌려줍니다.
// @Tags         Naming
// @Produce      json
// @Success      200  {object}  OptionsResponse
// @Router       /api/options [get]
func (h *Handler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, OptionsResponse{
		Genders: models.GenderOptions(),
		Styles:  models.StyleOptions(),
	})
}
