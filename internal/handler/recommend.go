package handler

import (
	"net/http"
	"strings"

	"NamingStudio/internal/models"

	"github.com/gin-gonic/gin"
)

// RecommendName godoc
// @Summary      영어 이름 추천
// @Description  한글 이름, 생년월일, 태어난 시간을 받아 AI가 영어 이름 1개와 대안 2~3개를 추천합니다.
// @Description  gender, style 은 표준 키(female, refined 등)나 한글 라벨 모두 받으며, 알 수 없는 값은 unspecified 로 처리합니다.
// @Tags         Naming
// @Accept       json
// @Produce      json
// @Param        request  body      models.NamingRequest  true  "작명 요청"
// @Success      200      {object}  models.NamingResult
// @Failure      400      {object}  MessageResponse  "본문 누락, JSON 오류, 필수 항목 누락"
// @Failure      429      {object}  MessageResponse  "요청 한도 초과"
// @Failure      500      {object}  MessageResponse  "API 키 미설정 또는 서버 오류"
// @Failure      502      {object}  MessageResponse  "AI 응답 해석 실패"
// @Router       /api/recommend-name [post]
func (h *Handler) RecommendName(c *gin.Context) {
	body, err := readJSONBody(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	req := models.CoerceRequest(body)
	if missing := req.Missing(); len(missing) > 0 {
		h.log.Debug("RecommendName(): 필수 항목 누락", "missing", strings.Join(missing, ","))
		h.fail(c, errBadRequest(msgMissingFields))
		return
	}

	result, err := h.recommender.Recommend(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.log.Info("RecommendName(): 추천 완료", "provider", h.recommender.Name(), "name", result.PrimaryName.Name, "alternatives", len(result.Alternatives))
	c.JSON(http.StatusOK, result)
}
