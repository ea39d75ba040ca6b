package handler

import (
	"fmt"
	"net/http"

	"NamingStudio/internal/card"
	"NamingStudio/internal/models"

	"github.com/gin-gonic/gin"
)

// NameCardRequest is the body of POST /api/name-card.
type NameCardRequest struct {
	Result models.NamingResult  `json:"result"`
	Form   models.NamingRequest `json:"form"`
}

// NameCard godoc
// @Summary      결과 카드 이미지 생성
// @Description  추천 결과와 입력 폼으로 공유용 PNG 카드를 만듭니다. 결과는 추천 API 응답 형식을 그대로 받으며 누락된 항목은 빈 값으로 채웁니다.
// @Tags         Naming
// @Accept       json
// @Produce      image/png
// @Param        request  body      NameCardRequest  true  "추천 결과와 입력 폼"
// @Success      200      {file}    file             "PNG 이미지 (Content-Disposition 에 파일명)"
// @Failure      400      {object}  MessageResponse  "본문 누락, JSON 오류, 카드 크기 초과"
// @Failure      429      {object}  MessageResponse  "요청 한도 초과"
// @Failure      503      {object}  MessageResponse  "렌더러 사용 불가"
// @Router       /api/name-card [post]
func (h *Handler) NameCard(c *gin.Context) {
	body, err := readJSONBody(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	obj, _ := body.(map[string]any)
	result := models.Normalize(obj["result"])
	form := models.CoerceRequest(obj["form"])

	now := h.now()
	png, err := h.renderer.Render(result, form, now)
	if err != nil {
		h.fail(c, err)
		return
	}

	name := card.FileName(result.PrimaryName.Name, now.UTC())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, "image/png", png)
}
