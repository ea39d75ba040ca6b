package llm

import (
	"strings"

	"NamingStudio/internal/models"
)

type Prompt struct {
	System string
	User   string
}

var systemInstructions = []string{
	"당신은 한국인 사용자의 영어 이름을 제안하는 전문 작명 어시스턴트입니다.",
	"입력된 한글 이름, 생년월일, 태어난 시간을 바탕으로 사주 해석과 성명학적 느낌을 '참고 관점'으로 활용해 제안하세요.",
	"성별 정보는 참고용이며 고정관념은 피하세요. 성별이 '중성' 또는 '선택안함'이면 중립적이고 범용적인 이름을 우선 제안하세요.",
	"사용자가 스타일 선호를 고르면 해당 톤을 이름/설명에 반영하세요. 스타일이 '선택안함'이면 균형 잡힌 기본 추천을 하세요.",
	"절대 단정적 운세 표현은 피하고, 부르기 쉬움/발음/실사용성 중심으로 설명하세요.",
	"반드시 유효한 JSON 객체만 출력하세요.",
}

// 응답 스키마 설명. 키 이름은 models.NamingResult 의 JSON 태그와 맞춰야 한다.
const resultSchema = `반환 JSON 스키마:
{
  "primaryName": {
    "name": "가장 추천하는 영어 이름",
    "hangulPronunciation": "한글 발음",
    "tagline": "한 줄 추천 이유"
  },
  "alternatives": [
    {
      "name": "대안 이름",
      "hangulPronunciation": "한글 발음",
      "reason": "짧은 이유"
    }
  ],
  "analysis": {
    "sajuSummary": "사주 관점 요약(2~3문장)",
    "nameologySummary": "성명학 관점 요약(2~3문장)",
    "practicalReason": "현실적으로 부르기 쉬운 이유"
  },
  "usageTips": ["해외에서 소개할 때 팁", "닉네임/스펠링 팁"],
  "disclaimer": "운세/작명은 참고용이라는 안내"
}
조건:
- primaryName은 1개
- alternatives는 2~3개
- 이름은 실제 영어권에서 낯설지 않은 형태
- 한국인이 발음하기 어렵지 않을 것`

// BuildPrompt renders the fixed instructions plus the request fields.
// The same request always yields byte-identical output.
func BuildPrompt(req models.NamingRequest) Prompt {
	var user strings.Builder
	user.WriteString("다음 사용자에게 영어 이름을 추천해 주세요.\n")
	user.WriteString("- 한글 이름: " + req.KoreanName + "\n")
	user.WriteString("- 생년월일: " + req.BirthDate + "\n")
	user.WriteString("- 태어난 시간: " + req.BirthTime + "\n")
	user.WriteString("- 성별: " + req.Gender.Label() + "\n")
	user.WriteString("- 스타일: " + req.Style.Label() + "\n")
	user.WriteString("\n")
	user.WriteString(resultSchema)

	return Prompt{
		System: strings.Join(systemInstructions, " "),
		User:   user.String(),
	}
}
