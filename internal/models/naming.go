package models

// 작명 요청 (폼 제출 1회 분량, 서버에 저장하지 않음)
type NamingRequest struct {
	KoreanName string `json:"koreanName" example:"김하늘"`
	BirthDate  string `json:"birthDate" example:"1995-04-12"`
	BirthTime  string `json:"birthTime" example:"07:30"`
	Gender     Gender `json:"gender" example:"unspecified"`
	Style      Style  `json:"style" example:"refined"`
}

// Missing reports which required fields are empty, in request order.
func (r NamingRequest) Missing() []string {
	var missing []string
	if r.KoreanName == "" {
		missing = append(missing, "koreanName")
	}
	if r.BirthDate == "" {
		missing = append(missing, "birthDate")
	}
	if r.BirthTime == "" {
		missing = append(missing, "birthTime")
	}
	return missing
}

type PrimaryName struct {
	Name          string `json:"name" example:"Haneul"`
	Pronunciation string `json:"hangulPronunciation" example:"하늘"`
	Tagline       string `json:"tagline"`
}

type Alternative struct {
	Name          string `json:"name"`
	Pronunciation string `json:"hangulPronunciation"`
	Reason        string `json:"reason"`
}

type Analysis struct {
	SajuSummary      string `json:"sajuSummary"`
	NameologySummary string `json:"nameologySummary"`
	PracticalReason  string `json:"practicalReason"`
}

// 정규화된 추천 결과. 모든 필드는 항상 존재하며 목록은 null 대신 빈 배열로 직렬화된다.
type NamingResult struct {
	PrimaryName  PrimaryName   `json:"primaryName"`
	Alternatives []Alternative `json:"alternatives"`
	Analysis     Analysis      `json:"analysis"`
	UsageTips    []string      `json:"usageTips"`
	Disclaimer   string        `json:"disclaimer"`
}

// DefaultResult returns the all-empty result.
func DefaultResult() NamingResult {
	return NamingResult{
		Alternatives: []Alternative{},
		UsageTips:    []string{},
	}
}

// HasName reports whether the result carries a primary recommendation.
func (r NamingResult) HasName() bool {
	return r.PrimaryName.Name != ""
}
