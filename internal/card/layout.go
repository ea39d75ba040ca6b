package card

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"NamingStudio/internal/models"
)

// 카드 치수 (px)
const (
	CanvasWidth  = 1200
	OuterPadding = 44
	CardPadding  = 54
	CardWidth    = CanvasWidth - OuterPadding*2
	TextWidth    = CardWidth - CardPadding*2

	LineHeight   = 38
	TitleHeight  = 44
	SectionGap   = 20
	HeaderHeight = 210
	FooterHeight = 80
)

// 카드 크기 상한. 본문 전체 글자 수와 최종 캔버스 높이 둘 다 본다.
const (
	MaxCardRunes    = 20000
	MaxCanvasHeight = 8000
)

// ErrCardTooLarge means the result holds more text than one card can show.
var ErrCardTooLarge = errors.New("카드에 담기에는 내용이 너무 깁니다")

const namePlaceholder = "영어 이름 추천"

// Measurer reports the rendered pixel width of s.
type Measurer interface {
	Measure(s string) float64
}

type Section struct {
	Title string
	Lines []string
}

// Layout is everything Render needs besides fonts and colors.
type Layout struct {
	Width         int
	Height        int
	CardHeight    int
	ContentHeight int

	Name          string
	Pronunciation string
	Tagline       []string
	Sections      []Section
}

// Wrap breaks text into lines no wider than maxWidth. Paragraphs split on
// newlines; within a paragraph it breaks per rune, not at word boundaries.
// A single rune wider than maxWidth still gets a line of its own.
func Wrap(m Measurer, text string, maxWidth float64) []string {
	var lines []string
	for _, para := range strings.Split(strings.TrimSpace(text), "\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		line := ""
		for _, r := range para {
			next := line + string(r)
			if line != "" && m.Measure(next) > maxWidth {
				lines = append(lines, strings.TrimSpace(line))
				line = strings.TrimLeftFunc(string(r), unicode.IsSpace)
				continue
			}
			line = next
		}
		if tail := strings.TrimSpace(line); tail != "" {
			lines = append(lines, tail)
		}
	}
	return lines
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func buildSections(result models.NamingResult, form models.NamingRequest) []Section {
	sections := []Section{
		{Title: "입력 정보", Lines: []string{
			"한글 이름: " + orDash(form.KoreanName),
			"성별: " + form.Gender.Label(),
			"스타일: " + form.Style.Label(),
			"생년월일: " + orDash(form.BirthDate),
			"태어난 시간: " + orDash(form.BirthTime),
		}},
		{Title: "사주 관점 요약", Lines: []string{result.Analysis.SajuSummary}},
		{Title: "성명학 관점 요약", Lines: []string{result.Analysis.NameologySummary}},
		{Title: "실사용성", Lines: []string{result.Analysis.PracticalReason}},
	}

	if len(result.Alternatives) > 0 {
		lines := make([]string, 0, len(result.Alternatives))
		for i, alt := range result.Alternatives {
			lines = append(lines, strconv.Itoa(i+1)+". "+alt.Name+" ("+alt.Pronunciation+") - "+alt.Reason)
		}
		sections = append(sections, Section{Title: "대안 이름", Lines: lines})
	}

	if len(result.UsageTips) > 0 {
		lines := make([]string, 0, len(result.UsageTips))
		for i, tip := range result.UsageTips {
			lines = append(lines, strconv.Itoa(i+1)+". "+tip)
		}
		sections = append(sections, Section{Title: "사용 팁", Lines: lines})
	}

	if result.Disclaimer != "" {
		sections = append(sections, Section{Title: "안내", Lines: []string{result.Disclaimer}})
	}
	return sections
}

// BuildLayout wraps every section line with m (the body face) and sizes the
// canvas. Analysis sections are always present even when their text is empty.
func BuildLayout(m Measurer, result models.NamingResult, form models.NamingRequest) Layout {
	var sections []Section
	contentHeight := 0
	for _, s := range buildSections(result, form) {
		var wrapped []string
		for _, line := range s.Lines {
			wrapped = append(wrapped, Wrap(m, line, TextWidth)...)
		}
		sections = append(sections, Section{Title: s.Title, Lines: wrapped})
		contentHeight += TitleHeight + len(wrapped)*LineHeight + SectionGap
	}

	name := result.PrimaryName.Name
	if !result.HasName() {
		name = namePlaceholder
	}

	cardHeight := HeaderHeight + contentHeight + FooterHeight
	return Layout{
		Width:         CanvasWidth,
		Height:        cardHeight + OuterPadding*2,
		CardHeight:    cardHeight,
		ContentHeight: contentHeight,
		Name:          name,
		Pronunciation: result.PrimaryName.Pronunciation,
		Tagline:       Wrap(m, result.PrimaryName.Tagline, TextWidth),
		Sections:      sections,
	}
}

// CheckSize rejects input before any wrapping or pixel allocation happens.
func CheckSize(result models.NamingResult, form models.NamingRequest) error {
	fields := []string{
		result.PrimaryName.Name, result.PrimaryName.Pronunciation, result.PrimaryName.Tagline,
		result.Analysis.SajuSummary, result.Analysis.NameologySummary, result.Analysis.PracticalReason,
		result.Disclaimer,
		form.KoreanName, form.BirthDate, form.BirthTime,
	}
	for _, alt := range result.Alternatives {
		fields = append(fields, alt.Name, alt.Pronunciation, alt.Reason)
	}
	fields = append(fields, result.UsageTips...)

	n := 0
	for _, f := range fields {
		n += utf8.RuneCountInString(f)
	}
	if n > MaxCardRunes {
		return fmt.Errorf("%w: %d자 (최대 %d자)", ErrCardTooLarge, n, MaxCardRunes)
	}
	return nil
}

// CheckHeight rejects a layout whose canvas would exceed MaxCanvasHeight.
func (l Layout) CheckHeight() error {
	if l.Height > MaxCanvasHeight {
		return fmt.Errorf("%w: 높이 %dpx (최대 %dpx)", ErrCardTooLarge, l.Height, MaxCanvasHeight)
	}
	return nil
}
