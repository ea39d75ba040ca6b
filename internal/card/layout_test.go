package card

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"NamingStudio/internal/models"
)

// runeMeasurer gives every rune the same advance.
type runeMeasurer float64

func (w runeMeasurer) Measure(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * float64(w)
}

func TestWrap(t *testing.T) {
	m := runeMeasurer(10)

	tests := []struct {
		name  string
		text  string
		width float64
		want  []string
	}{
		{"fits on one line", "  hello world  ", 1000, []string{"hello world"}},
		{"forced breaks", "abcdefghij", 35, []string{"abc", "def", "ghi", "j"}},
		{"break before space", "ab cd ef", 30, []string{"ab", "cd", "ef"}},
		{"overflowing space is dropped", "abc def", 30, []string{"abc", "def"}},
		{"paragraphs", "one\n\n  two  \n", 1000, []string{"one", "two"}},
		{"crlf paragraphs", "one\r\ntwo", 1000, []string{"one", "two"}},
		{"rune wider than max", "ab", 5, []string{"a", "b"}},
		{"empty", "", 100, nil},
		{"blank", " \n \n ", 100, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(m, tt.text, tt.width)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Wrap(%q, %v) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrap_ConcatenationReproducesInput(t *testing.T) {
	text := "가나다라마바사아자차카타파하거너더러머버서어저처커터퍼허"
	for _, width := range []float64{15, 45, 99, 1000} {
		lines := Wrap(runeMeasurer(10), text, width)
		if got := strings.Join(lines, ""); got != text {
			t.Errorf("width %v: joined = %q", width, got)
		}
		for _, line := range lines {
			if n := utf8.RuneCountInString(line); n > 1 && float64(n*10) > width {
				t.Errorf("width %v: line %q overflows", width, line)
			}
		}
	}
}

func sampleForm() models.NamingRequest {
	return models.NamingRequest{
		KoreanName: "김하늘",
		BirthDate:  "1995-04-12",
		BirthTime:  "07:30",
		Gender:     models.GenderFemale,
		Style:      models.StyleUnique,
	}
}

func sampleResult() models.NamingResult {
	return models.NamingResult{
		PrimaryName: models.PrimaryName{Name: "Haneul", Pronunciation: "하늘", Tagline: "맑고 부르기 쉬운 이름"},
		Alternatives: []models.Alternative{
			{Name: "Hannah", Pronunciation: "한나", Reason: "발음이 쉬움"},
			{Name: "Skye", Pronunciation: "스카이", Reason: "하늘의 의미"},
		},
		Analysis: models.Analysis{
			SajuSummary:      "목 기운이 강합니다.",
			NameologySummary: "밝은 인상을 줍니다.",
			PracticalReason:  "철자가 짧습니다.",
		},
		UsageTips:  []string{"처음 소개할 때 철자를 함께 말하세요."},
		Disclaimer: "참고용입니다.",
	}
}

func TestBuildLayout_Minimal(t *testing.T) {
	l := BuildLayout(runeMeasurer(10), models.DefaultResult(), models.NamingRequest{})

	wantTitles := []string{"입력 정보", "사주 관점 요약", "성명학 관점 요약", "실사용성"}
	if len(l.Sections) != len(wantTitles) {
		t.Fatalf("got %d sections, want %d", len(l.Sections), len(wantTitles))
	}
	for i, s := range l.Sections {
		if s.Title != wantTitles[i] {
			t.Errorf("section %d title = %q, want %q", i, s.Title, wantTitles[i])
		}
	}

	wantEcho := []string{"한글 이름: -", "성별: 선택안함", "스타일: 선택안함", "생년월일: -", "태어난 시간: -"}
	if !reflect.DeepEqual(l.Sections[0].Lines, wantEcho) {
		t.Errorf("input echo = %q", l.Sections[0].Lines)
	}
	for _, s := range l.Sections[1:] {
		if len(s.Lines) != 0 {
			t.Errorf("%s: empty analysis should have no lines, got %q", s.Title, s.Lines)
		}
	}

	content := (TitleHeight + 5*LineHeight + SectionGap) + 3*(TitleHeight+SectionGap)
	if l.ContentHeight != content {
		t.Errorf("ContentHeight = %d, want %d", l.ContentHeight, content)
	}
	if l.CardHeight != HeaderHeight+content+FooterHeight {
		t.Errorf("CardHeight = %d", l.CardHeight)
	}
	if l.Height != l.CardHeight+2*OuterPadding || l.Width != CanvasWidth {
		t.Errorf("canvas = %dx%d", l.Width, l.Height)
	}
	if l.Name != "영어 이름 추천" {
		t.Errorf("Name = %q, want placeholder", l.Name)
	}
	if l.Tagline != nil {
		t.Errorf("Tagline = %q", l.Tagline)
	}
}

func TestBuildLayout_Full(t *testing.T) {
	l := BuildLayout(runeMeasurer(10), sampleResult(), sampleForm())

	if len(l.Sections) != 7 {
		t.Fatalf("got %d sections, want 7", len(l.Sections))
	}
	if got := l.Sections[0].Lines[1]; got != "성별: 여자" {
		t.Errorf("gender echo = %q", got)
	}
	if got := l.Sections[0].Lines[2]; got != "스타일: 유니크한" {
		t.Errorf("style echo = %q", got)
	}

	alts := l.Sections[4]
	want := []string{"1. Hannah (한나) - 발음이 쉬움", "2. Skye (스카이) - 하늘의 의미"}
	if alts.Title != "대안 이름" || !reflect.DeepEqual(alts.Lines, want) {
		t.Errorf("alternatives = %+v", alts)
	}
	if tips := l.Sections[5]; tips.Title != "사용 팁" || tips.Lines[0] != "1. 처음 소개할 때 철자를 함께 말하세요." {
		t.Errorf("tips = %+v", tips)
	}
	if l.Sections[6].Title != "안내" {
		t.Errorf("last section = %q", l.Sections[6].Title)
	}
	if l.Name != "Haneul" || l.Pronunciation != "하늘" || len(l.Tagline) != 1 {
		t.Errorf("header = %q %q %q", l.Name, l.Pronunciation, l.Tagline)
	}
}

func TestBuildLayout_WrappedLinesGrowCanvas(t *testing.T) {
	result := sampleResult()
	short := BuildLayout(runeMeasurer(10), result, sampleForm())

	// TextWidth 1004 에 10px 글자 100개가 들어간다
	result.Analysis.SajuSummary = strings.Repeat("가", 250)
	long := BuildLayout(runeMeasurer(10), result, sampleForm())

	if got := len(long.Sections[1].Lines); got != 3 {
		t.Fatalf("wrapped lines = %d, want 3", got)
	}
	if long.Height-short.Height != 2*LineHeight {
		t.Errorf("height grew by %d, want %d", long.Height-short.Height, 2*LineHeight)
	}
}

func TestBuildLayout_OptionalSectionsOmitted(t *testing.T) {
	result := sampleResult()
	result.Alternatives = []models.Alternative{}
	result.UsageTips = nil
	result.Disclaimer = ""

	l := BuildLayout(runeMeasurer(10), result, sampleForm())
	if len(l.Sections) != 4 {
		t.Errorf("got %d sections, want 4", len(l.Sections))
	}
}

func TestCheckSize(t *testing.T) {
	if err := CheckSize(sampleResult(), sampleForm()); err != nil {
		t.Errorf("sample: %v", err)
	}

	res := sampleResult()
	res.Alternatives = append(res.Alternatives, models.Alternative{Reason: strings.Repeat("길", MaxCardRunes)})
	if err := CheckSize(res, sampleForm()); !errors.Is(err, ErrCardTooLarge) {
		t.Errorf("long alternative: err = %v, want ErrCardTooLarge", err)
	}

	form := sampleForm()
	form.KoreanName = strings.Repeat("가", MaxCardRunes+1)
	if err := CheckSize(models.DefaultResult(), form); !errors.Is(err, ErrCardTooLarge) {
		t.Errorf("long form field: err = %v, want ErrCardTooLarge", err)
	}
}

func TestLayout_CheckHeight(t *testing.T) {
	l := BuildLayout(runeMeasurer(10), sampleResult(), sampleForm())
	if err := l.CheckHeight(); err != nil {
		t.Errorf("sample layout %dpx: %v", l.Height, err)
	}

	res := sampleResult()
	res.Disclaimer = strings.Repeat("줄\n", 250)
	l = BuildLayout(runeMeasurer(10), res, sampleForm())
	if l.Height <= MaxCanvasHeight {
		t.Fatalf("height = %d, expected over the limit", l.Height)
	}
	if err := l.CheckHeight(); !errors.Is(err, ErrCardTooLarge) {
		t.Errorf("err = %v, want ErrCardTooLarge", err)
	}
}
