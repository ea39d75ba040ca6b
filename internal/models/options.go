package models

// 성별, 스타일 선택지. 표준 키는 영문, 프롬프트와 카드에는 한글 라벨을 쓴다.

type Gender string

const (
	GenderFemale      Gender = "female"
	GenderMale        Gender = "male"
	GenderNeutral     Gender = "neutral"
	GenderUnspecified Gender = "unspecified"
)

type Style string

const (
	StyleRefined     Style = "refined"
	StyleEasyToCall  Style = "easy-to-call"
	StyleBeautiful   Style = "beautiful"
	StyleUnique      Style = "unique"
	StyleUnspecified Style = "unspecified"
)

type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

var genders = []Option{
	{Key: string(GenderFemale), Label: "여자"},
	{Key: string(GenderMale), Label: "남자"},
	{Key: string(GenderNeutral), Label: "중성"},
	{Key: string(GenderUnspecified), Label: "선택안함"},
}

var styles = []Option{
	{Key: string(StyleRefined), Label: "세련된"},
	{Key: string(StyleEasyToCall), Label: "부르기 쉬운"},
	{Key: string(StyleBeautiful), Label: "아름다운"},
	{Key: string(StyleUnique), Label: "유니크한"},
	{Key: string(StyleUnspecified), Label: "선택안함"},
}

func lookup(options []Option, value string) (Option, bool) {
	for _, o := range options {
		if o.Key == value || o.Label == value {
			return o, true
		}
	}
	return Option{}, false
}

// ParseGender accepts a canonical key or its Korean label.
// Anything else falls back to GenderUnspecified.
func ParseGender(value string) Gender {
	if o, ok := lookup(genders, value); ok {
		return Gender(o.Key)
	}
	return GenderUnspecified
}

// ParseStyle accepts a canonical key or its Korean label.
// Anything else falls back to StyleUnspecified.
func ParseStyle(value string) Style {
	if o, ok := lookup(styles, value); ok {
		return Style(o.Key)
	}
	return StyleUnspecified
}

func (g Gender) Label() string {
	o, ok := lookup(genders, string(g))
	if !ok {
		o, _ = lookup(genders, string(GenderUnspecified))
	}
	return o.Label
}

func (s Style) Label() string {
	o, ok := lookup(styles, string(s))
	if !ok {
		o, _ = lookup(styles, string(StyleUnspecified))
	}
	return o.Label
}

// GenderOptions returns a copy of the gender choices in display order.
func GenderOptions() []Option {
	return append([]Option(nil), genders...)
}

// StyleOptions returns a copy of the style choices in display order.
func StyleOptions() []Option {
	return append([]Option(nil), styles...)
}
