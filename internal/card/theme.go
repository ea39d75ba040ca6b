package card

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed theme.default.toml
var defaultThemeTOML []byte

type Theme struct {
	Background struct {
		From    string  `toml:"from"`
		Mid     string  `toml:"mid"`
		MidStop float64 `toml:"mid_stop"`
		To      string  `toml:"to"`
	} `toml:"background"`

	Decoration struct {
		PrimaryCircle string `toml:"primary_circle"`
		AccentCircle  string `toml:"accent_circle"`
	} `toml:"decoration"`

	Card struct {
		Fill          string  `toml:"fill"`
		Radius        float64 `toml:"radius"`
		Shadow        string  `toml:"shadow"`
		ShadowBlur    float64 `toml:"shadow_blur"`
		ShadowOffsetY int     `toml:"shadow_offset_y"`
	} `toml:"card"`

	Text struct {
		Label         string `toml:"label"`
		Name          string `toml:"name"`
		Pronunciation string `toml:"pronunciation"`
		Tagline       string `toml:"tagline"`
		Divider       string `toml:"divider"`
		SectionTitle  string `toml:"section_title"`
		Body          string `toml:"body"`
		Footer        string `toml:"footer"`
	} `toml:"text"`

	Size struct {
		Label         float64 `toml:"label"`
		Name          float64 `toml:"name"`
		Pronunciation float64 `toml:"pronunciation"`
		SectionTitle  float64 `toml:"section_title"`
		Body          float64 `toml:"body"`
		Footer        float64 `toml:"footer"`
	} `toml:"size"`
}

// DefaultTheme returns the embedded theme.
func DefaultTheme() Theme {
	var t Theme
	if err := toml.Unmarshal(defaultThemeTOML, &t); err != nil {
		panic(fmt.Sprintf("card: embedded theme is invalid: %v", err))
	}
	return t
}

// LoadTheme decodes path on top of the embedded defaults, so an override
// file only needs the keys it changes. An empty path returns the defaults.
func LoadTheme(path string) (Theme, error) {
	t := DefaultTheme()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme file: %w", err)
	}
	if err := toml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("parse theme file: %w", err)
	}
	if _, err := t.palette(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// palette holds the theme colors parsed once per renderer.
type palette struct {
	bgFrom, bgMid, bgTo         color.NRGBA
	primaryCircle, accentCircle color.NRGBA
	cardFill, shadow            color.NRGBA
	label, name, pronunciation  color.NRGBA
	tagline, divider            color.NRGBA
	sectionTitle, body, footer  color.NRGBA
}

func (t Theme) palette() (palette, error) {
	var (
		p   palette
		err error
	)
	fields := []struct {
		key string
		src string
		dst *color.NRGBA
	}{
		{"background.from", t.Background.From, &p.bgFrom},
		{"background.mid", t.Background.Mid, &p.bgMid},
		{"background.to", t.Background.To, &p.bgTo},
		{"decoration.primary_circle", t.Decoration.PrimaryCircle, &p.primaryCircle},
		{"decoration.accent_circle", t.Decoration.AccentCircle, &p.accentCircle},
		{"card.fill", t.Card.Fill, &p.cardFill},
		{"card.shadow", t.Card.Shadow, &p.shadow},
		{"text.label", t.Text.Label, &p.label},
		{"text.name", t.Text.Name, &p.name},
		{"text.pronunciation", t.Text.Pronunciation, &p.pronunciation},
		{"text.tagline", t.Text.Tagline, &p.tagline},
		{"text.divider", t.Text.Divider, &p.divider},
		{"text.section_title", t.Text.SectionTitle, &p.sectionTitle},
		{"text.body", t.Text.Body, &p.body},
		{"text.footer", t.Text.Footer, &p.footer},
	}
	for _, f := range fields {
		if *f.dst, err = ParseHexColor(f.src); err != nil {
			return palette{}, fmt.Errorf("theme %s: %w", f.key, err)
		}
	}
	if t.Background.MidStop <= 0 || t.Background.MidStop >= 1 {
		return palette{}, fmt.Errorf("theme background.mid_stop: must be between 0 and 1, got %v", t.Background.MidStop)
	}
	for key, size := range map[string]float64{
		"size.label":         t.Size.Label,
		"size.name":          t.Size.Name,
		"size.pronunciation": t.Size.Pronunciation,
		"size.section_title": t.Size.SectionTitle,
		"size.body":          t.Size.Body,
		"size.footer":        t.Size.Footer,
	} {
		if size <= 0 {
			return palette{}, fmt.Errorf("theme %s: must be positive, got %v", key, size)
		}
	}
	return p, nil
}
