package card

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"
	"testing"
	"time"

	"NamingStudio/internal/models"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func goFont(t *testing.T) *opentype.Font {
	t.Helper()
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("parse gofont: %v", err)
	}
	return f
}

func TestRender(t *testing.T) {
	f := goFont(t)
	r, err := New(f, DefaultTheme())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result := sampleResult()
	data, err := r.Render(result, sampleForm(), time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}

	body, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 30, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		t.Fatal(err)
	}
	defer body.Close()
	want := BuildLayout(faceMeasurer{body}, result, sampleForm())

	b := img.Bounds()
	if b.Dx() != want.Width || b.Dy() != want.Height {
		t.Errorf("image size = %dx%d, want %dx%d", b.Dx(), b.Dy(), want.Width, want.Height)
	}

	// 좌상단은 그라디언트 시작색, 카드 안쪽 여백은 거의 흰색
	assertNear(t, "top-left", img, 0, 0, 0xf8, 0xfb, 0xff)
	assertNear(t, "card interior", img, OuterPadding+10, OuterPadding+CardPadding+100, 0xff, 0xff, 0xff)
}

func assertNear(t *testing.T, label string, img image.Image, x, y int, r, g, b uint8) {
	t.Helper()
	cr, cg, cb, _ := img.At(x, y).RGBA()
	diff := func(a uint32, want uint8) int {
		d := int(a>>8) - int(want)
		if d < 0 {
			return -d
		}
		return d
	}
	if diff(cr, r) > 8 || diff(cg, g) > 8 || diff(cb, b) > 8 {
		t.Errorf("%s pixel (%d,%d) = #%02x%02x%02x, want near #%02x%02x%02x", label, x, y, cr>>8, cg>>8, cb>>8, r, g, b)
	}
}

func TestRender_EmptyResult(t *testing.T) {
	r, err := New(goFont(t), DefaultTheme())
	if err != nil {
		t.Fatal(err)
	}
	data, err := r.Render(models.DefaultResult(), models.NamingRequest{}, time.Now())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("decode png: %v", err)
	}
}

func TestRender_Unavailable(t *testing.T) {
	r, err := New(nil, DefaultTheme())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Render(sampleResult(), sampleForm(), time.Now()); !errors.Is(err, ErrRenderUnavailable) {
		t.Errorf("nil font: err = %v", err)
	}

	var nilRenderer *Renderer
	if _, err := nilRenderer.Render(sampleResult(), sampleForm(), time.Now()); !errors.Is(err, ErrRenderUnavailable) {
		t.Errorf("nil renderer: err = %v", err)
	}
}

func TestNew_InvalidTheme(t *testing.T) {
	th := DefaultTheme()
	th.Text.Body = "#zzzzzz"
	if _, err := New(goFont(t), th); err == nil {
		t.Error("expected error for invalid theme color")
	}
}

func TestKoreanDate(t *testing.T) {
	if got := koreanDate(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)); got != "2024. 1. 5." {
		t.Errorf("koreanDate = %q", got)
	}
	if got := koreanDate(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)); got != "2025. 12. 31." {
		t.Errorf("koreanDate = %q", got)
	}
}

func TestRender_TooLarge(t *testing.T) {
	r, err := New(goFont(t), DefaultTheme())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		mutate func(*models.NamingResult)
	}{
		// 1 MiB 가까운 줄바꿈 폭탄
		{"too many runes", func(res *models.NamingResult) {
			res.Disclaimer = strings.Repeat("a\n", 500_000)
		}},
		// 글자 수는 작지만 줄이 많아 캔버스가 너무 길어짐
		{"too tall", func(res *models.NamingResult) {
			res.Disclaimer = strings.Repeat("가\n", 300)
		}},
		{"many tips", func(res *models.NamingResult) {
			res.UsageTips = make([]string, 400)
			for i := range res.UsageTips {
				res.UsageTips[i] = "팁"
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := sampleResult()
			tt.mutate(&res)
			start := time.Now()
			data, err := r.Render(res, sampleForm(), time.Now())
			if !errors.Is(err, ErrCardTooLarge) {
				t.Fatalf("err = %v, want ErrCardTooLarge", err)
			}
			if data != nil {
				t.Error("expected no image")
			}
			if d := time.Since(start); d > 5*time.Second {
				t.Errorf("rejection took %v", d)
			}
		})
	}
}

func TestPaintShadow(t *testing.T) {
	r, err := New(goFont(t), DefaultTheme())
	if err != nil {
		t.Fatal(err)
	}

	img := image.NewRGBA(image.Rect(0, 0, 400, 400))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	r.paintShadow(img, 100, 100, 200, 200, 30)

	// 카드 중앙은 그림자 색이 온전히, 가장자리 바깥은 흐리게 번진다
	center := img.RGBAAt(200, 200)
	if center.R >= 240 {
		t.Errorf("center = %v, want shaded", center)
	}
	outside := img.RGBAAt(92, 200)
	if outside.R == 255 || outside.R <= center.R {
		t.Errorf("just outside the edge = %v, want lighter partial shade than %v", outside, center)
	}
	if corner := img.RGBAAt(0, 0); corner != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("far corner = %v, want untouched", corner)
	}
}

func TestPaintShadow_NoBlur(t *testing.T) {
	th := DefaultTheme()
	th.Card.ShadowBlur = 0
	th.Card.ShadowOffsetY = 0
	r, err := New(goFont(t), th)
	if err != nil {
		t.Fatal(err)
	}

	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	r.paintShadow(img, 50, 50, 100, 100, 0)

	if img.RGBAAt(100, 100).R == 255 {
		t.Error("inside should be shaded")
	}
	if img.RGBAAt(45, 100).R != 255 {
		t.Error("without blur nothing outside the shape is shaded")
	}
}

func TestPaintBackground(t *testing.T) {
	r, err := New(goFont(t), DefaultTheme())
	if err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 300, 200))
	r.paintBackground(img)

	assertNear(t, "start", img, 0, 0, 0xf8, 0xfb, 0xff)
	assertNear(t, "end", img, 299, 199, 0xff, 0xf4, 0xe9)
	if a := img.RGBAAt(150, 100).A; a != 255 {
		t.Errorf("alpha = %d, want opaque", a)
	}
}
