package card

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"time"

	"NamingStudio/internal/models"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// ErrRenderUnavailable means no drawing surface could be set up (no font
// loaded, or a face could not be created).
var ErrRenderUnavailable = errors.New("이미지 생성에 필요한 렌더러를 사용할 수 없습니다")

const studioLabel = "AI Naming Studio"

// 원을 3차 베지어 4개로 근사할 때의 제어점 비율
const kappa = 0.5522847498

// Renderer draws name cards. It is safe for concurrent use; faces are
// created per call.
type Renderer struct {
	font  *opentype.Font
	theme Theme
	pal   palette
}

// New validates theme. A nil font is accepted and makes Render fail with
// ErrRenderUnavailable.
func New(f *opentype.Font, theme Theme) (*Renderer, error) {
	pal, err := theme.palette()
	if err != nil {
		return nil, err
	}
	return &Renderer{font: f, theme: theme, pal: pal}, nil
}

type faces struct {
	label, name, pronunciation, sectionTitle, body, footer font.Face
}

func (f *faces) Close() {
	for _, face := range []font.Face{f.label, f.name, f.pronunciation, f.sectionTitle, f.body, f.footer} {
		if face != nil {
			face.Close()
		}
	}
}

func (r *Renderer) newFaces() (*faces, error) {
	fs := &faces{}
	specs := []struct {
		size float64
		dst  *font.Face
	}{
		{r.theme.Size.Label, &fs.label},
		{r.theme.Size.Name, &fs.name},
		{r.theme.Size.Pronunciation, &fs.pronunciation},
		{r.theme.Size.SectionTitle, &fs.sectionTitle},
		{r.theme.Size.Body, &fs.body},
		{r.theme.Size.Footer, &fs.footer},
	}
	for _, s := range specs {
		face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
			Size:    s.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			fs.Close()
			return nil, err
		}
		*s.dst = face
	}
	return fs, nil
}

type faceMeasurer struct {
	face font.Face
}

func (m faceMeasurer) Measure(s string) float64 {
	return float64(font.MeasureString(m.face, s)) / 64
}

// Render draws the card for result and the submitted form, dated now,
// and returns PNG bytes. Oversized input fails with ErrCardTooLarge before
// the canvas is allocated.
func (r *Renderer) Render(result models.NamingResult, form models.NamingRequest, now time.Time) ([]byte, error) {
	if r == nil || r.font == nil {
		return nil, ErrRenderUnavailable
	}
	if err := CheckSize(result, form); err != nil {
		return nil, err
	}
	fs, err := r.newFaces()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderUnavailable, err)
	}
	defer fs.Close()

	l := BuildLayout(faceMeasurer{fs.body}, result, form)
	if err := l.CheckHeight(); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))

	r.paintBackground(img)
	fillPath(img, r.pal.primaryCircle, func(z *vector.Rasterizer) {
		circlePath(z, 180, 160, 120)
	})
	fillPath(img, r.pal.accentCircle, func(z *vector.Rasterizer) {
		circlePath(z, float32(l.Width-160), float32(l.Height-180), 140)
	})

	cardX, cardY := float32(OuterPadding), float32(OuterPadding)
	cardW, cardH := float32(CardWidth), float32(l.CardHeight)
	radius := float32(r.theme.Card.Radius)
	r.paintShadow(img, cardX, cardY, cardW, cardH, radius)
	fillPath(img, r.pal.cardFill, func(z *vector.Rasterizer) {
		roundedRectPath(z, cardX, cardY, cardW, cardH, radius)
	})

	// y 는 텍스트 베이스라인
	x := OuterPadding + CardPadding
	y := OuterPadding + CardPadding
	drawText(img, fs.label, r.pal.label, x, y, studioLabel)

	y += 60
	drawText(img, fs.name, r.pal.name, x, y, l.Name)

	y += 44
	if l.Pronunciation != "" {
		drawText(img, fs.pronunciation, r.pal.pronunciation, x, y, l.Pronunciation)
		y += 40
	}
	for _, line := range l.Tagline {
		drawText(img, fs.body, r.pal.tagline, x, y, line)
		y += LineHeight
	}

	y += 8
	divider := image.Rect(x, y-1, OuterPadding+CardWidth-CardPadding, y+1)
	draw.Draw(img, divider, image.NewUniform(r.pal.divider), image.Point{}, draw.Over)
	y += 40

	for _, s := range l.Sections {
		drawText(img, fs.sectionTitle, r.pal.sectionTitle, x, y, s.Title)
		y += 42
		for _, line := range s.Lines {
			drawText(img, fs.body, r.pal.body, x, y, line)
			y += LineHeight
		}
		y += 18
	}

	drawText(img, fs.footer, r.pal.footer, x, OuterPadding+l.CardHeight-24, "생성일: "+koreanDate(now))

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// koreanDate formats like the ko-KR locale: "2024. 1. 5."
func koreanDate(t time.Time) string {
	return fmt.Sprintf("%d. %d. %d.", t.Year(), int(t.Month()), t.Day())
}

func drawText(dst draw.Image, face font.Face, c color.NRGBA, x, y int, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// paintBackground fills a three-stop linear gradient from the top-left to
// the bottom-right corner, writing straight into img.Pix.
func (r *Renderer) paintBackground(img *image.RGBA) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	denom := w*w + h*h
	mid := r.theme.Background.MidStop

	for py := 0; py < b.Dy(); py++ {
		row := img.Pix[py*img.Stride : py*img.Stride+b.Dx()*4]
		for px := 0; px < b.Dx(); px++ {
			t := ((float64(px)+0.5)*w + (float64(py)+0.5)*h) / denom
			var c color.NRGBA
			if t <= mid {
				c = lerp(r.pal.bgFrom, r.pal.bgMid, t/mid)
			} else {
				c = lerp(r.pal.bgMid, r.pal.bgTo, (t-mid)/(1-mid))
			}
			p := color.RGBAModel.Convert(c).(color.RGBA)
			row[px*4], row[px*4+1], row[px*4+2], row[px*4+3] = p.R, p.G, p.B, p.A
		}
	}
}

// paintShadow rasterizes the offset card shape into a mask that covers only
// the card plus the blur spread, blurs it and composites the shadow color.
// shadow_blur follows the canvas convention, so sigma is half of it.
func (r *Renderer) paintShadow(img *image.RGBA, x, y, w, h, radius float32) {
	sigma := r.theme.Card.ShadowBlur / 2
	y += float32(r.theme.Card.ShadowOffsetY)

	// 가우시안은 3 sigma 밖에서 사실상 0
	pad := int(math.Ceil(3*max(sigma, 0))) + 1
	area := image.Rect(
		int(math.Floor(float64(x)))-pad, int(math.Floor(float64(y)))-pad,
		int(math.Ceil(float64(x+w)))+pad, int(math.Ceil(float64(y+h)))+pad,
	).Intersect(img.Bounds())
	if area.Empty() {
		return
	}

	mask := image.NewAlpha(image.Rect(0, 0, area.Dx(), area.Dy()))
	z := vector.NewRasterizer(area.Dx(), area.Dy())
	roundedRectPath(z, x-float32(area.Min.X), y-float32(area.Min.Y), w, h, radius)
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	var blurred image.Image = mask
	if sigma > 0 {
		blurred = imaging.Blur(mask, sigma)
	}
	draw.DrawMask(img, area, image.NewUniform(r.pal.shadow), image.Point{}, blurred, image.Point{}, draw.Over)
}

func fillPath(dst draw.Image, c color.NRGBA, build func(z *vector.Rasterizer)) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	build(z)
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func circlePath(z *vector.Rasterizer, cx, cy, r float32) {
	k := r * kappa
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
}

func roundedRectPath(z *vector.Rasterizer, x, y, w, h, r float32) {
	r = min(r, w/2, h/2)
	k := r * kappa
	z.MoveTo(x+r, y)
	z.LineTo(x+w-r, y)
	z.CubeTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	z.LineTo(x+w, y+h-r)
	z.CubeTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	z.LineTo(x+r, y+h)
	z.CubeTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	z.LineTo(x, y+r)
	z.CubeTo(x, y+r-k, x+r-k, y, x+r, y)
	z.ClosePath()
}
