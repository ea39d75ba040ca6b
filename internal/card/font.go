// 카드 폰트 로딩. 로컬 파일 -> Google Fonts(디스크 캐시) -> 내장 Go 폰트 순서로 시도한다.

package card

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tdewolff/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const googleFontsCSSURL = "https://fonts.googleapis.com/css2"

// CSS 응답에서 @font-face 블록, 폰트 파일 URL, unicode-range 추출
var (
	fontFaceRe     = regexp.MustCompile(`(?s)@font-face\s*\{(.*?)\}`)
	fontURLRe      = regexp.MustCompile(`url\((https?://[^)\s]+)\)`)
	unicodeRangeRe = regexp.MustCompile(`unicode-range:\s*([^;}]+)`)
)

// 완성형 한글 음절 범위
const (
	hangulFirst = 0xAC00
	hangulLast  = 0xD7A3
)

type FontSource struct {
	// 로컬 TTF/OTF/WOFF2 경로
	Path string
	// "google:FAMILY:WEIGHT" 또는 "gofont"
	Fallback string
	CacheDir string

	// 테스트에서 교체
	CSSBaseURL string
	HTTPClient *retryablehttp.Client
}

// ParseGoogleFontSpec splits "google:Family:Weight".
func ParseGoogleFontSpec(spec string) (family, weight string, ok bool) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 || parts[0] != "google" || parts[1] == "" || parts[2] == "" {
		return "", "", false
	}
	return parts[1], parts[2], true
}

// LoadFont resolves src into a parsed font. Every failed step is logged and
// the bundled Go font is the last resort, so an error means even that failed.
func LoadFont(ctx context.Context, src FontSource, log *slog.Logger) (*opentype.Font, error) {
	if log == nil {
		log = slog.Default()
	}

	if src.Path != "" {
		f, err := loadLocalFont(src.Path)
		if err == nil {
			log.Info("LoadFont(): 로컬 폰트 사용", "path", src.Path)
			return f, nil
		}
		log.Warn("LoadFont(): 로컬 폰트 로드 실패", "path", src.Path, "error", err)
	}

	if _, _, ok := ParseGoogleFontSpec(src.Fallback); ok {
		var f *opentype.Font
		data, err := FetchGoogleFont(ctx, src)
		if err == nil {
			f, err = opentype.Parse(data)
		}
		if err == nil {
			log.Info("LoadFont(): Google Fonts 폰트 사용", "spec", src.Fallback)
			return f, nil
		}
		log.Warn("LoadFont(): Google Fonts 폰트 로드 실패", "spec", src.Fallback, "error", err)
	} else if src.Fallback != "" && src.Fallback != "gofont" {
		log.Warn("LoadFont(): 알 수 없는 폰트 지정, 기본 폰트 사용", "spec", src.Fallback)
	}

	// Go 폰트에는 한글 글리프가 없다
	log.Warn("LoadFont(): 내장 Go 폰트 사용, 한글이 표시되지 않을 수 있음")
	return opentype.Parse(goregular.TTF)
}

func loadLocalFont(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if data, err = maybeConvertWOFF2(path, data); err != nil {
		return nil, err
	}
	return opentype.Parse(data)
}

// FetchGoogleFont downloads src.Fallback from the Google Fonts CSS API and
// caches the SFNT bytes under src.CacheDir.
func FetchGoogleFont(ctx context.Context, src FontSource) ([]byte, error) {
	family, weight, ok := ParseGoogleFontSpec(src.Fallback)
	if !ok {
		return nil, fmt.Errorf("invalid google font spec %q: expected google:FAMILY:WEIGHT", src.Fallback)
	}

	cacheFile := ""
	if src.CacheDir != "" {
		name := strings.ReplaceAll(family, " ", "_") + "-" + weight + ".ttf"
		cacheFile = filepath.Join(src.CacheDir, name)
		if data, err := os.ReadFile(cacheFile); err == nil {
			return data, nil
		}
	}

	client := src.HTTPClient
	if client == nil {
		client = retryablehttp.NewClient()
		client.RetryMax = 3
		client.HTTPClient.Timeout = 15 * time.Second
		client.Logger = nil
	}
	base := src.CSSBaseURL
	if base == "" {
		base = googleFontsCSSURL
	}

	cssURL := fmt.Sprintf("%s?family=%s:wght@%s", base, url.QueryEscape(family), weight)
	css, err := fetch(ctx, client, cssURL, 1<<20)
	if err != nil {
		return nil, fmt.Errorf("fetch css: %w", err)
	}

	fontURL, ok := pickFontURL(css)
	if !ok {
		return nil, fmt.Errorf("no font URL in Google Fonts CSS for %s wght@%s", family, weight)
	}

	data, err := fetch(ctx, client, fontURL, 20<<20)
	if err != nil {
		return nil, fmt.Errorf("fetch font file: %w", err)
	}
	if data, err = maybeConvertWOFF2(fontURL, data); err != nil {
		return nil, err
	}

	if cacheFile != "" {
		if err := os.MkdirAll(src.CacheDir, 0o755); err == nil {
			err = os.WriteFile(cacheFile, data, 0o644)
		}
		if err != nil {
			slog.Warn("FetchGoogleFont(): 폰트 캐시 저장 실패", "path", cacheFile, "error", err)
		}
	}
	return data, nil
}

// pickFontURL chooses the @font-face file that covers the most Hangul
// syllables. CJK families come back as many unicode-range slices; a block
// without unicode-range is the whole font and always wins. For families
// with no Hangul at all the first block is used.
func pickFontURL(css []byte) (string, bool) {
	blocks := fontFaceRe.FindAllSubmatch(css, -1)
	if len(blocks) == 0 {
		if m := fontURLRe.FindSubmatch(css); m != nil {
			return string(m[1]), true
		}
		return "", false
	}

	best, bestScore := "", -1
	for _, b := range blocks {
		m := fontURLRe.FindSubmatch(b[1])
		if m == nil {
			continue
		}
		if score := hangulCoverage(b[1]); score > bestScore {
			best, bestScore = string(m[1]), score
		}
	}
	return best, best != ""
}

func hangulCoverage(block []byte) int {
	m := unicodeRangeRe.FindSubmatch(block)
	if m == nil {
		return math.MaxInt
	}
	n := 0
	for _, part := range strings.Split(string(m[1]), ",") {
		lo, hi, ok := parseUnicodeRange(part)
		if !ok {
			continue
		}
		lo, hi = max(lo, hangulFirst), min(hi, hangulLast)
		if hi >= lo {
			n += hi - lo + 1
		}
	}
	return n
}

// parseUnicodeRange reads one CSS range: U+AC00, U+AC00-AC0B or U+4??.
func parseUnicodeRange(s string) (lo, hi int, ok bool) {
	s = strings.TrimSpace(s)
	if len(s) < 3 || !strings.EqualFold(s[:2], "u+") {
		return 0, 0, false
	}
	s = s[2:]

	loText, hiText := s, s
	if strings.Contains(s, "?") {
		loText, hiText = strings.ReplaceAll(s, "?", "0"), strings.ReplaceAll(s, "?", "F")
	} else if a, b, found := strings.Cut(s, "-"); found {
		loText, hiText = a, b
	}

	l, err := strconv.ParseUint(strings.TrimSpace(loText), 16, 32)
	if err != nil {
		return 0, 0, false
	}
	h, err := strconv.ParseUint(strings.TrimSpace(hiText), 16, 32)
	if err != nil || h < l {
		return 0, 0, false
	}
	return int(l), int(h), true
}

func fetch(ctx context.Context, client *retryablehttp.Client, u string, limit int64) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	// 최신 UA 에는 WOFF2 URL 을 준다 (변환기로 처리)
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status %d", u, resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, limit))
}

var errNotFont = errors.New("not a font file")

func maybeConvertWOFF2(name string, data []byte) ([]byte, error) {
	if len(data) < 4 {
		return nil, errNotFont
	}
	if !isWOFF2(name, data) {
		return data, nil
	}
	sfnt, err := font.ToSFNT(data)
	if err != nil {
		return nil, fmt.Errorf("convert woff2 to sfnt: %w", err)
	}
	return sfnt, nil
}

// WOFF2 magic: "wOF2"
func isWOFF2(name string, data []byte) bool {
	if strings.HasSuffix(strings.ToLower(name), ".woff2") {
		return true
	}
	return len(data) >= 4 && string(data[:4]) == "wOF2"
}
