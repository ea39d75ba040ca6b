// namecard renders a saved recommendation result to a PNG card without
// running the server.
//
//	namecard -result result.json -korean-name 김하늘 -birth-date 1995-04-12 -birth-time 07:30
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"NamingStudio/internal/card"
	"NamingStudio/internal/logger"
	"NamingStudio/internal/models"
)

type options struct {
	resultPath string
	outDir     string
	form       map[string]any

	fontPath     string
	fontFallback string
	fontCacheDir string
	themePath    string
	logLevel     string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("namecard", flag.ContinueOnError)
	fs.SetOutput(stderr)

	o := &options{}
	var koreanName, birthDate, birthTime, gender, style string
	fs.StringVar(&o.resultPath, "result", "", "추천 결과 JSON 파일 (- 이면 stdin)")
	fs.StringVar(&o.outDir, "out", ".", "PNG 저장 디렉터리")
	fs.StringVar(&koreanName, "korean-name", "", "한글 이름")
	fs.StringVar(&birthDate, "birth-date", "", "생년월일")
	fs.StringVar(&birthTime, "birth-time", "", "태어난 시간")
	fs.StringVar(&gender, "gender", "", "성별 (female, male, neutral, unspecified 또는 한글 라벨)")
	fs.StringVar(&style, "style", "", "스타일 (refined, easy-to-call, beautiful, unique, unspecified 또는 한글 라벨)")
	fs.StringVar(&o.fontPath, "font", os.Getenv("CARD_FONT_PATH"), "폰트 파일 (TTF/OTF/WOFF2)")
	fs.StringVar(&o.fontFallback, "font-fallback", envOr("CARD_FONT_FALLBACK", "google:Noto Sans KR:500"), "google:FAMILY:WEIGHT 또는 gofont")
	fs.StringVar(&o.fontCacheDir, "font-cache", envOr("CARD_FONT_CACHE_DIR", ".cache/fonts"), "폰트 캐시 디렉터리")
	fs.StringVar(&o.themePath, "theme", os.Getenv("CARD_THEME_FILE"), "테마 TOML 파일")
	fs.StringVar(&o.logLevel, "log-level", "warn", "로그 레벨")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.resultPath == "" {
		return nil, fmt.Errorf("-result is required")
	}

	o.form = map[string]any{
		"koreanName": koreanName,
		"birthDate":  birthDate,
		"birthTime":  birthTime,
		"gender":     gender,
		"style":      style,
	}
	return o, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func readResult(path string, stdin io.Reader) (models.NamingResult, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return models.NamingResult{}, fmt.Errorf("read result: %w", err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.NamingResult{}, fmt.Errorf("parse result: %w", err)
	}
	return models.Normalize(raw), nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, now time.Time) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	log, closer := logger.New(logger.Options{Level: o.logLevel, Console: stderr})
	defer closer.Close()

	result, err := readResult(o.resultPath, stdin)
	if err != nil {
		return err
	}
	form := models.CoerceRequest(o.form)

	theme, err := card.LoadTheme(o.themePath)
	if err != nil {
		return err
	}
	f, err := card.LoadFont(ctx, card.FontSource{
		Path:     o.fontPath,
		Fallback: o.fontFallback,
		CacheDir: o.fontCacheDir,
	}, log)
	if err != nil {
		return err
	}
	r, err := card.New(f, theme)
	if err != nil {
		return err
	}

	png, err := r.Render(result, form, now)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(o.outDir, 0o755); err != nil {
		return err
	}
	out := filepath.Join(o.outDir, card.FileName(result.PrimaryName.Name, now.UTC()))
	if err := os.WriteFile(out, png, 0o644); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	fmt.Fprintln(stdout, out)
	return nil
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr, time.Now()); err != nil {
		fmt.Fprintln(os.Stderr, "namecard:", err)
		os.Exit(1)
	}
}
