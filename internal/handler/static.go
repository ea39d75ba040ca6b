package handler

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gin-gonic/gin"
)

const (
	msgFrontendMissing = "Frontend build output not found. Run `npm run build` first."
	msgFrontendFailed  = "Failed to serve frontend files."
)

var contentTypes = map[string]string{
	".css":   "text/css; charset=utf-8",
	".html":  "text/html; charset=utf-8",
	".ico":   "image/x-icon",
	".jpeg":  "image/jpeg",
	".jpg":   "image/jpeg",
	".js":    "text/javascript; charset=utf-8",
	".json":  "application/json; charset=utf-8",
	".map":   "application/json; charset=utf-8",
	".png":   "image/png",
	".svg":   "image/svg+xml; charset=utf-8",
	".txt":   "text/plain; charset=utf-8",
	".webp":  "image/webp",
	".woff2": "font/woff2",
}

type cacheRule struct {
	pattern string
	value   string
}

// 위에서부터 처음 일치하는 규칙 적용. 빌드 산출물은 해시 파일명이라 장기 캐시.
var cacheRules = []cacheRule{
	{pattern: "**/*.html", value: "no-cache"},
	{pattern: "**", value: "public, max-age=31536000, immutable"},
}

func contentType(name string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}

func cacheControl(rel string) string {
	for _, r := range cacheRules {
		if ok, _ := doublestar.Match(r.pattern, rel); ok {
			return r.value
		}
	}
	return ""
}

// Static serves the frontend build with a single-page-app fallback to
// index.html for extension-less paths.
type Static struct {
	dir string
	log *slog.Logger
}

func NewStatic(dir string, log *slog.Logger) *Static {
	if log == nil {
		log = slog.Default()
	}
	return &Static{dir: dir, log: log}
}

// HasIndex reports whether the build output contains index.html.
func (s *Static) HasIndex() bool {
	return isFile(filepath.Join(s.dir, "index.html"))
}

// NoRoute answers everything the API routes did not match.
func (s *Static) NoRoute(c *gin.Context) {
	p := c.Request.URL.Path
	isAPI := strings.HasPrefix(p, "/api/")
	method := c.Request.Method

	if !isAPI && (method == http.MethodGet || method == http.MethodHead) {
		served, err := s.serve(c, p)
		if err != nil {
			s.log.Error("Static.NoRoute(): 파일 전송 실패", "path", p, "error", err)
			c.String(http.StatusInternalServerError, msgFrontendFailed)
			return
		}
		if served {
			return
		}
	}

	if isAPI {
		c.JSON(http.StatusNotFound, MessageResponse{Message: msgNotFound})
		return
	}
	c.String(http.StatusNotFound, msgNotFound)
}

func (s *Static) serve(c *gin.Context, urlPath string) (bool, error) {
	// 루트 기준으로 정리하면 ".." 가 dir 밖으로 나가지 못한다
	rel := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if rel != "" && isFile(filepath.Join(s.dir, filepath.FromSlash(rel))) {
		return true, s.sendFile(c, rel)
	}

	if path.Ext(urlPath) != "" {
		return false, nil
	}

	if !s.HasIndex() {
		c.String(http.StatusServiceUnavailable, msgFrontendMissing)
		return true, nil
	}
	return true, s.sendFile(c, "index.html")
}

func (s *Static) sendFile(c *gin.Context, rel string) error {
	body, err := os.ReadFile(filepath.Join(s.dir, filepath.FromSlash(rel)))
	if err != nil {
		return err
	}

	c.Header("Cache-Control", cacheControl(rel))
	c.Header("Content-Type", contentType(rel))
	c.Header("Content-Length", strconv.Itoa(len(body)))

	if c.Request.Method == http.MethodHead {
		c.Status(http.StatusOK)
		c.Writer.WriteHeaderNow()
		return nil
	}
	c.Data(http.StatusOK, contentType(rel), body)
	return nil
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Debug("isFile(): stat 실패", "path", p, "error", err)
		}
		return false
	}
	return info.Mode().IsRegular()
}
