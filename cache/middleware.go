package cache

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// cachedSections are the public detail pages worth caching. Homepages and
// the JSON API are always served fresh.
var cachedSections = map[string]bool{
	"greinar": true,
	"frettir": true,
}

// Middleware caches rendered article and news pages on disk.
func Middleware(maxAge time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		section, slug := splitPagePath(c.Request.URL.Path)
		if section == "" {
			c.Next()
			return
		}

		// Detail pages localize through ?lang, so the language is part of
		// the cache key.
		if lang := c.Query("lang"); lang != "" {
			slug = slug + "." + lang
		}

		if cached, found := ReadPage(section, slug, maxAge); found {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(cached))
			c.Abort()
			return
		}

		c.Header("X-Cache", "MISS")

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           bytes.NewBuffer(nil),
		}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() == http.StatusOK &&
			strings.HasPrefix(c.Writer.Header().Get("Content-Type"), "text/html") {
			WritePage(section, slug, writer.body.String())
		}
	}
}

// splitPagePath extracts section and slug from /greinar/:slug style paths.
func splitPagePath(path string) (section, slug string) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 2 || parts[1] == "" {
		return "", ""
	}
	if !cachedSections[parts[0]] {
		return "", ""
	}
	return parts[0], parts[1]
}
