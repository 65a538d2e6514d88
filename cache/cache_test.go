package cache

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chtemp runs the test in a temp working directory so cache files never
// leak into the package directory.
func chtemp(t *testing.T) {
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(old) })
}

func TestPagePath(t *testing.T) {
	path := PagePath("greinar", "baett-umferd")

	assert.True(t, strings.HasPrefix(path, "cache/greinar/"))
	assert.True(t, strings.HasSuffix(path, ".html"))
	assert.Contains(t, path, "baett-umferd_")

	assert.Equal(t, path, PagePath("greinar", "baett-umferd"))
	assert.NotEqual(t, path, PagePath("greinar", "onnur-grein"))
	assert.NotEqual(t, path, PagePath("frettir", "baett-umferd"))
}

func TestSplitPagePath(t *testing.T) {
	tests := []struct {
		path    string
		section string
		slug    string
	}{
		{"/greinar/baett-umferd", "greinar", "baett-umferd"},
		{"/frettir/opnun", "frettir", "opnun"},
		{"/is", "", ""},
		{"/api/content", "", ""},
		{"/greinar/", "", ""},
		{"/greinar/a/b", "", ""},
		{"/", "", ""},
	}

	for _, tt := range tests {
		section, slug := splitPagePath(tt.path)
		assert.Equal(t, tt.section, section, tt.path)
		assert.Equal(t, tt.slug, slug, tt.path)
	}
}

func TestWriteReadPage(t *testing.T) {
	chtemp(t)

	require.NoError(t, WritePage("greinar", "baett-umferd", "<html>grein</html>"))

	html, found := ReadPage("greinar", "baett-umferd", time.Minute)
	assert.True(t, found)
	assert.Equal(t, "<html>grein</html>", html)

	_, found = ReadPage("greinar", "onnur-grein", time.Minute)
	assert.False(t, found)
}

func TestReadPage_Expired(t *testing.T) {
	chtemp(t)

	require.NoError(t, WritePage("greinar", "baett-umferd", "<html>grein</html>"))

	_, found := ReadPage("greinar", "baett-umferd", 0)
	assert.False(t, found)
}

func TestClearSection(t *testing.T) {
	chtemp(t)

	require.NoError(t, WritePage("greinar", "ein", "a"))
	require.NoError(t, WritePage("greinar", "tvaer", "b"))
	require.NoError(t, WritePage("frettir", "frett", "c"))

	require.NoError(t, ClearSection("greinar"))

	_, found := ReadPage("greinar", "ein", time.Minute)
	assert.False(t, found)
	_, found = ReadPage("frettir", "frett", time.Minute)
	assert.True(t, found)
}

func TestMiddleware_CachesDetailPages(t *testing.T) {
	chtemp(t)

	hits := 0
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware(time.Minute))
	router.GET("/greinar/:slug", func(c *gin.Context) {
		hits++
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<html>grein</html>"))
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/greinar/baett-umferd", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))
	assert.Equal(t, "<html>grein</html>", w.Body.String())
	assert.Equal(t, 1, hits)
}

func TestMiddleware_LanguageIsPartOfKey(t *testing.T) {
	chtemp(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware(time.Minute))
	router.GET("/greinar/:slug", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("lang="+c.Query("lang")))
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/greinar/baett-umferd", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, "MISS", w.Header().Get("X-Cache"))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/greinar/baett-umferd?lang=en", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	assert.Equal(t, "lang=en", w.Body.String())
}

func TestMiddleware_SkipsHomepage(t *testing.T) {
	chtemp(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware(time.Minute))
	router.GET("/is", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<html>heim</html>"))
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/is", nil)
	router.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("X-Cache"))
}
