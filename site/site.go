package site

import (
	"bytes"
	"errors"
	"html/template"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"frambod/analytics"
	"frambod/content"
	"frambod/i18n"
	"frambod/storage"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Linkify),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// SiteModule renders the public campaign site: the localized homepages,
// article and news detail pages, and the sitemap.
type SiteModule struct {
	articles  *content.Collection
	news      *content.Collection
	videos    *content.Collection
	site      *content.SiteRepository
	analytics *analytics.AnalyticsModule
}

func NewSiteModule(store storage.Store, analyticsModule *analytics.AnalyticsModule) *SiteModule {
	return &SiteModule{
		articles:  content.NewCollection(store, storage.DocArticles),
		news:      content.NewCollection(store, storage.DocNews),
		videos:    content.NewCollection(store, storage.DocVideos),
		site:      content.NewSiteRepository(store),
		analytics: analyticsModule,
	}
}

func (s *SiteModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/"+content.DefaultLocale)
	})

	// Explicit routes per locale; a /:locale wildcard would collide with
	// the section routes below.
	for _, locale := range content.Locales {
		locale := locale
		router.GET("/"+locale, func(c *gin.Context) {
			s.home(c, locale)
		})
	}

	router.GET("/greinar/:slug", func(c *gin.Context) {
		s.itemPage(c, s.articles, "greinar", "site_article.html")
	})
	router.GET("/frettir/:slug", func(c *gin.Context) {
		s.itemPage(c, s.news, "frettir", "site_news.html")
	})
	router.GET("/sitemap.xml", s.sitemap)
}

// viewItem is one collection item shaped for the templates, with the
// display fields already resolved for the page's locale.
type viewItem struct {
	ID         string
	Slug       string
	Title      string
	Excerpt    string
	Date       string
	Image      string
	Thumbnail  string
	YoutubeURL string
}

func itemView(it content.Item, locale string) viewItem {
	tr := it.Localized(locale)
	date, _ := it["date"].(string)
	image, _ := it["image"].(string)
	thumbnail, _ := it["thumbnail"].(string)
	youtubeURL, _ := it["youtubeUrl"].(string)

	return viewItem{
		ID:         it.ID(),
		Slug:       it.Slug(),
		Title:      tr.Title,
		Excerpt:    tr.Excerpt,
		Date:       date,
		Image:      image,
		Thumbnail:  thumbnail,
		YoutubeURL: youtubeURL,
	}
}

func (s *SiteModule) home(c *gin.Context, locale string) {
	t := i18n.Get(locale)

	siteContent, err := s.site.Get(c.Request.Context(), locale)
	if err != nil {
		log.Printf("Error loading site content: %v", err)
		s.errorPage(c, locale)
		return
	}

	articles := s.homepageItems(c, s.articles, locale)
	news := s.homepageItems(c, s.news, locale)
	videos := s.homepageItems(c, s.videos, locale)

	s.analytics.TrackVisit(c, "home", locale, nil)

	c.HTML(http.StatusOK, "site_home.html", gin.H{
		"t":           t,
		"locale":      locale,
		"locales":     content.Locales,
		"localeNames": i18n.LocaleNames,
		"site":        siteContent,
		"articles":    articles,
		"news":        news,
		"videos":      videos,
	})
}

// homepageItems loads a collection and keeps only items flagged for the
// homepage. Load failures degrade to an empty section rather than taking
// the whole page down.
func (s *SiteModule) homepageItems(c *gin.Context, col *content.Collection, locale string) []viewItem {
	items, err := col.List(c.Request.Context())
	if err != nil {
		log.Printf("Error loading %s: %v", col.Document(), err)
		return []viewItem{}
	}

	views := make([]viewItem, 0, len(items))
	for _, it := range items {
		if !it.ShowOnHomepage() {
			continue
		}
		views = append(views, itemView(it, locale))
	}
	return views
}

func (s *SiteModule) itemPage(c *gin.Context, col *content.Collection, section, tmpl string) {
	slug := c.Param("slug")

	locale := c.DefaultQuery("lang", content.DefaultLocale)
	if !content.IsSupportedLocale(locale) {
		locale = content.DefaultLocale
	}

	item, err := col.GetBySlug(c.Request.Context(), slug)
	if errors.Is(err, content.ErrItemNotFound) {
		s.notFound(c, locale)
		return
	}
	if err != nil {
		log.Printf("Error loading %s/%s: %v", section, slug, err)
		s.errorPage(c, locale)
		return
	}

	view := itemView(item, locale)

	var buf bytes.Buffer
	if err := md.Convert([]byte(item.Localized(locale).Content), &buf); err != nil {
		log.Printf("Error rendering %s/%s: %v", section, slug, err)
		s.errorPage(c, locale)
		return
	}

	id := item.ID()
	s.analytics.TrackVisit(c, section, locale, &id)

	c.HTML(http.StatusOK, tmpl, gin.H{
		"t":       i18n.Get(locale),
		"locale":  locale,
		"item":    view,
		"content": template.HTML(buf.String()),
	})
}

func (s *SiteModule) notFound(c *gin.Context, locale string) {
	c.HTML(http.StatusNotFound, "site_error.html", gin.H{
		"t":      i18n.Get(locale),
		"locale": locale,
		"status": http.StatusNotFound,
	})
}

func (s *SiteModule) errorPage(c *gin.Context, locale string) {
	c.HTML(http.StatusInternalServerError, "site_error.html", gin.H{
		"t":      i18n.Get(locale),
		"locale": locale,
		"status": http.StatusInternalServerError,
	})
}

func (s *SiteModule) sitemap(c *gin.Context) {
	domain := os.Getenv("DOMAIN")
	if domain == "" {
		domain = "http://localhost:8080"
	}
	domain = strings.TrimSuffix(domain, "/")

	var sitemap strings.Builder
	sitemap.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	sitemap.WriteString("\n")
	sitemap.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	sitemap.WriteString("\n")

	for _, locale := range content.Locales {
		sitemap.WriteString("  <url>\n")
		sitemap.WriteString("    <loc>" + domain + "/" + locale + "</loc>\n")
		sitemap.WriteString("    <changefreq>weekly</changefreq>\n")
		if locale == content.DefaultLocale {
			sitemap.WriteString("    <priority>1.0</priority>\n")
		} else {
			sitemap.WriteString("    <priority>0.8</priority>\n")
		}
		sitemap.WriteString("  </url>\n")
	}

	sections := []struct {
		path string
		col  *content.Collection
	}{
		{"greinar", s.articles},
		{"frettir", s.news},
	}

	for _, section := range sections {
		items, err := section.col.List(c.Request.Context())
		if err != nil {
			log.Printf("Error loading %s for sitemap: %v", section.col.Document(), err)
			continue
		}

		for _, it := range items {
			if it.Slug() == "" {
				continue
			}
			sitemap.WriteString("  <url>\n")
			sitemap.WriteString("    <loc>" + domain + "/" + section.path + "/" + it.Slug() + "</loc>\n")
			if date, _ := it["date"].(string); date != "" {
				sitemap.WriteString("    <lastmod>" + date + "</lastmod>\n")
			}
			sitemap.WriteString("    <changefreq>monthly</changefreq>\n")
			sitemap.WriteString("    <priority>0.6</priority>\n")
			sitemap.WriteString("  </url>\n")
		}
	}

	sitemap.WriteString("</urlset>\n")

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.String(http.StatusOK, sitemap.String())
}
