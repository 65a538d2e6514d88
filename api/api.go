package api

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"frambod/analytics"
	"frambod/content"
	"frambod/email"
	"frambod/storage"
)

// ContentModule serves the JSON API: public content reads, and the
// password-protected write side used by the admin editors.
type ContentModule struct {
	articles  *content.Collection
	news      *content.Collection
	videos    *content.Collection
	site      *content.SiteRepository
	local     storage.Store
	blob      *storage.BlobStore
	uploader  storage.Uploader
	analytics *analytics.AnalyticsModule
	contact   *email.ContactService
}

// Config carries the module's collaborators. Store is the active backend;
// Local and Blob are only used by the migration endpoint. Blob, Uploader,
// Analytics and Contact may be nil, disabling the matching endpoints.
type Config struct {
	Store     storage.Store
	Local     storage.Store
	Blob      *storage.BlobStore
	Uploader  storage.Uploader
	Analytics *analytics.AnalyticsModule
	Contact   *email.ContactService
}

func NewContentModule(cfg Config) *ContentModule {
	return &ContentModule{
		articles:  content.NewCollection(cfg.Store, storage.DocArticles),
		news:      content.NewCollection(cfg.Store, storage.DocNews),
		videos:    content.NewCollection(cfg.Store, storage.DocVideos),
		site:      content.NewSiteRepository(cfg.Store),
		local:     cfg.Local,
		blob:      cfg.Blob,
		uploader:  cfg.Uploader,
		analytics: cfg.Analytics,
		contact:   cfg.Contact,
	}
}

func (m *ContentModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/content", m.getContent)
	router.POST("/api/auth", m.login)
	router.GET("/api/auth", m.checkAuth)
	router.DELETE("/api/auth", m.logout)
	router.POST("/api/contact", m.sendContact)

	authed := router.Group("/api", m.requireAuth)
	{
		authed.POST("/content", m.createContent)
		authed.PUT("/content", m.updateContent)
		authed.DELETE("/content", m.deleteContent)
		authed.POST("/upload", m.upload)
		authed.POST("/admin/migrate", m.migrate)
		authed.GET("/admin/stats", m.stats)
	}
}

func (m *ContentModule) requireAuth(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get("admin_user") == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		c.Abort()
		return
	}
	c.Next()
}

// collectionFor maps the type query parameter to its repository; nil for
// unknown types and for "site", which has its own handling.
func (m *ContentModule) collectionFor(contentType string) *content.Collection {
	switch contentType {
	case "articles":
		return m.articles
	case "news":
		return m.news
	case "videos":
		return m.videos
	}
	return nil
}
