package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"frambod/cache"
	"frambod/content"
	"frambod/models"
	"frambod/storage"
)

// cacheSections maps content documents to the public sections whose cached
// pages must be dropped after a write.
var cacheSections = map[storage.Document]string{
	storage.DocArticles: "greinar",
	storage.DocNews:     "frettir",
}

// getContent serves the public read endpoint. Every response is marked
// no-store: editors must always see the stored state, never a stale copy.
func (m *ContentModule) getContent(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	contentType := c.Query("type")

	if contentType == "site" {
		if c.Query("mode") == "raw" {
			raw, err := m.site.GetRaw(c.Request.Context())
			if err != nil {
				log.Printf("Error fetching site content: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content"})
				return
			}
			c.JSON(http.StatusOK, raw)
			return
		}

		locale := c.DefaultQuery("locale", content.DefaultLocale)
		if !content.IsSupportedLocale(locale) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid locale"})
			return
		}
		resolved, err := m.site.Get(c.Request.Context(), locale)
		if err != nil {
			log.Printf("Error fetching site content: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content"})
			return
		}
		c.JSON(http.StatusOK, resolved)
		return
	}

	col := m.collectionFor(contentType)
	if col == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type"})
		return
	}

	items, err := col.List(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching %s: %v", contentType, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (m *ContentModule) createContent(c *gin.Context) {
	col := m.collectionFor(c.Query("type"))
	if col == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type"})
		return
	}

	var fields content.Item
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}

	created, err := col.Create(c.Request.Context(), fields)
	if errors.Is(err, content.ErrTitleRequired) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title required"})
		return
	}
	if err != nil {
		log.Printf("Error saving content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save content"})
		return
	}

	m.invalidate(col.Document())
	c.JSON(http.StatusOK, created)
}

func (m *ContentModule) updateContent(c *gin.Context) {
	if c.Query("type") == "site" {
		m.updateSiteContent(c)
		return
	}

	col := m.collectionFor(c.Query("type"))
	if col == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type"})
		return
	}

	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID required"})
		return
	}

	var fields content.Item
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}

	updated, err := col.Update(c.Request.Context(), id, fields)
	if errors.Is(err, content.ErrItemNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	if err != nil {
		log.Printf("Error updating content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update content"})
		return
	}

	m.invalidate(col.Document())
	c.JSON(http.StatusOK, updated)
}

// updateSiteContent handles both site editors. Raw mode replaces the whole
// locale-keyed document; simplified mode merges one locale's sections into
// the stored document, leaving every other locale untouched.
func (m *ContentModule) updateSiteContent(c *gin.Context) {
	if c.Query("mode") == "raw" {
		var raw models.SiteContentRaw
		if err := c.ShouldBindJSON(&raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
			return
		}
		if err := m.site.SaveRaw(c.Request.Context(), raw); err != nil {
			log.Printf("Error saving site content: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save site content"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	locale := c.DefaultQuery("locale", content.DefaultLocale)
	if !content.IsSupportedLocale(locale) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid locale"})
		return
	}

	var upd content.SimplifiedUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}

	if err := m.site.SaveSimplified(c.Request.Context(), locale, upd); err != nil {
		log.Printf("Error saving site content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save site content"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (m *ContentModule) deleteContent(c *gin.Context) {
	col := m.collectionFor(c.Query("type"))
	if col == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type"})
		return
	}

	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID required"})
		return
	}

	if err := col.Delete(c.Request.Context(), id); err != nil {
		log.Printf("Error deleting content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete content"})
		return
	}

	m.invalidate(col.Document())
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (m *ContentModule) invalidate(doc storage.Document) {
	if section, ok := cacheSections[doc]; ok {
		if err := cache.ClearSection(section); err != nil {
			log.Printf("Error clearing %s cache: %v", section, err)
		}
	}
}
