package api

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// upload receives an image from the admin editor and stores it through the
// configured uploader, returning the public URL for use in content fields.
func (m *ContentModule) upload(c *gin.Context) {
	if m.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Uploads not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File required"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only image files are allowed"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("Error reading uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}

	url, err := m.uploader.Upload(c.Request.Context(), fileHeader.Filename, contentType, data)
	if err != nil {
		log.Printf("Error storing upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store upload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}
