package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"frambod/storage"
)

type migrationResult struct {
	Document string `json:"document"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
}

// migrate copies every content document from local files into the blob
// store. Used once when a deployment moves off the local filesystem; safe
// to re-run, it simply overwrites blob copies with the local state.
func (m *ContentModule) migrate(c *gin.Context) {
	if m.blob == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Blob storage not configured"})
		return
	}

	results := make([]migrationResult, 0, len(storage.Documents))
	failed := false

	for _, doc := range storage.Documents {
		data, err := m.local.Load(c.Request.Context(), doc)
		if errors.Is(err, storage.ErrNotFound) {
			results = append(results, migrationResult{Document: doc.Filename(), Status: "skipped"})
			continue
		}
		if err != nil {
			log.Printf("Error reading %s during migration: %v", doc.Filename(), err)
			results = append(results, migrationResult{Document: doc.Filename(), Status: "failed", Error: err.Error()})
			failed = true
			continue
		}

		if err := m.blob.Save(c.Request.Context(), doc, data); err != nil {
			log.Printf("Error writing %s during migration: %v", doc.Filename(), err)
			results = append(results, migrationResult{Document: doc.Filename(), Status: "failed", Error: err.Error()})
			failed = true
			continue
		}

		results = append(results, migrationResult{Document: doc.Filename(), Status: "migrated"})
	}

	c.JSON(http.StatusOK, gin.H{"success": !failed, "results": results})
}
