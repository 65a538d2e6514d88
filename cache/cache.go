package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// File cache for rendered public pages. Pages are keyed by site section
// (greinar, frettir) and slug; admin writes clear the affected section so
// editors see their changes immediately.

const cacheRoot = "cache"

// PagePath returns the cache file path for a rendered page.
func PagePath(section, slug string) string {
	hash := generateHash(section + "/" + slug)
	return filepath.Join(cacheRoot, section, fmt.Sprintf("%s_%s.html", slug, hash[:16]))
}

// generateHash generates an xxHash hash for the given string
func generateHash(s string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))
}

// WritePage writes rendered HTML to the cache file for a page.
func WritePage(section, slug, html string) error {
	if err := os.MkdirAll(filepath.Join(cacheRoot, section), 0755); err != nil {
		return err
	}
	return os.WriteFile(PagePath(section, slug), []byte(html), 0644)
}

// ReadPage reads cached HTML if it exists and is not expired.
func ReadPage(section, slug string, maxAge time.Duration) (string, bool) {
	path := PagePath(section, slug)

	info, err := os.Stat(path)
	if err != nil {
		return "", false
	}
	if time.Since(info.ModTime()) > maxAge {
		return "", false
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(content), true
}

// ClearPage removes a single cached page.
func ClearPage(section, slug string) error {
	err := os.Remove(PagePath(section, slug))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ClearSection removes every cached page of a section. Called after any
// admin write to the section's content document, since a document-level
// write can touch any item.
func ClearSection(section string) error {
	return os.RemoveAll(filepath.Join(cacheRoot, section))
}

// ClearOld removes cache files older than the specified duration.
func ClearOld(maxAge time.Duration) error {
	return filepath.Walk(cacheRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}
		if time.Since(info.ModTime()) > maxAge {
			os.Remove(path)
		}
		return nil
	})
}
