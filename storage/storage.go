package storage

import (
	"context"
	"errors"
)

// Document names one of the persisted JSON blobs. Each document is read and
// written as a unit; there is no sub-document persistence.
type Document string

const (
	DocSite     Document = "site"
	DocArticles Document = "articles"
	DocNews     Document = "news"
	DocVideos   Document = "videos"
)

// Documents lists every document the site persists, in migration order.
var Documents = []Document{DocSite, DocArticles, DocNews, DocVideos}

func (d Document) Filename() string {
	return string(d) + ".json"
}

// ErrNotFound is returned by Load when a document has never been written.
// Callers treat it as the uninitialized state, not as a failure.
var ErrNotFound = errors.New("storage: document not found")

// Store persists the named JSON documents. Implementations: LocalStore for
// development (files on disk), BlobStore for deployments (object store).
type Store interface {
	Load(ctx context.Context, doc Document) ([]byte, error)
	Save(ctx context.Context, doc Document, data []byte) error
}

// Uploader stores a binary asset and returns its stable public URL, which
// editors use as an image/thumbnail field value.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (string, error)
}
