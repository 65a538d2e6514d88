package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStore keeps each document as a JSON file in a single directory.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

func (s *LocalStore) Load(ctx context.Context, doc Document) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, doc.Filename()))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", doc.Filename(), err)
	}
	return data, nil
}

func (s *LocalStore) Save(ctx context.Context, doc Document, data []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating content dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, doc.Filename()), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", doc.Filename(), err)
	}
	return nil
}

// LocalUploader writes uploads into a directory served as static files.
type LocalUploader struct {
	dir     string
	baseURL string
}

func NewLocalUploader(dir, baseURL string) *LocalUploader {
	return &LocalUploader{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (u *LocalUploader) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if err := os.MkdirAll(u.dir, 0755); err != nil {
		return "", fmt.Errorf("creating upload dir: %w", err)
	}

	ext := filepath.Ext(filename)
	name := fmt.Sprintf("upload_%d%s", time.Now().UnixMilli(), ext)

	if err := os.WriteFile(filepath.Join(u.dir, name), data, 0644); err != nil {
		return "", fmt.Errorf("writing upload: %w", err)
	}
	return u.baseURL + "/" + name, nil
}
