package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"

	portssvc "github.com/finanzapp/finanzas_backend/internal/core/ports/services"
)

// LocalReceiptStorage stores receipt files on the local filesystem and serves
// them back through a static route mounted at baseURL.
type LocalReceiptStorage struct {
	dir     string
	baseURL string
}

// NewLocalReceiptStorage creates the storage directory if needed.
func NewLocalReceiptStorage(dir string, baseURL string) (*LocalReceiptStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create receipt storage dir %s: %w", dir, err)
	}
	return &LocalReceiptStorage{dir: dir, baseURL: baseURL}, nil
}

var _ portssvc.ReceiptStorage = (*LocalReceiptStorage)(nil)

// Store writes the content under a fresh name that keeps the original
// extension and returns the URL path clients can fetch it from.
func (s *LocalReceiptStorage) Store(_ context.Context, name string, content []byte) (string, error) {
	ext := filepath.Ext(name)
	storedName := uuid.NewString() + ext

	target := filepath.Join(s.dir, storedName)
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write receipt file: %w", err)
	}

	return path.Join(s.baseURL, storedName), nil
}

// Dir exposes the storage directory so the router can mount a static route.
func (s *LocalReceiptStorage) Dir() string {
	return s.dir
}
