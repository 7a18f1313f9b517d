package imagestore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anvitha/outfit-advisor/internal/domain/wardrobe"
)

// LocalStore serves wardrobe images from a directory on disk.
type LocalStore struct {
	dir string
}

// NewLocalStore constructs a store rooted at dir.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

// Get opens an image file. Keys are constrained to the store directory.
func (s *LocalStore) Get(_ context.Context, key string) (io.ReadCloser, error) {
	path, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Put writes image bytes under the store directory.
func (s *LocalStore) Put(_ context.Context, key string, data []byte, _ string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(f, bytes.NewReader(data))
	return err
}

// resolve rejects keys that would escape the image directory.
func (s *LocalStore) resolve(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("empty image key")
	}
	clean := filepath.Clean(key)
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid image key %q", key)
	}
	return filepath.Join(s.dir, clean), nil
}

var _ wardrobe.ImageStore = (*LocalStore)(nil)
