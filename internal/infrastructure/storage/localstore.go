// Package storage persists attachment bytes on the local filesystem. Rows in
// the database reference files by the relative path returned from Save.
package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type LocalStore struct {
	baseDir string
	maxSize int64
}

func NewLocalStore(baseDir string, maxSize int64) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create attachment directory: %w", err)
	}
	return &LocalStore{baseDir: baseDir, maxSize: maxSize}, nil
}

func (s *LocalStore) MaxSize() int64 {
	return s.maxSize
}

// Save streams r to a new file under a random name, preserving the original
// extension. Returns the path relative to the store root.
func (s *LocalStore) Save(fileName string, r io.Reader) (string, int64, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", 0, fmt.Errorf("failed to generate file name: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	relPath := hex.EncodeToString(buf) + ext
	fullPath := filepath.Join(s.baseDir, relPath)

	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create attachment file: %w", err)
	}
	defer f.Close()

	limit := io.LimitReader(r, s.maxSize+1)
	written, err := io.Copy(f, limit)
	if err != nil {
		os.Remove(fullPath)
		return "", 0, fmt.Errorf("failed to write attachment: %w", err)
	}
	if written > s.maxSize {
		os.Remove(fullPath)
		return "", 0, fmt.Errorf("attachment exceeds maximum size of %d bytes", s.maxSize)
	}

	return relPath, written, nil
}

// Open returns a reader over a stored file. Paths are validated against
// escaping the store root.
func (s *LocalStore) Open(relPath string) (io.ReadCloser, error) {
	fullPath, err := s.resolve(relPath)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open attachment: %w", err)
	}
	return f, nil
}

func (s *LocalStore) Delete(relPath string) error {
	fullPath, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	return nil
}

func (s *LocalStore) resolve(relPath string) (string, error) {
	cleaned := filepath.Clean(relPath)
	if cleaned != relPath || strings.Contains(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid attachment path")
	}
	return filepath.Join(s.baseDir, cleaned), nil
}
