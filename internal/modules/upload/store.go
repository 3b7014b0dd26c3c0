package upload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const maxUploadBytes = 5 * 1024 * 1024 // 5 MB

// Policy constrains what a single upload slot accepts and where it lands.
type Policy struct {
	Subdir      string
	AllowedExts map[string]bool
	MaxBytes    int64
}

var (
	// PaymentProofPolicy accepts receipts: images or a PDF.
	PaymentProofPolicy = Policy{
		AllowedExts: map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".pdf": true},
		MaxBytes:    maxUploadBytes,
	}

	// ProfilePhotoPolicy accepts common web image formats.
	ProfilePhotoPolicy = Policy{
		Subdir:      "profile_photos",
		AllowedExts: map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true},
		MaxBytes:    maxUploadBytes,
	}
)

// BlobStore persists uploaded files and serves them back by URL.
type BlobStore interface {
	Store(data []byte, originalName string, policy Policy) (string, error)
	Delete(url string) error
}

// LocalStore writes blobs to a directory on local disk. Files are served
// under urlBase by the static file route.
type LocalStore struct {
	baseDir string
	urlBase string
}

func NewLocalStore(baseDir, urlBase string) *LocalStore {
	if baseDir == "" {
		baseDir = "uploads"
	}
	if urlBase == "" {
		urlBase = "/uploads"
	}
	return &LocalStore{baseDir: baseDir, urlBase: strings.TrimRight(urlBase, "/")}
}

// Store validates the payload against the policy and writes it under a
// generated name, so original filenames never reach the filesystem.
func (s *LocalStore) Store(data []byte, originalName string, policy Policy) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyFile
	}
	if int64(len(data)) > policy.MaxBytes {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if !policy.AllowedExts[ext] {
		return "", ErrInvalidExtension
	}

	dir := s.baseDir
	if policy.Subdir != "" {
		dir = filepath.Join(dir, policy.Subdir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	if policy.Subdir != "" {
		return s.urlBase + "/" + policy.Subdir + "/" + name, nil
	}
	return s.urlBase + "/" + name, nil
}

// Delete removes the blob behind a URL previously returned by Store.
// A missing file is not an error; a URL outside the store is.
func (s *LocalStore) Delete(url string) error {
	rel, ok := strings.CutPrefix(url, s.urlBase+"/")
	if !ok {
		return ErrUnknownURL
	}

	rel = filepath.Clean(rel)
	if rel == "." || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return ErrUnknownURL
	}

	err := os.Remove(filepath.Join(s.baseDir, rel))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
