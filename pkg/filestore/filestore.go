package filestore

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	ReceiptDir = "receipts"
	YoutubeDir = "youtube"

	maxFileSize = 10 * 1024 * 1024
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type Store struct {
	baseDir string
}

func New(baseDir string) (*Store, error) {
	for _, dir := range []string{ReceiptDir, YoutubeDir} {
		if err := os.MkdirAll(filepath.Join(baseDir, dir), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
		}
	}
	return &Store{baseDir: baseDir}, nil
}

// SaveImage writes an uploaded image into the given subdirectory and returns
// the stored file's relative path.
func (s *Store) SaveImage(subDir string, header *multipart.FileHeader) (string, error) {
	if header.Size > maxFileSize {
		return "", fmt.Errorf("file exceeds maximum size of %d bytes", maxFileSize)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("unsupported image format: %s", ext)
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + ext
	relPath := filepath.Join(subDir, name)

	dst, err := os.Create(filepath.Join(s.baseDir, relPath))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return relPath, nil
}

func (s *Store) BaseDir() string {
	return s.baseDir
}
