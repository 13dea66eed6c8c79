package rendering

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Storage persists rendered PDF files under a base directory. Paths handed
// back to callers are relative to the application root so they survive
// deployments that move the data directory.
type Storage struct {
	basePath string
	logger   *zap.Logger
}

// NewStorage creates a file-system storage rooted at basePath
func NewStorage(basePath string, logger *zap.Logger) (*Storage, error) {
	if basePath == "" {
		basePath = filepath.Join("output", "ponudbe")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, NewRenderError(ErrCodeStorageFailed,
			fmt.Sprintf("failed to create storage directory: %s", basePath), err)
	}

	return &Storage{basePath: basePath, logger: logger}, nil
}

// Store writes a rendered PDF, overwriting any previous artifact at the same
// name, and returns the relative path to record on the document.
func (s *Storage) Store(filename string, data []byte) (string, error) {
	path := filepath.Join(s.basePath, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", NewRenderError(ErrCodeStorageFailed, "failed to write PDF file", err)
	}

	s.logger.Debug("stored PDF artifact",
		zap.String("path", path),
		zap.Int("bytes", len(data)))

	return path, nil
}

// Open returns the on-disk location of a previously stored artifact. The
// recorded path must stay inside the storage root.
func (s *Storage) Open(relPath string) (string, error) {
	cleaned := filepath.Clean(relPath)
	if strings.Contains(cleaned, "..") {
		return "", NewRenderError(ErrCodeStorageFailed, "artifact path escapes storage root", nil)
	}
	if _, err := os.Stat(cleaned); err != nil {
		return "", NewRenderError(ErrCodeStorageFailed, "artifact not found: "+cleaned, err)
	}
	return cleaned, nil
}
