package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	domain "github.com/inteligent/dashboard/internal/domain/settings"
	"github.com/inteligent/dashboard/internal/domain/shared"
	"go.uber.org/zap"
)

// StatFunc reports a file's modification time; it exists so tests can control
// cache validation without touching the real file system clock.
type StatFunc func(path string) (os.FileInfo, error)

// FileStoreConfig configures the settings store
type FileStoreConfig struct {
	// Path of the JSON settings file
	Path string
	// Stat overrides os.Stat (tests only)
	Stat StatFunc
	// Now overrides time.Now (tests only)
	Now func() time.Time
	// Logger for warnings on corrupt files
	Logger *zap.Logger
}

// FileStore persists the offer-template settings as a single JSON file and
// keeps an in-memory snapshot validated against the file's modification
// timestamp. Reads are served from the snapshot while it is at least as new
// as the file; writes replace the file atomically and swap the snapshot in
// the same critical section so a read immediately after a write never sees
// stale data, regardless of timestamp resolution.
type FileStore struct {
	path   string
	stat   StatFunc
	now    func() time.Time
	logger *zap.Logger

	mu          sync.RWMutex
	cached      *domain.TemplateSettings
	cachedMtime time.Time
}

// NewFileStore creates a settings store backed by the given file path
func NewFileStore(cfg FileStoreConfig) *FileStore {
	if cfg.Path == "" {
		cfg.Path = filepath.Join("config", "offer-template-settings.json")
	}
	if cfg.Stat == nil {
		cfg.Stat = os.Stat
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &FileStore{
		path:   cfg.Path,
		stat:   cfg.Stat,
		now:    cfg.Now,
		logger: cfg.Logger,
	}
}

// Get returns the current settings. On first access with no file present the
// built-in defaults are materialized and persisted. A corrupt file degrades
// to defaults for this call only; the file is left in place for a human to
// fix or a later Put to replace.
func (s *FileStore) Get(ctx context.Context) (domain.TemplateSettings, error) {
	info, statErr := s.stat(s.path)

	s.mu.RLock()
	if s.cached != nil && statErr == nil && !s.cachedMtime.Before(info.ModTime()) {
		cached := *s.cached
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	if statErr != nil {
		if !os.IsNotExist(statErr) {
			return domain.TemplateSettings{}, shared.NewDomainError("STORE_FAILED", "Failed to stat settings store: "+statErr.Error())
		}
		defaults := domain.Defaults()
		if _, err := s.Put(ctx, defaults); err != nil {
			return domain.TemplateSettings{}, err
		}
		return defaults, nil
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return domain.TemplateSettings{}, shared.NewDomainError("STORE_FAILED", "Failed to read settings store: "+err.Error())
	}

	var loaded domain.TemplateSettings
	if err := json.Unmarshal(raw, &loaded); err != nil {
		// Degrade without caching so every read retries the file; overwriting
		// the corrupt store is a human decision, not ours.
		s.logger.Warn("settings store is unparseable, falling back to defaults",
			zap.String("path", s.path),
			zap.Error(err))
		return domain.Defaults(), nil
	}

	s.mu.Lock()
	s.cached = &loaded
	s.cachedMtime = info.ModTime()
	s.mu.Unlock()

	return loaded, nil
}

// Put replaces the persisted settings wholesale. The caller is expected to
// have normalized the value; the store does not default absent fields.
func (s *FileStore) Put(_ context.Context, next domain.TemplateSettings) (domain.TemplateSettings, error) {
	payload, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return domain.TemplateSettings{}, shared.NewDomainError("STORE_FAILED", "Failed to encode settings: "+err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return domain.TemplateSettings{}, shared.NewDomainError("STORE_FAILED", "Failed to create settings directory: "+err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Write-then-rename keeps a reader from ever observing a half-written file.
	tmp := fmt.Sprintf("%s.tmp", s.path)
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return domain.TemplateSettings{}, shared.NewDomainError("STORE_FAILED", "Failed to write settings store: "+err.Error())
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return domain.TemplateSettings{}, shared.NewDomainError("STORE_FAILED", "Failed to replace settings store: "+err.Error())
	}

	s.cached = &next

	// Prefer the file's own mtime; fall back to the clock when stat fails.
	// Either way the snapshot timestamp is >= the file's, so the next Get is
	// served from cache even on file systems with coarse mtime resolution.
	if info, err := s.stat(s.path); err == nil && info.ModTime().After(s.now()) {
		s.cachedMtime = info.ModTime()
	} else {
		s.cachedMtime = s.now()
	}

	return next, nil
}
