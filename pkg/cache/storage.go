package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"layerswap/pkg/types"
)

const (
	DefaultCacheFileName = ".layerswap-settings.json"
)

// Entry is the JSON structure persisted on disk
type Entry struct {
	FetchedAt time.Time      `json:"fetched_at"`
	Settings  types.Settings `json:"settings"`
}

// Fetcher retrieves settings from the API
type Fetcher interface {
	GetSettings(ctx context.Context) (*types.Settings, error)
}

// Storage keeps the last fetched settings payload on disk for ttl
type Storage struct {
	filePath string
	ttl      time.Duration
	logger   *zap.Logger
	now      func() time.Time

	mu    sync.RWMutex
	entry *Entry
}

// NewStorage creates a new settings cache. A ttl of zero disables caching.
func NewStorage(filePath string, ttl time.Duration, logger *zap.Logger) (*Storage, error) {
	if filePath == "" {
		// Default to home directory
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		filePath = filepath.Join(home, DefaultCacheFileName)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	storage := &Storage{
		filePath: filePath,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}

	// Load existing entry if file exists
	if err := storage.load(); err != nil {
		if !os.IsNotExist(err) {
			// A corrupt cache is refetched, never fatal
			logger.Warn("Ignoring unreadable settings cache", zap.String("path", filePath), zap.Error(err))
		}
	}

	return storage, nil
}

// load reads the entry from the cache file
func (s *Storage) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return fmt.Errorf("failed to unmarshal settings cache: %w", err)
	}

	s.entry = &entry
	return nil
}

// save writes entry to the cache file
func (s *Storage) save(entry *Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal settings cache: %w", err)
	}

	// Ensure directory exists
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Write to temporary file first, then rename for atomic write
	tempFile := s.filePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings cache: %w", err)
	}

	if err := os.Rename(tempFile, s.filePath); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// Get returns the cached settings if they are still fresh
func (s *Storage) Get() (*types.Settings, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ttl <= 0 || s.entry == nil {
		return nil, false
	}
	if s.now().Sub(s.entry.FetchedAt) >= s.ttl {
		return nil, false
	}

	settings := s.entry.Settings
	return &settings, true
}

// Put stores settings as fetched now
func (s *Storage) Put(settings types.Settings) error {
	if s.ttl <= 0 {
		return nil
	}

	entry := &Entry{FetchedAt: s.now(), Settings: settings}
	if err := s.save(entry); err != nil {
		return err
	}

	s.mu.Lock()
	s.entry = entry
	s.mu.Unlock()
	return nil
}

// Clear removes the cache file
func (s *Storage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entry = nil
	if err := os.Remove(s.filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove settings cache: %w", err)
	}
	return nil
}

// Settings returns fresh cached settings or fetches and stores them
func (s *Storage) Settings(ctx context.Context, f Fetcher) (*types.Settings, error) {
	if cached, ok := s.Get(); ok {
		s.logger.Debug("Using cached settings", zap.String("path", s.filePath))
		return cached, nil
	}

	settings, err := f.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.Put(*settings); err != nil {
		s.logger.Warn("Failed to cache settings", zap.Error(err))
	}
	return settings, nil
}

// GetFilePath returns the cache file path
func (s *Storage) GetFilePath() string {
	return s.filePath
}
