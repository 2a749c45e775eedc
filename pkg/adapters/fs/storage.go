// Package fs implements core.Storage on the local filesystem.
// Every key is a JSON file inside a hidden system directory of the notebook.
package fs

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/jot/pkg/core"
)

const (
	// DefaultSystemDir is the hidden directory holding the storage slots.
	DefaultSystemDir = ".jot"

	slotExt = ".json"
)

// Config holds the configuration for the filesystem storage.
type Config struct {
	Path      string
	SystemDir string // e.g. ".jot"
	AutoInit  bool
	MustExist bool
	ReadOnly  bool
	Logger    *slog.Logger
	// ErrorHandler receives runtime watcher failures which are otherwise only logged.
	ErrorHandler func(error)
}

// Storage implements core.Storage using one file per key.
type Storage struct {
	Path   string
	config Config

	mu            sync.RWMutex
	lastSeen      map[string][]byte
	watcherActive bool
}

// NewStorage creates a new filesystem-backed storage.
// It does not touch the disk until Initialize is called.
func NewStorage(config Config) *Storage {
	if config.SystemDir == "" {
		config.SystemDir = DefaultSystemDir
	}
	return &Storage{
		Path:     config.Path,
		config:   config,
		lastSeen: make(map[string][]byte),
	}
}

// Dir returns the directory holding the slot files.
func (s *Storage) Dir() string {
	return filepath.Join(s.Path, s.config.SystemDir)
}

func (s *Storage) slotPath(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("%w: %q", core.ErrInvalidKey, key)
	}
	return filepath.Join(s.Dir(), key+slotExt), nil
}

// Initialize ensures the notebook directory and the system directory exist.
func (s *Storage) Initialize(ctx context.Context) error {
	if s.config.MustExist || s.config.ReadOnly {
		info, err := os.Stat(s.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("notebook path does not exist: %s", s.Path)
		}
		if err != nil {
			return fmt.Errorf("failed to stat notebook path: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("notebook path is not a directory: %s", s.Path)
		}
	}

	if s.config.ReadOnly {
		return nil
	}

	if _, err := os.Stat(s.Dir()); os.IsNotExist(err) && !s.config.AutoInit && s.config.MustExist {
		return fmt.Errorf("not a notebook (missing %s): %s", s.config.SystemDir, s.Path)
	}

	if err := os.MkdirAll(s.Dir(), 0755); err != nil {
		return fmt.Errorf("failed to create system directory: %w", err)
	}
	return nil
}

// Get reads the blob stored under key.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	path, err := s.slotPath(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, core.ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %s: %w", key, err)
	}

	s.remember(key, data)
	return data, nil
}

// Set atomically replaces the blob stored under key.
func (s *Storage) Set(ctx context.Context, key string, data []byte) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}
	path, err := s.slotPath(key)
	if err != nil {
		return err
	}

	// Remembered before the rename so the watcher recognises its own write.
	prev, hadPrev := s.snapshot(key)
	s.remember(key, data)
	if err := writeFileAtomic(path, data, 0644, s.config.Logger); err != nil {
		if hadPrev {
			s.remember(key, prev)
		} else {
			s.forget(key)
		}
		return err
	}

	if s.config.Logger != nil {
		s.config.Logger.Debug("slot written", "key", key, "bytes", len(data))
	}
	return nil
}

// Remove deletes the slot file for key.
func (s *Storage) Remove(ctx context.Context, key string) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}
	path, err := s.slotPath(key)
	if err != nil {
		return err
	}

	s.forget(key)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove slot %s: %w", key, err)
	}
	return nil
}

// Keys lists the slots currently present, sorted.
func (s *Storage) Keys(ctx context.Context) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(s.Dir()), "*"+slotExt)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}

	keys := make([]string, 0, len(matches))
	for _, m := range matches {
		if strings.HasPrefix(m, TempFilePrefix) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(m, slotExt))
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Storage) remember(key string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen[key] = bytes.Clone(data)
}

// snapshot returns what this process last read or wrote for key.
func (s *Storage) snapshot(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.lastSeen[key]
	return data, ok
}

func (s *Storage) forget(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lastSeen, key)
}

// isKnown reports whether data matches what this process last read or wrote.
func (s *Storage) isKnown(key string, data []byte) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen, ok := s.lastSeen[key]
	return ok && bytes.Equal(seen, data)
}

var _ core.Storage = (*Storage)(nil)
var _ core.Watchable = (*Storage)(nil)
