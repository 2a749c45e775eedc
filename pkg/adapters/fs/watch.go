package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/jot/pkg/core"
)

// Watch reports changes to the slot for key made by other processes.
// Writes performed through this Storage are filtered out.
// The returned channel is closed when ctx is cancelled.
func (s *Storage) Watch(ctx context.Context, key string) (<-chan core.Event, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	path, err := s.slotPath(key)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(s.Dir()); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.Dir(), err)
	}

	events := make(chan core.Event, 16)
	s.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer s.setWatcherActive(false)
		defer watcher.Close()
		if err := s.watchLoop(ctx, watcher, key, path, events); err != nil {
			s.handleWatchError(err)
		}
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		s.handleWatchError(fmt.Errorf("watcher panic: %w", err))
	}))

	return events, nil
}

func (s *Storage) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, key, path string, events chan<- core.Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Clean(event.Name) != path || strings.HasPrefix(filepath.Base(event.Name), TempFilePrefix) {
				continue
			}
			eType := s.classify(key, path, event)
			if eType == "" {
				continue
			}
			if s.config.Logger != nil {
				s.config.Logger.Debug("external change", "key", key, "type", eType)
			}
			select {
			case events <- core.Event{Type: eType, Key: key, Timestamp: time.Now().Unix()}:
			case <-ctx.Done():
				return nil
			}

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			s.handleWatchError(wErr)
		}
	}
}

// classify maps a filesystem event on the slot file to a core event type.
// It returns "" for changes this process made itself.
func (s *Storage) classify(key, path string, event fsnotify.Event) core.EventType {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
			return ""
		}
		s.mu.RLock()
		_, tracked := s.lastSeen[key]
		s.mu.RUnlock()
		if !tracked {
			return ""
		}
		s.forget(key)
		return core.EventDelete
	}
	if err != nil {
		s.handleWatchError(fmt.Errorf("failed to read %s: %w", path, err))
		return ""
	}

	if s.isKnown(key, data) {
		return ""
	}
	s.remember(key, data)
	return core.EventModify
}

func (s *Storage) handleWatchError(err error) {
	if s.config.Logger != nil {
		s.config.Logger.Error("watcher error", "error", err)
	}
	if s.config.ErrorHandler != nil {
		s.config.ErrorHandler(err)
	}
}

func (s *Storage) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}
