package fs

import (
	"maps"
	"slices"

	"github.com/aretw0/introspection"
)

// StorageState exposes internal state for observability.
type StorageState struct {
	Path          string   `json:"path"`
	SystemDir     string   `json:"system_dir"`
	ReadOnly      bool     `json:"read_only"`
	WatcherActive bool     `json:"watcher_active"`
	TrackedSlots  []string `json:"tracked_slots,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Storage) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tracked := slices.Sorted(maps.Keys(s.lastSeen))

	return StorageState{
		Path:          s.Path,
		SystemDir:     s.config.SystemDir,
		ReadOnly:      s.config.ReadOnly,
		WatcherActive: s.watcherActive,
		TrackedSlots:  tracked,
	}
}

// ComponentType implements introspection.Component.
func (s *Storage) ComponentType() string {
	return "fs-storage"
}

var _ introspection.Introspectable = (*Storage)(nil)
var _ introspection.Component = (*Storage)(nil)
