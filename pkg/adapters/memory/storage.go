// Package memory implements a process-local core.Storage.
// Nothing survives the process; it backs tests and ephemeral sessions.
package memory

import (
	"bytes"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/jot/pkg/core"
)

// Storage is a map-backed core.Storage safe for concurrent use.
type Storage struct {
	mu       sync.RWMutex
	slots    map[string][]byte
	watchers map[string][]chan core.Event
}

// NewStorage creates an empty in-memory storage.
func NewStorage() *Storage {
	return &Storage{
		slots:    make(map[string][]byte),
		watchers: make(map[string][]chan core.Event),
	}
}

// Initialize implements core.Storage.
func (s *Storage) Initialize(ctx context.Context) error { return nil }

// Get implements core.Storage.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, core.ErrInvalidKey
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.slots[key]
	if !ok {
		return nil, core.ErrSlotEmpty
	}
	return bytes.Clone(data), nil
}

// Set implements core.Storage.
func (s *Storage) Set(ctx context.Context, key string, data []byte) error {
	if key == "" {
		return core.ErrInvalidKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[key] = bytes.Clone(data)
	s.notify(key, core.EventModify)
	return nil
}

// Remove implements core.Storage.
func (s *Storage) Remove(ctx context.Context, key string) error {
	if key == "" {
		return core.ErrInvalidKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.slots[key]; !ok {
		return nil
	}
	delete(s.slots, key)
	s.notify(key, core.EventDelete)
	return nil
}

// Watch emits an event for every Set and Remove on key until ctx is done.
// Events are dropped when the subscriber falls behind.
func (s *Storage) Watch(ctx context.Context, key string) (<-chan core.Event, error) {
	ch := make(chan core.Event, 16)

	s.mu.Lock()
	s.watchers[key] = append(s.watchers[key], ch)
	s.mu.Unlock()

	lifecycle.Go(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		s.unsubscribe(key, ch)
		return nil
	})

	return ch, nil
}

// unsubscribe detaches ch from key and closes it.
func (s *Storage) unsubscribe(key string, ch chan core.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers[key] = slices.DeleteFunc(s.watchers[key], func(c chan core.Event) bool { return c == ch })
	close(ch)
}

// notify must be called with s.mu held.
func (s *Storage) notify(key string, t core.EventType) {
	e := core.Event{Type: t, Key: key, Timestamp: time.Now().Unix()}
	for _, ch := range s.watchers[key] {
		select {
		case ch <- e:
		default:
		}
	}
}

// ComponentType implements introspection.Component.
func (s *Storage) ComponentType() string {
	return "memory-storage"
}

var _ core.Storage = (*Storage)(nil)
var _ core.Watchable = (*Storage)(nil)
