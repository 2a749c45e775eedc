package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Config holds the behaviour knobs of a Service.
type Config struct {
	// Key is the storage slot holding the blob. Defaults to DefaultKey.
	Key    string
	Logger *slog.Logger
	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
	// NewID returns a fresh note ID. Defaults to a random UUID.
	NewID func() string
	// StrictIDs makes Update and Delete report ErrNotFound for unknown IDs
	// instead of ignoring them.
	StrictIDs bool
	// PreserveSelection keeps the Selection when Delete removes a different note.
	PreserveSelection bool
}

// Service is the note store: an ordered sequence of notes, newest first,
// mirrored to a storage slot after every mutation.
type Service struct {
	mu       sync.RWMutex
	storage  Storage
	config   Config
	logger   *slog.Logger
	notes    []Note
	selected string
	loaded   bool
}

// NewService creates a new Service. Call Load before use.
func NewService(storage Storage, config Config) *Service {
	if config.Key == "" {
		config.Key = DefaultKey
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}
	if config.NewID == nil {
		config.NewID = uuid.NewString
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{storage: storage, config: config, logger: logger}
}

// Load replaces the in-memory sequence with the persisted one.
// A missing slot yields an empty sequence; a malformed blob is an error.
func (s *Service) Load(ctx context.Context) error {
	data, err := s.storage.Get(ctx, s.config.Key)
	if errors.Is(err, ErrSlotEmpty) {
		s.mu.Lock()
		s.notes, s.selected, s.loaded = nil, "", true
		s.mu.Unlock()
		s.logger.Debug("no persisted notes, starting empty", "key", s.config.Key)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read notes: %w", err)
	}

	notes, err := DecodeNotes(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.notes, s.selected, s.loaded = notes, "", true
	s.mu.Unlock()
	s.logger.Debug("notes loaded", "key", s.config.Key, "count", len(notes))
	return nil
}

// Persist writes the full sequence to the storage slot.
func (s *Service) Persist(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.write(ctx, s.notes)
}

// write must be called with s.mu held.
func (s *Service) write(ctx context.Context, notes []Note) error {
	data, err := EncodeNotes(notes)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}
	if err := s.storage.Set(ctx, s.config.Key, data); err != nil {
		return fmt.Errorf("failed to persist notes: %w", err)
	}
	return nil
}

// commit persists next and, on success, makes it the current sequence.
// Must be called with s.mu held for writing.
func (s *Service) commit(ctx context.Context, next []Note) error {
	if err := s.write(ctx, next); err != nil {
		return err
	}
	s.notes = next
	return nil
}

func (s *Service) now() time.Time {
	return Normalize(s.config.Clock())
}

func (s *Service) indexOf(id string) int {
	return slices.IndexFunc(s.notes, func(n Note) bool { return n.ID == id })
}

// Create prepends a new empty note and selects it.
func (s *Service) Create(ctx context.Context) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note := Note{
		ID:           s.config.NewID(),
		LastModified: s.now(),
	}

	next := make([]Note, 0, len(s.notes)+1)
	next = append(next, note)
	next = append(next, s.notes...)

	if err := s.commit(ctx, next); err != nil {
		return Note{}, err
	}
	s.selected = note.ID
	s.logger.Debug("note created", "id", note.ID)
	return note, nil
}

// Update replaces the title and content of the note with the same ID and
// refreshes its LastModified. The updated note becomes the Selection.
// Unknown IDs leave the sequence untouched.
func (s *Service) Update(ctx context.Context, note Note) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(note.ID)
	if i < 0 {
		if s.config.StrictIDs {
			return Note{}, fmt.Errorf("%w: %s", ErrNotFound, note.ID)
		}
		s.logger.Debug("update ignored, unknown id", "id", note.ID)
		return Note{}, nil
	}

	updated := s.notes[i]
	updated.Title = note.Title
	updated.Content = note.Content
	if now := s.now(); now.After(updated.LastModified) {
		updated.LastModified = now
	}

	next := slices.Clone(s.notes)
	next[i] = updated

	if err := s.commit(ctx, next); err != nil {
		return Note{}, err
	}
	s.selected = updated.ID
	return updated, nil
}

// Delete removes the note with the given ID and clears the Selection.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		if s.config.StrictIDs {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		s.clearSelectionFor(id)
		s.logger.Debug("delete ignored, unknown id", "id", id)
		return nil
	}

	next := slices.Delete(slices.Clone(s.notes), i, i+1)
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.clearSelectionFor(id)
	s.logger.Debug("note deleted", "id", id)
	return nil
}

// clearSelectionFor applies the selection rule of a delete of id.
// Must be called with s.mu held for writing.
func (s *Service) clearSelectionFor(id string) {
	if !s.config.PreserveSelection || s.selected == id {
		s.selected = ""
	}
}

// Select makes the note with the given ID the Selection.
// It reports false and leaves the Selection unchanged for unknown IDs.
func (s *Service) Select(id string) (Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Note{}, false
	}
	s.selected = id
	return s.notes[i], true
}

// Selection returns the currently selected note, if any.
func (s *Service) Selection() (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected == "" {
		return Note{}, false
	}
	i := s.indexOf(s.selected)
	if i < 0 {
		return Note{}, false
	}
	return s.notes[i], true
}

// ClearSelection drops the Selection without touching the sequence.
func (s *Service) ClearSelection() {
	s.mu.Lock()
	s.selected = ""
	s.mu.Unlock()
}

// Notes returns a copy of the sequence, newest first.
func (s *Service) Notes() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.notes)
}

// Get returns the note with the given ID.
func (s *Service) Get(id string) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return Note{}, false
	}
	return s.notes[i], true
}

// Len returns the number of notes.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// Key returns the storage slot this Service persists to.
func (s *Service) Key() string {
	return s.config.Key
}

// Watch observes external changes to the slot if the storage supports it.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.storage.(Watchable)
	if !ok {
		return nil, fmt.Errorf("%w: watch", ErrUnsupported)
	}
	return w.Watch(ctx, s.config.Key)
}
