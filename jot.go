package jot

import (
	"log/slog"
	"time"

	"github.com/aretw0/jot/internal/platform"
	"github.com/aretw0/jot/pkg/core"
)

// --- Types ---

// Note is a public alias for the core note entity.
type Note = core.Note

// Store is a public alias for the note store.
type Store = core.Service

// --- Configuration ---

// Option defines a functional option for configuring jot.
type Option = platform.Option

// WithAutoInit creates the notebook if it does not exist yet.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithMustExist ensures the notebook must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDevSafety controls the temp-dir sandbox applied under `go run`/`go test`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithReadOnly opens the notebook without allowing writes.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithSystemDir sets the hidden directory name (e.g. ".jot").
func WithSystemDir(name string) Option {
	return platform.WithSystemDir(name)
}

// WithStrictIDs reports core.ErrNotFound for updates and deletes of unknown IDs.
func WithStrictIDs(strict bool) Option {
	return platform.WithStrictIDs(strict)
}

// WithPreserveSelection keeps the selection when another note is deleted.
func WithPreserveSelection(preserve bool) Option {
	return platform.WithPreserveSelection(preserve)
}

// WithWatcherErrorHandler registers a callback for watcher failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStorage allows injecting a custom storage adapter.
func WithStorage(s core.Storage) Option {
	return platform.WithStorage(s)
}

// WithAdapter selects the storage adapter by name ("fs" or "memory").
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithKey sets the storage slot holding the notes.
func WithKey(key string) Option {
	return platform.WithKey(key)
}

// WithClock overrides the time source.
func WithClock(clock func() time.Time) Option {
	return platform.WithClock(clock)
}

// WithIDGenerator overrides the note ID generator.
func WithIDGenerator(fn func() string) Option {
	return platform.WithIDGenerator(fn)
}

// --- Factory ---

// New opens a notebook and loads its notes.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init prepares the storage of a notebook without loading it.
func Init(path string, opts ...Option) (core.Storage, error) {
	return platform.Init(path, opts...)
}

// Reset clears all persisted notes of a notebook.
func Reset(path string, opts ...Option) error {
	return platform.Reset(path, opts...)
}

// --- Safety & Utils ---

// ResolvePath determines the actual notebook path based on safety rules.
func ResolvePath(userPath string, forceTemp bool) string {
	return platform.ResolvePath(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}

// FindRoot looks upwards for the directory holding the ".jot" system directory.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
