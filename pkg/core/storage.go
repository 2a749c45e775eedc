package core

import "context"

// DefaultKey is the storage slot holding the serialized note sequence.
const DefaultKey = "notes"

// Storage defines the contract for a key-value slot store.
// A slot holds one opaque blob that is always replaced as a whole.
type Storage interface {
	// Get returns the blob stored under key, or ErrSlotEmpty.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the blob stored under key.
	Set(ctx context.Context, key string, data []byte) error

	// Remove clears the slot. Removing an empty slot is not an error.
	Remove(ctx context.Context, key string) error

	// Initialize ensures the underlying storage is ready (e.g. create directories).
	Initialize(ctx context.Context) error
}

// Watchable defines an interface for storages that report external changes.
type Watchable interface {
	// Watch emits events for changes to key until ctx is cancelled.
	Watch(ctx context.Context, key string) (<-chan Event, error)
}
