// Package core holds the note domain: the Note entity, the Storage port
// and the Service that keeps the ordered note sequence in sync with storage.
package core

import "time"

// Note is the central entity of the domain.
// It represents a single user-authored text record.
type Note struct {
	ID           string
	Title        string
	Content      string
	LastModified time.Time
}

// EventType represents the type of change observed in storage.
type EventType string

const (
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a storage slot made outside the Service.
type Event struct {
	Type      EventType
	Key       string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return string(e.Type) + " " + e.Key
}
