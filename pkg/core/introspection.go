package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Key            string `json:"key"`
	Loaded         bool   `json:"loaded"`
	NoteCount      int    `json:"note_count"`
	SelectedID     string `json:"selected_id,omitempty"`
	StorageType    string `json:"storage_type"`
	StrictIDs      bool   `json:"strict_ids"`
	KeepsSelection bool   `json:"preserve_selection"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	storageType := "unknown"
	if s.storage != nil {
		storageType = "storage"
		if comp, ok := s.storage.(introspection.Component); ok {
			storageType = comp.ComponentType()
		}
	}

	return ServiceState{
		Key:            s.config.Key,
		Loaded:         s.loaded,
		NoteCount:      len(s.notes),
		SelectedID:     s.selected,
		StorageType:    storageType,
		StrictIDs:      s.config.StrictIDs,
		KeepsSelection: s.config.PreserveSelection,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "note-store"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
