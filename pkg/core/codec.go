package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is the ISO-8601 layout used for LastModified in the blob.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// record is the persisted layout of a single note.
type record struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	LastModified string `json:"lastModified"`
}

// Normalize truncates t to the precision the blob can represent.
func Normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// FormatTimestamp renders t the way it is persisted.
func FormatTimestamp(t time.Time) string {
	return Normalize(t).Format(TimestampLayout)
}

// EncodeNotes serializes the full sequence into a blob.
// The same sequence always encodes to the same bytes.
func EncodeNotes(notes []Note) ([]byte, error) {
	records := make([]record, len(notes))
	for i, n := range notes {
		records[i] = record{
			ID:           n.ID,
			Title:        n.Title,
			Content:      n.Content,
			LastModified: FormatTimestamp(n.LastModified),
		}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	// Markup in titles and content is stored as typed.
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(records); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// DecodeNotes parses a blob produced by EncodeNotes.
// Any structural problem is reported as ErrMalformedBlob.
func DecodeNotes(data []byte) ([]Note, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBlob, err)
	}

	notes := make([]Note, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("%w: entry %d has no id", ErrMalformedBlob, i)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrMalformedBlob, r.ID)
		}
		seen[r.ID] = struct{}{}

		ts, err := time.Parse(time.RFC3339Nano, r.LastModified)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %q: %v", ErrMalformedBlob, r.ID, err)
		}

		notes = append(notes, Note{
			ID:           r.ID,
			Title:        r.Title,
			Content:      r.Content,
			LastModified: Normalize(ts),
		})
	}
	return notes, nil
}
