package core_test

import (
	"errors"
	"testing"
	"time"

	"github.com/aretw0/jot/pkg/core"
)

func TestEncodeNotes_Layout(t *testing.T) {
	notes := []core.Note{{
		ID:           "a1",
		Title:        "Hello",
		Content:      "<p>world</p>",
		LastModified: time.Date(2024, 1, 2, 3, 4, 5, 678_900_000, time.UTC),
	}}

	data, err := core.EncodeNotes(notes)
	if err != nil {
		t.Fatalf("EncodeNotes failed: %v", err)
	}

	want := `[{"id":"a1","title":"Hello","content":"<p>world</p>","lastModified":"2024-01-02T03:04:05.678Z"}]`
	if string(data) != want {
		t.Errorf("unexpected blob:\n got %s\nwant %s", data, want)
	}
}

func TestNotes_BlobIsByteStable(t *testing.T) {
	// Written by a browser: raw markup, non-ASCII text and escaped control characters.
	blob := `[{"id":"n2","title":"Café ☕","content":"<b>bold</b> & <i>more</i>\nline two\t\"quoted\"","lastModified":"2024-03-04T09:15:00.123Z"},` +
		`{"id":"n1","title":"","content":"","lastModified":"2024-03-03T08:00:00.000Z"}]`

	notes, err := core.DecodeNotes([]byte(blob))
	if err != nil {
		t.Fatalf("DecodeNotes failed: %v", err)
	}
	if got := notes[0].Content; got != "<b>bold</b> & <i>more</i>\nline two\t\"quoted\"" {
		t.Errorf("unexpected content %q", got)
	}

	data, err := core.EncodeNotes(notes)
	if err != nil {
		t.Fatalf("EncodeNotes failed: %v", err)
	}
	if string(data) != blob {
		t.Errorf("blob changed on re-encode:\n got %s\nwant %s", data, blob)
	}
}

func TestEncodeNotes_Empty(t *testing.T) {
	data, err := core.EncodeNotes(nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Errorf("expected [], got %s", data)
	}
}

func TestDecodeNotes(t *testing.T) {
	t.Run("Accepts Offsets", func(t *testing.T) {
		notes, err := core.DecodeNotes([]byte(`[{"id":"a","title":"","content":"","lastModified":"2024-01-02T05:04:05+02:00"}]`))
		if err != nil {
			t.Fatalf("DecodeNotes failed: %v", err)
		}
		want := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		if !notes[0].LastModified.Equal(want) {
			t.Errorf("expected %v, got %v", want, notes[0].LastModified)
		}
	})

	t.Run("Null Is Empty", func(t *testing.T) {
		notes, err := core.DecodeNotes([]byte(`null`))
		if err != nil {
			t.Fatal(err)
		}
		if len(notes) != 0 {
			t.Errorf("expected no notes, got %d", len(notes))
		}
	})

	malformed := map[string]string{
		"syntax":        `[{"id":`,
		"not an array":  `{"id":"a"}`,
		"missing id":    `[{"title":"x","lastModified":"2024-01-02T03:04:05.000Z"}]`,
		"duplicate id":  `[{"id":"a","lastModified":"2024-01-02T03:04:05.000Z"},{"id":"a","lastModified":"2024-01-02T03:04:05.000Z"}]`,
		"bad timestamp": `[{"id":"a","lastModified":"yesterday"}]`,
	}
	for name, blob := range malformed {
		t.Run("Rejects "+name, func(t *testing.T) {
			_, err := core.DecodeNotes([]byte(blob))
			if !errors.Is(err, core.ErrMalformedBlob) {
				t.Errorf("expected ErrMalformedBlob, got %v", err)
			}
		})
	}
}
