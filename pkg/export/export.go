// Package export writes a note sequence in human-facing formats.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/jot/pkg/core"
)

// Exporter defines how to write notes in a specific format.
type Exporter interface {
	// Export writes notes to w, preserving their order.
	Export(w io.Writer, notes []core.Note) error
}

// DefaultExporters returns the standard set of exporters keyed by format name.
func DefaultExporters() map[string]Exporter {
	return map[string]Exporter{
		"json":     JSONExporter{},
		"yaml":     YAMLExporter{},
		"markdown": MarkdownExporter{},
		"md":       MarkdownExporter{},
	}
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	exporters := DefaultExporters()
	names := make([]string, 0, len(exporters))
	for name := range exporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// For resolves an exporter by format name.
func For(format string) (Exporter, error) {
	e, ok := DefaultExporters()[format]
	if !ok {
		return nil, fmt.Errorf("unknown export format %q (available: %v)", format, Formats())
	}
	return e, nil
}

// entry is the blob record layout, shared by the structured formats.
type entry struct {
	ID           string `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	Content      string `json:"content" yaml:"content"`
	LastModified string `json:"lastModified" yaml:"lastModified"`
}

// frontmatter is the metadata block of a markdown document.
type frontmatter struct {
	ID           string `yaml:"id"`
	Title        string `yaml:"title"`
	LastModified string `yaml:"lastModified"`
}

func toEntry(n core.Note) entry {
	return entry{
		ID:           n.ID,
		Title:        n.Title,
		Content:      n.Content,
		LastModified: core.FormatTimestamp(n.LastModified),
	}
}

// --- JSON Exporter ---

// JSONExporter writes an indented JSON array with the persisted field layout.
type JSONExporter struct{}

func (JSONExporter) Export(w io.Writer, notes []core.Note) error {
	entries := make([]entry, len(notes))
	for i, n := range notes {
		entries[i] = toEntry(n)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(entries)
}

// --- YAML Exporter ---

// YAMLExporter writes a YAML sequence of notes.
type YAMLExporter struct{}

func (YAMLExporter) Export(w io.Writer, notes []core.Note) error {
	entries := make([]entry, len(notes))
	for i, n := range notes {
		entries[i] = toEntry(n)
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return encoder.Close()
}

// --- Markdown Exporter ---

// MarkdownExporter writes one document per note: YAML frontmatter with the
// metadata followed by the raw content.
type MarkdownExporter struct{}

func (MarkdownExporter) Export(w io.Writer, notes []core.Note) error {
	var buf bytes.Buffer
	for i, n := range notes {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString("---\n")
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		fm := frontmatter{ID: n.ID, Title: n.Title, LastModified: core.FormatTimestamp(n.LastModified)}
		if err := encoder.Encode(fm); err != nil {
			return fmt.Errorf("failed to encode frontmatter for %s: %w", n.ID, err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to encode frontmatter for %s: %w", n.ID, err)
		}
		buf.WriteString("---\n")
		buf.WriteString(n.Content)
		if len(n.Content) > 0 && n.Content[len(n.Content)-1] != '\n' {
			buf.WriteString("\n")
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}
