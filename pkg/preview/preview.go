// Package preview renders the short, display-only forms of a note used by
// list views: markup-free snippets and human timestamps.
package preview

import (
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
)

const (
	// EmptyContent is shown for notes whose content has no visible text.
	EmptyContent = "Empty note..."
	// Untitled is shown for notes with an empty title.
	Untitled = "Untitled"
	// StampLayout formats timestamps as e.g. "Mar 4, 09:15 AM".
	StampLayout = "Jan 2, 03:04 PM"
)

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// StripMarkup removes anything that looks like a markup tag.
// It is for display only; stored content is never altered.
func StripMarkup(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// Title returns the note title or the Untitled placeholder.
func Title(title string) string {
	if strings.TrimSpace(title) == "" {
		return Untitled
	}
	return title
}

// Snippet returns the first non-blank line of the stripped content,
// truncated to width cells (0 means no limit).
func Snippet(content string, width int) string {
	text := StripMarkup(content)
	line := ""
	for l := range strings.Lines(text) {
		if l = strings.TrimSpace(l); l != "" {
			line = l
			break
		}
	}
	if line == "" {
		return EmptyContent
	}
	return Truncate(line, width)
}

// Truncate shortens s to at most width terminal cells, marking the cut with
// an ellipsis. Wide runes such as CJK and emoji count as two cells.
func Truncate(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// Stamp formats t in the local time zone.
func Stamp(t time.Time) string {
	return t.Local().Format(StampLayout)
}
