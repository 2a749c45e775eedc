package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/aretw0/jot"
	"github.com/aretw0/jot/pkg/export"
	"github.com/aretw0/jot/pkg/preview"
)

var (
	listJSON  bool
	listMatch string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, newest first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if listMatch != "" && !doublestar.ValidatePattern(listMatch) {
			fatal("Invalid --match pattern", doublestar.ErrBadPattern)
		}

		svc, _ := openStore(jot.WithReadOnly(!ephemeral))

		filtered := filterNotes(svc.Notes(), listMatch)

		if listJSON {
			if err := (export.JSONExporter{}).Export(os.Stdout, filtered); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		printNotes(os.Stdout, filtered)
	},
}

// filterNotes keeps the notes whose title matches the glob pattern.
// Untitled notes match as "Untitled". An empty pattern keeps everything.
func filterNotes(notes []jot.Note, pattern string) []jot.Note {
	if pattern == "" {
		return notes
	}
	var filtered []jot.Note
	for _, n := range notes {
		if ok, _ := doublestar.Match(pattern, preview.Title(n.Title)); ok {
			filtered = append(filtered, n)
		}
	}
	return filtered
}

func printNotes(w io.Writer, notes []jot.Note) {
	for _, n := range notes {
		fmt.Fprintf(w, "%s  %s  %s\n", n.ID, preview.Stamp(n.LastModified), preview.Truncate(preview.Title(n.Title), 40))
		fmt.Fprintf(w, "    %s\n", preview.Snippet(n.Content, 72))
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listMatch, "match", "", "Only list notes whose title matches this glob")
}
