package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot"
	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/export"
	"github.com/aretw0/jot/pkg/preview"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openStore(jot.WithReadOnly(!ephemeral))

		note, ok := svc.Get(args[0])
		if !ok {
			fatal("Failed to show note", fmt.Errorf("%s: %w", args[0], core.ErrNotFound))
		}

		if showJSON {
			if err := (export.JSONExporter{}).Export(os.Stdout, []jot.Note{note}); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		fmt.Printf("# %s\n", preview.Title(note.Title))
		fmt.Printf("%s · %s\n\n", note.ID, preview.Stamp(note.LastModified))
		fmt.Println(note.Content)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
}
