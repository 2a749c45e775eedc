package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot"
	"github.com/aretw0/jot/pkg/export"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all notes in a portable format",
	Long:  fmt.Sprintf("Export writes every note, newest first. Formats: %s.", strings.Join(export.Formats(), ", ")),
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exporter, err := export.For(exportFormat)
		if err != nil {
			fatal("Failed to export", err)
		}

		svc, _ := openStore(jot.WithReadOnly(!ephemeral))

		var w io.Writer = os.Stdout
		if exportOutput != "" && exportOutput != "-" {
			f, err := os.Create(exportOutput)
			if err != nil {
				fatal("Failed to create output file", err)
			}
			defer f.Close()
			w = f
		}

		if err := exporter.Export(w, svc.Notes()); err != nil {
			fatal("Failed to export", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
}
