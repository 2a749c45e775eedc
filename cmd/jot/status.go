package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/jot"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the state of the notebook and its storage as JSON",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		root := notebookRoot()

		opts := []jot.Option{jot.WithLogger(slog.Default())}
		if ephemeral {
			opts = append(opts, jot.WithAdapter("memory"))
		} else {
			opts = append(opts, jot.WithReadOnly(true))
		}

		storage, err := jot.Init(root, opts...)
		if err != nil {
			fatal("Failed to open notebook", err)
		}
		svc, err := jot.New(root, jot.WithStorage(storage), jot.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to load notes", err)
		}

		report := map[string]any{}
		for _, c := range []any{svc, storage} {
			intro, ok := c.(introspection.Introspectable)
			if !ok {
				continue
			}
			name := "component"
			if comp, ok := c.(introspection.Component); ok {
				name = comp.ComponentType()
			}
			report[name] = intro.State()
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			fatal("Error encoding JSON", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
