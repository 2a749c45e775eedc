package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every note in the notebook",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if !resetForce {
			fmt.Println("Error: reset deletes all notes, pass --force to confirm")
			return
		}

		root := notebookRoot()
		if err := jot.Reset(root, jot.WithMustExist(true), jot.WithLogger(slog.Default())); err != nil {
			fatal("Failed to reset notebook", err)
		}

		fmt.Println("Removed all notes from", root)
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "Confirm deletion")
}
