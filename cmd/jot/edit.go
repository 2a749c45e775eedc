package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot"
)

var (
	editTitle   string
	editContent string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Change the title or content of a note",
	Long:  `Edit replaces the fields given as flags and keeps the others.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		titleSet := cmd.Flags().Changed("title")
		contentSet := cmd.Flags().Changed("content")
		if !titleSet && !contentSet {
			fmt.Println("Error: nothing to change, pass --title and/or --content")
			cmd.Usage()
			return
		}

		svc, _ := openStore(jot.WithStrictIDs(true))

		note, ok := svc.Get(args[0])
		if !ok {
			fatal("Failed to edit note", fmt.Errorf("unknown note %s", args[0]))
		}
		if titleSet {
			note.Title = editTitle
		}
		if contentSet {
			note.Content = editContent
		}

		if _, err := svc.Update(context.Background(), note); err != nil {
			fatal("Failed to save note", err)
		}

		fmt.Printf("Note '%s' saved.\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editContent, "content", "", "New content")
}
