package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	newTitle   string
	newContent string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a note",
	Long:  `Create a note at the top of the list and print its ID.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openStore()
		ctx := context.Background()

		note, err := svc.Create(ctx)
		if err != nil {
			fatal("Failed to create note", err)
		}

		if newTitle != "" || newContent != "" {
			note.Title, note.Content = newTitle, newContent
			if note, err = svc.Update(ctx, note); err != nil {
				fatal("Failed to save note", err)
			}
		}

		fmt.Println(note.ID)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVar(&newTitle, "title", "", "Note title")
	newCmd.Flags().StringVar(&newContent, "content", "", "Note content")
}
