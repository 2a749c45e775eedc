package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print changes made to the notebook by other processes",
	Long:  `Watch blocks until interrupted, printing one line per change to the notes slot.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, root := openStore(jot.WithReadOnly(!ephemeral), jot.WithWatcherErrorHandler(func(err error) {
			fmt.Println("watcher error:", err)
		}))

		ctx, cancel := signalContext()
		defer cancel()

		events, err := svc.Watch(ctx)
		if err != nil {
			fatal("Failed to watch notebook", err)
		}

		fmt.Println("Watching", root, "(ctrl+c to stop)")
		for e := range events {
			fmt.Println(e)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
