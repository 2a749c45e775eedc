package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a jot notebook",
	Long: `Initialize a new notebook by creating the .jot system directory.
Unlike other commands, init never walks up to an enclosing notebook.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		root := dir
		if root == "" {
			root = os.Getenv(dirEnv)
		}
		if root == "" {
			cwd, err := os.Getwd()
			if err != nil {
				fatal("Failed to get CWD", err)
			}
			root = cwd
		}

		if _, err := jot.Init(root, jot.WithAutoInit(true), jot.WithLogger(slog.Default())); err != nil {
			fatal("Failed to initialize notebook", err)
		}

		fmt.Println("Initialized empty jot notebook in", root)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
