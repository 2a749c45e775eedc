package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aretw0/jot"
	"github.com/aretw0/jot/pkg/core"
)

// dirEnv names the environment variable holding the notebook root.
const dirEnv = "JOT_DIR"

var (
	verbose   bool
	dir       string
	ephemeral bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jot",
	Short: "A local notebook with a two-pane terminal view",
	Long: `Jot keeps short text notes in a single slot under .jot/ and lets you
browse and edit them in a list + editor terminal view, or script them
through subcommands.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env file is not an error.
		_ = godotenv.Load()

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
	Run: func(cmd *cobra.Command, args []string) {
		runUI(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dir, "dir", "", "Notebook root (defaults to $"+dirEnv+" or the nearest directory holding .jot)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep notes in memory only")
}

// resolveRoot picks the notebook root: the flag, then the environment,
// then the nearest ancestor of cwd holding a system directory.
// It falls back to cwd when no notebook is found.
func resolveRoot(flag, env, cwd string) string {
	if flag != "" {
		return flag
	}
	if env != "" {
		return env
	}
	if root, err := jot.FindRoot(cwd); err == nil {
		return root
	}
	return cwd
}

// notebookRoot resolves the root for the current invocation.
func notebookRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		fatal("Failed to get CWD", err)
	}
	return resolveRoot(dir, os.Getenv(dirEnv), cwd)
}

// openStore opens and loads the notebook selected by the global flags.
func openStore(extra ...jot.Option) (*core.Service, string) {
	root := notebookRoot()

	opts := []jot.Option{
		jot.WithLogger(slog.Default()),
	}
	if ephemeral {
		opts = append(opts, jot.WithAdapter("memory"))
	} else {
		opts = append(opts, jot.WithMustExist(true))
	}
	opts = append(opts, extra...)

	svc, err := jot.New(root, opts...)
	if err != nil {
		if errors.Is(err, core.ErrMalformedBlob) {
			fatal("Stored notes are unreadable", err)
		}
		fatal("Failed to open notebook", err)
	}
	return svc, root
}

// signalContext is cancelled on interrupt.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
