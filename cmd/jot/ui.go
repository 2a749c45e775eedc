package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot"
	"github.com/aretw0/jot/internal/ui"
	"github.com/aretw0/jot/pkg/adapters/fs"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the notebook in the terminal view",
	Long: `Open the two-pane view: notes on the left, the selected note on the right.
Every keystroke is saved immediately. With -v, debug logs go to .jot/debug.log.`,
	Args: cobra.NoArgs,
	Run:  runUI,
}

func runUI(cmd *cobra.Command, args []string) {
	logger, closeLog := uiLogger(notebookRoot())
	defer closeLog()

	svc, _ := openStore(
		jot.WithLogger(logger),
		jot.WithWatcherErrorHandler(func(err error) {
			logger.Error("watcher failed", "error", err)
		}),
	)

	ctx, cancel := signalContext()
	defer cancel()

	opts := []ui.Option{ui.WithLogger(logger)}
	if !ephemeral {
		events, err := svc.Watch(ctx)
		if err != nil {
			logger.Warn("external changes will not be reported", "error", err)
		} else {
			opts = append(opts, ui.WithEvents(events))
		}
	}

	if err := ui.Run(ctx, svc, opts...); err != nil {
		fatal("UI failed", err)
	}
}

// uiLogger keeps the terminal clean: logs are discarded unless verbose,
// in which case they are appended to the notebook's debug log.
func uiLogger(root string) (*slog.Logger, func()) {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	if !verbose || ephemeral {
		return discard, func() {}
	}

	path := filepath.Join(root, fs.DefaultSystemDir, "debug.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		slog.Warn("cannot open debug log", "path", path, "error", err)
		return discard, func() {}
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
