// Package jot is the Composition Root for the jot note store.
//
// It connects the core note store (pkg/core) with the storage adapters
// (pkg/adapters/fs, pkg/adapters/memory) using functional options.
//
// A notebook is a directory holding a hidden ".jot" system directory. The
// whole note sequence lives in a single slot, "notes", serialized as a JSON
// array and rewritten after every create, update or delete.
//
// Usage:
//
//	svc, err := jot.New("./notebook",
//		jot.WithAutoInit(true),
//		jot.WithLogger(logger),
//	)
//
//	note, err := svc.Create(ctx)
//	note.Title = "Groceries"
//	note, err = svc.Update(ctx, note)
package jot
