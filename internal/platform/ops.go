package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/jot/pkg/adapters/fs"
	"github.com/aretw0/jot/pkg/adapters/memory"
	"github.com/aretw0/jot/pkg/core"
)

// Init prepares the storage for the notebook at uri.
// The uri is adapter-specific (a directory for "fs", ignored for "memory").
func Init(uri string, opts ...Option) (core.Storage, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.storage != nil {
		if err := o.storage.Initialize(context.Background()); err != nil {
			return nil, err
		}
		return o.storage, nil
	}

	var storage core.Storage
	switch o.adapter {
	case "fs":
		storage = initFS(uri, o)
	case "memory":
		storage = memory.NewStorage()
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}

	if err := storage.Initialize(context.Background()); err != nil {
		return nil, err
	}
	return storage, nil
}

// initFS translates options into a filesystem storage configuration.
func initFS(path string, o *options) *fs.Storage {
	autoInit, _ := o.config["auto_init"].(bool)
	mustExist, _ := o.config["must_exist"].(bool)
	tempDir, _ := o.config["temp_dir"].(bool)
	readOnly, _ := o.config["read_only"].(bool)
	systemDir, _ := o.config["system_dir"].(string)
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))

	devSafety := true
	if val, ok := o.config["dev_safety"].(bool); ok {
		devSafety = val
	}
	bypassSafety := readOnly || !devSafety

	useTemp := tempDir || (IsDevRun() && !bypassSafety)
	resolvedPath := ResolvePath(path, useTemp)

	if o.logger != nil {
		if useTemp && resolvedPath != path {
			o.logger.Warn("running in SAFE MODE (Dev/Test)", "original_path", path, "resolved_path", resolvedPath)
		} else if IsDevRun() && bypassSafety && !readOnly {
			o.logger.Warn("running in UNSAFE mode (bypassing dev sandbox)", "path", resolvedPath)
		}
	}

	return fs.NewStorage(fs.Config{
		Path:         resolvedPath,
		SystemDir:    systemDir,
		AutoInit:     autoInit,
		MustExist:    mustExist || (!autoInit && !useTemp),
		ReadOnly:     readOnly,
		Logger:       o.logger,
		ErrorHandler: errorHandler,
	})
}

// Reset clears the notes slot of the notebook at uri.
func Reset(uri string, opts ...Option) error {
	storage, err := Init(uri, opts...)
	if err != nil {
		return err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return storage.Remove(context.Background(), o.key)
}
