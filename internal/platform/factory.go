package platform

import (
	"context"

	"github.com/aretw0/jot/pkg/core"
)

// New opens the notebook at uri and returns a loaded note store.
// A malformed persisted blob is returned as an error wrapping core.ErrMalformedBlob.
func New(uri string, opts ...Option) (*core.Service, error) {
	storage, err := Init(uri, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	strict, _ := o.config["strict_ids"].(bool)
	preserve, _ := o.config["preserve_selection"].(bool)

	service := core.NewService(storage, core.Config{
		Key:               o.key,
		Logger:            o.logger,
		Clock:             o.clock,
		NewID:             o.newID,
		StrictIDs:         strict,
		PreserveSelection: preserve,
	})

	if err := service.Load(context.Background()); err != nil {
		return nil, err
	}
	return service, nil
}
