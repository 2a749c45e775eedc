package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/aretw0/jot/pkg/adapters/memory"
	"github.com/aretw0/jot/pkg/core"
)

func TestStorage_CRUD(t *testing.T) {
	s := memory.NewStorage()
	ctx := context.Background()

	_, err := s.Get(ctx, "notes")
	assert.ErrorIs(t, err, core.ErrSlotEmpty)

	blob := []byte(`[]`)
	require.NoError(t, s.Set(ctx, "notes", blob))
	blob[0] = 'x'

	got, err := s.Get(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got, "stored blob must not alias the caller's slice")

	require.NoError(t, s.Remove(ctx, "notes"))
	_, err = s.Get(ctx, "notes")
	assert.ErrorIs(t, err, core.ErrSlotEmpty)

	assert.ErrorIs(t, s.Set(ctx, "", nil), core.ErrInvalidKey)
}

func TestStorage_Watch(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := memory.NewStorage()
	ctx, cancel := context.WithCancel(context.Background())

	events, err := s.Watch(ctx, "notes")
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "other", []byte(`[]`)))
	require.NoError(t, s.Set(ctx, "notes", []byte(`[]`)))
	require.NoError(t, s.Remove(ctx, "notes"))

	select {
	case e := <-events:
		assert.Equal(t, core.EventModify, e.Type)
		assert.Equal(t, "notes", e.Key)
	case <-time.After(time.Second):
		t.Fatal("expected a modify event")
	}
	select {
	case e := <-events:
		assert.Equal(t, core.EventDelete, e.Type)
	case <-time.After(time.Second):
		t.Fatal("expected a delete event")
	}

	cancel()
	_, open := <-events
	assert.False(t, open, "channel must close after cancel")
}

func TestStorage_Watch_CancelDetachesOnlyThatSubscriber(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := memory.NewStorage()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	firstCtx, cancelFirst := context.WithCancel(ctx)

	first, err := s.Watch(firstCtx, "notes")
	require.NoError(t, err)
	second, err := s.Watch(ctx, "notes")
	require.NoError(t, err)

	cancelFirst()
	_, open := <-first
	require.False(t, open)

	require.NoError(t, s.Set(ctx, "notes", []byte(`[]`)))
	select {
	case e := <-second:
		assert.Equal(t, core.EventModify, e.Type)
	case <-time.After(time.Second):
		t.Fatal("remaining subscriber missed the event")
	}

	cancel()
	for range second {
	}
}

func TestStorage_BacksService(t *testing.T) {
	s := memory.NewStorage()
	ctx := context.Background()

	svc := core.NewService(s, core.Config{})
	require.NoError(t, svc.Load(ctx))
	a, err := svc.Create(ctx)
	require.NoError(t, err)
	b, err := svc.Create(ctx)
	require.NoError(t, err)

	reloaded := core.NewService(s, core.Config{})
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, []core.Note{b, a}, reloaded.Notes())
	assert.Equal(t, "memory-storage", s.ComponentType())
}
