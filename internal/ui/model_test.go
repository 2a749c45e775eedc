package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/adapters/memory"
	"github.com/aretw0/jot/pkg/core"
)

func newTestModel(t *testing.T) (Model, *core.Service) {
	t.Helper()
	svc := core.NewService(memory.NewStorage(), core.Config{})
	require.NoError(t, svc.Load(context.Background()))
	m := New(context.Background(), svc)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model), svc
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

var (
	ctrlN  = tea.KeyMsg{Type: tea.KeyCtrlN}
	ctrlX  = tea.KeyMsg{Type: tea.KeyCtrlX}
	tab    = tea.KeyMsg{Type: tea.KeyTab}
	esc    = tea.KeyMsg{Type: tea.KeyEsc}
	enter  = tea.KeyMsg{Type: tea.KeyEnter}
	down   = tea.KeyMsg{Type: tea.KeyDown}
	letter = func(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }
)

func TestModel_Create(t *testing.T) {
	m, svc := newTestModel(t)

	m = press(t, m, ctrlN)

	require.Equal(t, 1, svc.Len())
	sel, ok := svc.Selection()
	require.True(t, ok)
	assert.Equal(t, sel.ID, m.editingID)
	assert.Equal(t, focusTitle, m.focus)
	assert.True(t, m.title.Focused())
}

func TestModel_EditDispatchesUpdates(t *testing.T) {
	m, svc := newTestModel(t)

	m = press(t, m, ctrlN, letter("Groceries"), tab, letter("milk"))

	notes := svc.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, "Groceries", notes[0].Title)
	assert.Equal(t, "milk", notes[0].Content)
	assert.Equal(t, focusContent, m.focus)
}

func TestModel_TypingQInEditorDoesNotQuit(t *testing.T) {
	m, svc := newTestModel(t)
	m = press(t, m, ctrlN)

	m = press(t, m, letter("q"))

	sel, _ := svc.Selection()
	assert.Equal(t, "q", sel.Title)
	assert.Equal(t, focusTitle, m.focus)
}

func TestModel_NewestFirst(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, ctrlN, letter("Alpha"), esc, ctrlN, letter("Beta"), esc)

	view := m.View()
	a, b := strings.Index(view, "Alpha"), strings.Index(view, "Beta")
	require.NotEqual(t, -1, a)
	require.NotEqual(t, -1, b)
	assert.Less(t, b, a, "newest note is listed first")
}

func TestModel_OpenSelectsNote(t *testing.T) {
	m, svc := newTestModel(t)
	m = press(t, m, ctrlN, letter("old"), esc, ctrlN, letter("new"), esc)
	require.Equal(t, 0, m.cursor)

	m = press(t, m, down, enter)

	sel, ok := svc.Selection()
	require.True(t, ok)
	assert.Equal(t, "old", sel.Title)
	assert.Equal(t, "old", m.title.Value())
	assert.Equal(t, focusTitle, m.focus)
}

func TestModel_DeleteFromList(t *testing.T) {
	m, svc := newTestModel(t)
	m = press(t, m, ctrlN, letter("keep"), esc, ctrlN, letter("drop"), esc)

	m = press(t, m, letter("d"))

	notes := svc.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, "keep", notes[0].Title)
	_, ok := svc.Selection()
	assert.False(t, ok)
	assert.Empty(t, m.editingID)
	assert.Equal(t, focusList, m.focus)
}

func TestModel_DeleteFromEditor(t *testing.T) {
	m, svc := newTestModel(t)
	m = press(t, m, ctrlN, letter("gone"), ctrlX)

	assert.Equal(t, 0, svc.Len())
	assert.Equal(t, focusList, m.focus)
	assert.Contains(t, m.View(), "Create First Note")
}

func TestModel_EmptyState(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()
	assert.Contains(t, view, "Your Digital Notebook")
	assert.Contains(t, view, "No notes yet.")
}

func TestModel_QuitFromList(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(letter("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestModel_ExternalChange(t *testing.T) {
	events := make(chan core.Event, 1)
	svc := core.NewService(memory.NewStorage(), core.Config{})
	require.NoError(t, svc.Load(context.Background()))
	m := New(context.Background(), svc, WithEvents(events))

	events <- core.Event{Type: core.EventDelete, Key: core.DefaultKey}
	msg := m.waitForEvent()()
	m = press(t, m, msg)
	assert.Contains(t, m.View(), "storage was cleared outside jot")

	close(events)
	_, ok := m.waitForEvent()().(eventsClosedMsg)
	assert.True(t, ok)
}

// failingStore rejects every mutation.
type failingStore struct{ err error }

func (f failingStore) Notes() []core.Note { return nil }

func (f failingStore) Selection() (core.Note, bool) { return core.Note{}, false }

func (f failingStore) Select(string) (core.Note, bool) { return core.Note{}, false }

func (f failingStore) Create(context.Context) (core.Note, error) { return core.Note{}, f.err }

func (f failingStore) Update(context.Context, core.Note) (core.Note, error) { return core.Note{}, f.err }

func (f failingStore) Delete(context.Context, string) error { return f.err }

func TestModel_PersistErrorShowsInStatus(t *testing.T) {
	m := New(context.Background(), failingStore{err: errors.New("disk full")})
	m = press(t, m, ctrlN)

	assert.Contains(t, m.View(), "error: disk full")
	assert.Equal(t, focusList, m.focus)
}
