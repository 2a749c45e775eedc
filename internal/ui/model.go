// Package ui implements the two-pane terminal view of a note store:
// a list of notes on the left and an editor for the selection on the right.
package ui

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aretw0/jot/pkg/core"
)

// Store is the subset of the note store the view renders and dispatches to.
type Store interface {
	Notes() []core.Note
	Selection() (core.Note, bool)
	Create(ctx context.Context) (core.Note, error)
	Select(id string) (core.Note, bool)
	Update(ctx context.Context, n core.Note) (core.Note, error)
	Delete(ctx context.Context, id string) error
}

type focus int

const (
	focusList focus = iota
	focusTitle
	focusContent
)

// externalChangeMsg carries a storage change made outside this process.
type externalChangeMsg struct{ event core.Event }

type eventsClosedMsg struct{}

// Option configures a Model.
type Option func(*Model)

// WithEvents subscribes the view to external storage changes.
func WithEvents(events <-chan core.Event) Option {
	return func(m *Model) { m.events = events }
}

// WithLogger sets the logger used for intent tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// Model is the bubbletea model of the notes view.
type Model struct {
	ctx    context.Context
	store  Store
	events <-chan core.Event
	logger *slog.Logger
	keys   keyMap
	styles styles

	notes     []core.Note
	cursor    int
	focus     focus
	editingID string
	title     textinput.Model
	body      textarea.Model

	width  int
	height int
	status string
	err    error
}

// New creates a Model bound to store. The store must already be loaded.
func New(ctx context.Context, store Store, opts ...Option) Model {
	title := textinput.New()
	title.Placeholder = "Note Title"
	title.Prompt = ""
	title.CharLimit = 0

	body := textarea.New()
	body.Placeholder = "Start writing your thoughts..."
	body.ShowLineNumbers = false
	body.CharLimit = 0
	body.MaxHeight = 0

	m := Model{
		ctx:    ctx,
		store:  store,
		keys:   defaultKeyMap(),
		styles: defaultStyles(),
		title:  title,
		body:   body,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.refresh()
	return m
}

// Run starts the full-screen program and blocks until the user quits.
func Run(ctx context.Context, store Store, opts ...Option) error {
	p := tea.NewProgram(New(ctx, store, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.waitForEvent())
}

func (m Model) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return externalChangeMsg{event: e}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case externalChangeMsg:
		switch msg.event.Type {
		case core.EventDelete:
			m.setStatus("storage was cleared outside jot; the next edit will rewrite it")
		default:
			m.setStatus("notes changed outside jot; the next edit will overwrite them")
		}
		return m, m.waitForEvent()

	case eventsClosedMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Force):
		return m, tea.Quit
	case key.Matches(msg, m.keys.New):
		return m.create()
	}

	if m.focus == focusList {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.notes)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Open):
			return m.open()
		case key.Matches(msg, m.keys.Switch):
			if m.editingID != "" {
				return m, m.focusOn(focusTitle)
			}
		case key.Matches(msg, m.keys.Delete):
			if len(m.notes) > 0 {
				return m.delete(m.notes[m.cursor].ID)
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		return m, m.focusOn(focusList)
	case key.Matches(msg, m.keys.Switch):
		if m.focus == focusTitle {
			return m, m.focusOn(focusContent)
		}
		return m, m.focusOn(focusTitle)
	case key.Matches(msg, m.keys.Remove):
		return m.delete(m.editingID)
	}

	return m.updateInputs(msg)
}

// updateInputs forwards msg to the focused input and dispatches an update
// intent when the title or content changed.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		before := m.title.Value()
		m.title, cmd = m.title.Update(msg)
		if m.title.Value() != before {
			m.save()
		}
	case focusContent:
		before := m.body.Value()
		m.body, cmd = m.body.Update(msg)
		if m.body.Value() != before {
			m.save()
		}
	}
	return m, cmd
}

func (m Model) create() (tea.Model, tea.Cmd) {
	note, err := m.store.Create(m.ctx)
	if err != nil {
		m.setError(err)
		return m, nil
	}
	m.logger.Debug("intent: create", "id", note.ID)
	m.refresh()
	m.cursor = 0
	return m, m.focusOn(focusTitle)
}

func (m Model) open() (tea.Model, tea.Cmd) {
	if len(m.notes) == 0 {
		return m, nil
	}
	id := m.notes[m.cursor].ID
	if _, ok := m.store.Select(id); !ok {
		m.refresh()
		return m, nil
	}
	m.logger.Debug("intent: select", "id", id)
	m.refresh()
	return m, m.focusOn(focusTitle)
}

func (m Model) delete(id string) (tea.Model, tea.Cmd) {
	if id == "" {
		return m, nil
	}
	if err := m.store.Delete(m.ctx, id); err != nil && !errors.Is(err, core.ErrNotFound) {
		m.setError(err)
		return m, nil
	}
	m.logger.Debug("intent: delete", "id", id)
	m.refresh()
	return m, nil
}

// save dispatches the editor contents as an update of the note being edited.
func (m *Model) save() {
	if m.editingID == "" {
		return
	}
	note := core.Note{ID: m.editingID, Title: m.title.Value(), Content: m.body.Value()}
	if _, err := m.store.Update(m.ctx, note); err != nil && !errors.Is(err, core.ErrNotFound) {
		m.setError(err)
		return
	}
	m.err = nil
	m.notes = m.store.Notes()
}

// refresh re-reads the store and reloads the editor when the selection moved.
func (m *Model) refresh() {
	m.notes = m.store.Notes()
	if m.cursor >= len(m.notes) {
		m.cursor = max(len(m.notes)-1, 0)
	}

	sel, ok := m.store.Selection()
	if !ok {
		m.editingID = ""
		m.title.SetValue("")
		m.body.SetValue("")
		m.title.Blur()
		m.body.Blur()
		m.focus = focusList
		return
	}

	for i, n := range m.notes {
		if n.ID == sel.ID {
			m.cursor = i
			break
		}
	}
	if sel.ID != m.editingID {
		m.editingID = sel.ID
		m.title.SetValue(sel.Title)
		m.body.SetValue(sel.Content)
	}
}

func (m *Model) focusOn(f focus) tea.Cmd {
	if f != focusList && m.editingID == "" {
		f = focusList
	}
	m.focus = f
	m.title.Blur()
	m.body.Blur()
	switch f {
	case focusTitle:
		return m.title.Focus()
	case focusContent:
		return m.body.Focus()
	}
	return nil
}

func (m *Model) resize() {
	editorWidth := max(m.width-listWidth-8, 10)
	m.title.Width = editorWidth
	m.body.SetWidth(editorWidth)
	m.body.SetHeight(max(m.height-9, 3))
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.err = nil
}

func (m *Model) setError(err error) {
	m.logger.Error("intent failed", "error", err)
	m.err = err
}
