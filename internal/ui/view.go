package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/jot/pkg/preview"
)

// View implements tea.Model.
func (m Model) View() string {
	list := m.viewList()
	editor := m.viewEditor()

	listPane, editorPane := m.styles.pane, m.styles.pane
	if m.focus == focusList {
		listPane = m.styles.activePane
	} else {
		editorPane = m.styles.activePane
	}

	height := max(m.height-3, 0)
	listPane = listPane.Width(listWidth)
	if height > 0 {
		listPane = listPane.Height(height)
		editorPane = editorPane.Height(height)
	}
	if m.width > 0 {
		editorPane = editorPane.Width(max(m.width-listWidth-6, 10))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, listPane.Render(list), editorPane.Render(editor))
	return lipgloss.JoinVertical(lipgloss.Left, body, m.viewStatus())
}

func (m Model) viewList() string {
	if len(m.notes) == 0 {
		return m.styles.muted.Render("No notes yet.\nPress ctrl+n to create one.")
	}

	textWidth := listWidth - 4
	var b strings.Builder
	for i, n := range m.notes {
		marker := "  "
		if i == m.cursor && m.focus == focusList {
			marker = "› "
		}

		lines := []string{
			marker + m.styles.title.Render(preview.Truncate(preview.Title(n.Title), textWidth)),
			"  " + m.styles.snippet.Render(preview.Snippet(n.Content, textWidth)),
			"  " + m.styles.stamp.Render(preview.Stamp(n.LastModified)),
		}
		style := m.styles.item
		if n.ID == m.editingID {
			style = m.styles.selected
		}
		b.WriteString(style.Render(strings.Join(lines, "\n")))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewEditor() string {
	if m.editingID == "" {
		return lipgloss.JoinVertical(lipgloss.Left,
			"",
			m.styles.heading.Render("Your Digital Notebook"),
			"",
			m.styles.muted.Render("Create notes, jot down ideas, and organize your thoughts."),
			"",
			m.styles.muted.Render("Press ctrl+n to Create First Note"),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.heading.Render(m.title.View()),
		"",
		m.body.View(),
	)
}

func (m Model) viewStatus() string {
	if m.err != nil {
		return m.styles.errStatus.Render("error: " + m.err.Error())
	}
	if m.status != "" {
		return m.styles.status.Render(m.status)
	}

	k := m.keys
	if m.focus == focusList {
		return m.styles.status.Render(helpLine(k.New, k.Up, k.Down, k.Open, k.Delete, k.Quit))
	}
	return m.styles.status.Render(helpLine(k.New, k.Switch, k.Back, k.Remove, k.Force))
}
