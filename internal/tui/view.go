package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4"))

	completedStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color("#6B7280"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22C55E"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("listo"))
	b.WriteString("\n")

	if m.filter != 0 {
		b.WriteString(fmt.Sprintf("Filter: %s (F to clear)\n\n", m.filterName()))
	}

	if !m.loaded && m.lastErr != nil {
		b.WriteString(errorStyle.Render("Cannot reach the API: "+m.lastErr.Error()) + "\n")
		b.WriteString(helpStyle.Render("Is `listo serve` running?  q quit, r retry") + "\n")
		return b.String()
	}
	if !m.loaded {
		b.WriteString("Loading...\n")
		return b.String()
	}

	m.writeTodos(&b)

	switch m.mode {
	case modeAddTodo:
		b.WriteString("\nNew todo: " + m.input.View() + "\n")
	case modeEditTodo:
		b.WriteString("\nEdit todo: " + m.input.View() + "\n")
	case modeAddLabel:
		b.WriteString("\nNew label: " + m.input.View() + "\n")
	case modePickLabel:
		m.writeLabelPicker(&b)
	}

	if m.lastErr != nil {
		b.WriteString("\n" + errorStyle.Render(m.lastErr.Error()) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render(helpLine(m.mode)) + "\n")
	return b.String()
}

func (m *Model) writeTodos(b *strings.Builder) {
	if len(m.visible) == 0 {
		b.WriteString("No todos.\n")
		return
	}

	for i, todo := range m.visible {
		check := "[ ]"
		if todo.Completed {
			check = "[x]"
		}

		line := fmt.Sprintf("%s %s", check, todo.Text)
		if todo.Completed {
			line = completedStyle.Render(line)
		}

		if len(todo.Labels) > 0 {
			names := make([]string, len(todo.Labels))
			for j, l := range todo.Labels {
				names[j] = l.Name
			}
			line += " " + labelStyle.Render("["+strings.Join(names, ", ")+"]")
		}

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
}

func (m *Model) writeLabelPicker(b *strings.Builder) {
	b.WriteString("\nToggle label (esc to cancel):\n")
	for i, l := range m.store.Labels() {
		if i >= 9 {
			break
		}
		b.WriteString(fmt.Sprintf("  %d) %s\n", i+1, l.Name))
	}
}

func (m *Model) filterName() string {
	for _, l := range m.store.Labels() {
		if l.ID == m.filter {
			return l.Name
		}
	}
	return "?"
}

func helpLine(mode mode) string {
	switch mode {
	case modeList:
		return "j/k move  space toggle  a add  e edit  d delete  n new label  t labels  f filter  D delete filtered label  r refresh  q quit"
	case modePickLabel:
		return "1-9 toggle label  esc cancel"
	default:
		return "enter confirm  esc cancel"
	}
}
