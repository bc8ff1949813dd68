// Package tui provides the terminal interface over the client state store.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/listo/internal/client"
	"github.com/thenoetrevino/listo/internal/models"
)

// mode is the current input mode of the interface
type mode int

const (
	modeList mode = iota
	modeAddTodo
	modeEditTodo
	modeAddLabel
	modePickLabel
)

// storeUpdatedMsg is sent after a store operation finishes; the snapshot
// has already been re-fetched when err is nil
type storeUpdatedMsg struct {
	err error
}

// Model is the bubbletea model for the todo list
type Model struct {
	store *client.Store

	mode    mode
	cursor  int
	filter  int // selected label id, 0 means no filter
	visible []*models.Todo

	input   textinput.Model
	editID  int
	lastErr error
	loaded  bool
}

// InitialModel creates the starting TUI model backed by the given store
func InitialModel(store *client.Store) *Model {
	ti := textinput.New()
	ti.CharLimit = 500
	return &Model{
		store: store,
		input: ti,
	}
}

// Run starts the TUI program and blocks until it exits
func Run(ctx context.Context, store *client.Store) error {
	p := tea.NewProgram(InitialModel(store), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case storeUpdatedMsg:
		m.lastErr = msg.err
		if msg.err == nil {
			m.loaded = true
		}
		m.applyFilter()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeList:
			return m.updateList(msg)
		case modeAddTodo, modeEditTodo, modeAddLabel:
			return m.updateInput(msg)
		case modePickLabel:
			return m.updatePickLabel(msg)
		}
	}

	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "r":
		return m, m.refreshCmd()

	case " ", "enter":
		if todo := m.selected(); todo != nil {
			id := todo.ID
			return m, m.storeCmd(func(ctx context.Context) error {
				return m.store.ToggleTodo(ctx, id)
			})
		}

	case "a":
		m.mode = modeAddTodo
		m.input.Placeholder = "todo text"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "e":
		if todo := m.selected(); todo != nil {
			m.mode = modeEditTodo
			m.editID = todo.ID
			m.input.Placeholder = "todo text"
			m.input.SetValue(todo.Text)
			m.input.Focus()
			return m, textinput.Blink
		}

	case "d":
		if todo := m.selected(); todo != nil {
			id := todo.ID
			return m, m.storeCmd(func(ctx context.Context) error {
				return m.store.DeleteTodo(ctx, id)
			})
		}

	case "n":
		m.mode = modeAddLabel
		m.input.Placeholder = "label name"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "t":
		if m.selected() != nil && len(m.store.Labels()) > 0 {
			m.mode = modePickLabel
		}

	case "f":
		m.cycleFilter()
		m.applyFilter()

	case "F":
		m.filter = 0
		m.applyFilter()

	case "D":
		// Delete the label currently used as filter
		if m.filter != 0 {
			id := m.filter
			m.filter = 0
			return m, m.storeCmd(func(ctx context.Context) error {
				return m.store.DeleteLabel(ctx, id)
			})
		}
	}

	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.input.Blur()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.input.Value())
		entered := m.mode
		m.mode = modeList
		m.input.Blur()
		if value == "" {
			return m, nil
		}

		switch entered {
		case modeAddTodo:
			return m, m.storeCmd(func(ctx context.Context) error {
				return m.store.AddTodo(ctx, value)
			})
		case modeEditTodo:
			id := m.editID
			return m, m.storeCmd(func(ctx context.Context) error {
				return m.store.UpdateTodoText(ctx, id, value)
			})
		case modeAddLabel:
			return m, m.storeCmd(func(ctx context.Context) error {
				return m.store.AddLabel(ctx, value)
			})
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updatePickLabel toggles a label on the selected todo by its list position
func (m *Model) updatePickLabel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "esc" || key == "q" {
		m.mode = modeList
		return m, nil
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		idx := int(key[0] - '1')
		labels := m.store.Labels()
		todo := m.selected()
		if todo != nil && idx < len(labels) {
			m.mode = modeList
			todoID, labelID := todo.ID, labels[idx].ID
			return m, m.storeCmd(func(ctx context.Context) error {
				return m.store.ToggleTodoLabel(ctx, todoID, labelID)
			})
		}
	}

	return m, nil
}

// selected returns the todo under the cursor, nil when the list is empty
func (m *Model) selected() *models.Todo {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return nil
	}
	return m.visible[m.cursor]
}

// cycleFilter advances the label filter through all labels and back to none
func (m *Model) cycleFilter() {
	labels := m.store.Labels()
	if len(labels) == 0 {
		m.filter = 0
		return
	}

	if m.filter == 0 {
		m.filter = labels[0].ID
		return
	}
	for i, l := range labels {
		if l.ID == m.filter {
			if i+1 < len(labels) {
				m.filter = labels[i+1].ID
			} else {
				m.filter = 0
			}
			return
		}
	}
	m.filter = 0
}

// applyFilter recomputes the visible slice from the cached snapshot
func (m *Model) applyFilter() {
	m.visible = m.store.FilterByLabel(m.filter)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// refreshCmd re-fetches both lists from the API
func (m *Model) refreshCmd() tea.Cmd {
	return m.storeCmd(m.store.Refresh)
}

// storeCmd runs a store operation off the update loop and reports back
func (m *Model) storeCmd(fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return storeUpdatedMsg{err: fn(ctx)}
	}
}
