package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ebalint/taskdeck/internal/model"
	"github.com/ebalint/taskdeck/internal/store"
	"github.com/ebalint/taskdeck/internal/ui"
)

// listItem adapts a task to bubbles/list.Item.
type listItem struct {
	task model.Task
}

func (i listItem) Title() string       { return i.task.Title }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.task.Title }

// Custom delegate so items render on a single line.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)
	th := ui.Current()

	box := th.Muted.Render(th.BoxUnchecked)
	title := it.task.Title
	if it.task.Completed {
		box = th.Success.Render(th.BoxChecked)
		title = th.Done.Render(title)
	}

	line := fmt.Sprintf("%s %s %s", box, ui.PriorityBadge(it.task.Priority), title)
	prefix := "  "
	if index == m.Index() {
		prefix = th.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

type modelTUI struct {
	list  list.Model
	tasks *store.Store

	width  int
	height int

	// Inline add / edit share the text input.
	adding   bool
	editing  bool
	editID   string
	ti       textinput.Model
	inputErr string

	// Single-level undo for deletes.
	undo      *model.Task
	undoIndex int

	// File-change notifications from the watcher, nil when not watching.
	changes <-chan struct{}
}

// Run starts the interactive list over the given store. When dataPath is
// non-empty the file is watched and the list reloads if another process
// rewrites it.
func Run(s *store.Store, dataPath string) error {
	m := modelTUI{
		tasks:     s,
		undoIndex: -1,
	}

	l := list.New(itemsFrom(s), itemDelegate{}, 0, 0)
	l.Title = headerLine(s)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	th := ui.Current()
	l.Styles.Title = th.Title
	l.Styles.HelpStyle = th.Help
	l.Styles.PaginationStyle = th.Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")

	extra := []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "priority")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear done")),
		key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
	}
	l.AdditionalShortHelpKeys = func() []key.Binding { return extra }
	l.AdditionalFullHelpKeys = func() []key.Binding { return extra }
	m.list = l

	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "New task title..."
	m.ti.CharLimit = 200

	var stop func()
	if dataPath != "" {
		ch, cancel, err := watchFile(dataPath)
		if err == nil {
			m.changes = ch
			stop = cancel
		}
	}
	if stop != nil {
		defer stop()
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func itemsFrom(s *store.Store) []list.Item {
	tasks := s.Tasks()
	li := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		li = append(li, listItem{task: t})
	}
	return li
}

func headerLine(s *store.Store) string {
	th := ui.Current()
	d, p := s.Stats()
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d  %s",
		th.Title.Render("Tasks"),
		th.Success.Render("✔"), d,
		th.Pending.Render("•"), p,
		th.Accent.Render("Total"), s.Len(),
		th.Muted.Render("("+s.Order().String()+")"),
	)
}

// refresh rebuilds the visible list from the store, keeping the cursor
// near its previous position.
func (m *modelTUI) refresh() {
	idx := m.list.Index()
	m.list.SetItems(itemsFrom(m.tasks))
	if n := len(m.list.Items()); idx >= n {
		idx = n - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
	m.list.Title = headerLine(m.tasks)
}

func (m modelTUI) selected() (model.Task, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Task{}, false
	}
	return it.task, true
}

type fileChangedMsg struct{}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

func (m modelTUI) Init() tea.Cmd { return waitForChange(m.changes) }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case fileChangedMsg:
		m.tasks.Reload()
		m.refresh()
		return m, waitForChange(m.changes)
	}

	if m.adding || m.editing {
		return m.updateInput(msg)
	}

	if k, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch k.String() {
		case "q", "esc":
			return m, tea.Quit

		case " ":
			if t, ok := m.selected(); ok {
				m.tasks.ToggleCompleted(t.ID)
				m.refresh()
			}
			return m, nil

		case "d":
			if t, ok := m.selected(); ok {
				tmp := t
				m.undo = &tmp
				m.undoIndex = m.list.Index()
				m.tasks.Remove(t.ID)
				m.refresh()
			}
			return m, nil

		case "u":
			if m.undo != nil {
				m.tasks.Insert(m.undoIndex, *m.undo)
				m.undo = nil
				m.undoIndex = -1
				m.refresh()
			}
			return m, nil

		case "a":
			m.adding = true
			m.inputErr = ""
			m.ti.SetValue("")
			m.ti.Placeholder = "New task title..."
			m.ti.Focus()
			return m, nil

		case "e":
			if t, ok := m.selected(); ok {
				m.editing = true
				m.editID = t.ID
				m.inputErr = ""
				m.ti.SetValue(t.Title)
				m.ti.CursorEnd()
				m.ti.Placeholder = "Edit task title..."
				m.ti.Focus()
			}
			return m, nil

		case "p":
			if t, ok := m.selected(); ok {
				m.tasks.Rename(t.ID, t.Title, t.Priority.Next())
				m.refresh()
			}
			return m, nil

		case "s":
			m.tasks.SortBy(m.tasks.Order().Next())
			m.refresh()
			return m, nil

		case "C":
			m.tasks.RemoveWhere(func(t model.Task) bool { return t.Completed })
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m modelTUI) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			title := strings.TrimSpace(m.ti.Value())
			if title == "" {
				m.inputErr = "Title cannot be empty"
				return m, nil
			}
			if m.adding {
				m.tasks.Add(title, model.PriorityMedium)
			} else if t, ok := m.tasks.Get(m.editID); ok {
				m.tasks.Rename(t.ID, title, t.Priority)
			}
			m.closeInput()
			m.refresh()
			return m, nil
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *modelTUI) closeInput() {
	m.adding = false
	m.editing = false
	m.editID = ""
	m.inputErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m modelTUI) View() string {
	w, h := m.width, m.height
	if w == 0 {
		w, h = 80, 24
	}
	listHeight := h - 4
	if m.adding || m.editing {
		listHeight = h - 6
	}
	m.list.SetSize(w-2, listHeight)

	content := m.list.View()
	if m.adding || m.editing {
		th := ui.Current()
		bar := lipgloss.NewStyle().
			Border(th.Border).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
		title := "Add new task"
		if m.editing {
			title = "Edit task"
		}
		if m.inputErr != "" {
			title += " — " + th.Error.Render(m.inputErr)
		}
		content += "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	return panelString(content)
}

func panelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(ui.Current().Border).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(inner)
}
