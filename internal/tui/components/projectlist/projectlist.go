package projectlist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/hurryup/internal/models"
)

type AddProjectMsg struct{}

type ToggleProjectMsg struct {
	ID int
}

type EditProjectMsg struct {
	Project models.Project
}

type DeleteProjectMsg struct {
	ID int
}

type Item struct {
	Project  models.Project
	Selected bool
	// Order is the 1-based position in the selection, 0 when unselected.
	Order int
}

func (i Item) Title() string {
	if i.Selected {
		return "[✓] " + i.Project.Name
	}
	return "[ ] " + i.Project.Name
}

func (i Item) Description() string {
	if i.Project.TaigaURL != "" {
		return i.Project.TaigaURL
	}
	return "ไม่มีลิงก์"
}

func (i Item) FilterValue() string { return i.Project.Name }

type KeyMap struct {
	Toggle key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "select"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(projects []models.Project, selected []int, width, height int) Model {
	l := list.New(items(projects, selected), list.NewDefaultDelegate(), width, height)
	l.Title = "โครงการ"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Add, keys.Edit, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Add, keys.Edit, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func items(projects []models.Project, selected []int) []list.Item {
	order := make(map[int]int, len(selected))
	for i, id := range selected {
		order[id] = i + 1
	}
	out := make([]list.Item, len(projects))
	for i, p := range projects {
		out[i] = Item{Project: p, Selected: order[p.ID] > 0, Order: order[p.ID]}
	}
	return out
}

// SetProjects refreshes the items, keeping the cursor position.
func (m *Model) SetProjects(projects []models.Project, selected []int) {
	idx := m.list.Index()
	m.list.SetItems(items(projects, selected))
	if idx < len(projects) {
		m.list.Select(idx)
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddProjectMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleProjectMsg{ID: i.Project.ID} }
			}
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditProjectMsg{Project: i.Project} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteProjectMsg{ID: i.Project.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  ยังไม่มีโครงการ\n  กด 'a' เพื่อเพิ่มโครงการ"
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
