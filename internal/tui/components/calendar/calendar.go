package calendar

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/hurryup/internal/heatmap"
	"github.com/julianstephens/hurryup/internal/models"
	"github.com/julianstephens/hurryup/internal/utils"
)

var (
	yearStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	tooltipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(1, 0, 0, 0)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// ViewDayMsg asks to open the report saved on the day with Key.
type ViewDayMsg struct {
	Key string
}

type KeyMap struct {
	PrevYear key.Binding
	NextYear key.Binding
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevYear: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev year")),
		NextYear: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next year")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev week")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next week")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev day")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next day")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view report")),
	}
}

type Model struct {
	selector *heatmap.Selector
	grid     heatmap.YearGrid
	reports  []models.Report
	now      time.Time
	week     int
	day      int
	keys     KeyMap
	width    int
	height   int
}

func New(reports []models.Report, now time.Time) Model {
	m := Model{
		selector: heatmap.NewSelector(now.Year()),
		reports:  reports,
		now:      now,
		keys:     DefaultKeyMap(),
	}
	m.rebuild()
	m.focusDate(now)
	return m
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetReports rebuilds the grid after the history changed.
func (m *Model) SetReports(reports []models.Report, now time.Time) {
	m.reports = reports
	m.now = now
	m.rebuild()
}

func (m *Model) rebuild() {
	m.grid = heatmap.BuildYearGrid(m.reports, m.selector.Year, m.now)
}

func (m *Model) focusDate(t time.Time) {
	dayKey := utils.DayKey(t)
	for w, week := range m.grid.Weeks {
		for d, c := range week {
			if c.Key == dayKey {
				m.week, m.day = w, d
				return
			}
		}
	}
	m.week, m.day = 0, 0
	m.moveToDay(1)
}

// moveToDay steps the cursor by delta cells until it rests on a real day.
func (m *Model) moveToDay(delta int) {
	pos := m.week*7 + m.day
	total := len(m.grid.Weeks) * 7
	for i := 0; i < total; i++ {
		if c := m.cell(pos); c.Kind != heatmap.CellEmpty {
			m.week, m.day = pos/7, pos%7
			return
		}
		pos += delta
		if pos < 0 || pos >= total {
			return
		}
	}
}

func (m Model) cell(pos int) heatmap.Cell {
	if pos < 0 || pos >= len(m.grid.Weeks)*7 {
		return heatmap.Cell{}
	}
	return m.grid.Weeks[pos/7][pos%7]
}

func (m Model) Selected() heatmap.Cell {
	return m.cell(m.week*7 + m.day)
}

func (m Model) Year() int { return m.selector.Year }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, m.keys.PrevYear):
		m.shiftYear(-1)
	case key.Matches(k, m.keys.NextYear):
		m.shiftYear(1)
	case key.Matches(k, m.keys.Left):
		m.step(-7)
	case key.Matches(k, m.keys.Right):
		m.step(7)
	case key.Matches(k, m.keys.Up):
		m.step(-1)
	case key.Matches(k, m.keys.Down):
		m.step(1)
	case key.Matches(k, m.keys.Open):
		if c := m.Selected(); c.Kind == heatmap.CellDay && c.Count > 0 {
			return m, func() tea.Msg { return ViewDayMsg{Key: c.Key} }
		}
	}
	return m, nil
}

func (m *Model) shiftYear(delta int) {
	if !m.selector.Shift(delta) {
		return
	}
	m.rebuild()
	m.focusDate(time.Date(m.selector.Year, 1, 1, 0, 0, 0, 0, m.now.Location()))
}

func (m *Model) step(delta int) {
	pos := m.week*7 + m.day + delta
	if c := m.cell(pos); c.Kind == heatmap.CellEmpty {
		return
	}
	m.week, m.day = pos/7, pos%7
}

func (m Model) View() string {
	opts := heatmap.DefaultOptions()
	sel := m.Selected()
	opts.Selected = sel.Key

	tip := sel.Tooltip
	if sel.Kind == heatmap.CellFuture {
		tip = "ยังมาไม่ถึง"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		yearStyle.Render(fmt.Sprintf("◀ %d ▶", m.selector.Year)),
		"",
		heatmap.Render(m.grid, opts),
		tooltipStyle.Render(tip),
		hintStyle.Render("[ ] เปลี่ยนปี · enter ดูรายงาน"),
	)
}
