package header

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/hurryup/internal/utils"
)

var (
	greetingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	clockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	barFullStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	barEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

const barWidth = 30

type TickMsg time.Time

type Model struct {
	Name  string
	Time  time.Time
	width int
}

func New(name string, now time.Time) Model {
	return Model{Name: name, Time: now}
}

func (m *Model) SetWidth(width int) {
	m.width = width
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(TickMsg); ok {
		m.Time = time.Time(msg)
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	p := utils.Progress(m.Time)
	filled := p.Percent * barWidth / 100
	bar := barFullStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))

	return lipgloss.JoinVertical(lipgloss.Left,
		greetingStyle.Render(utils.Greeting(m.Time, m.Name)),
		clockStyle.Render(utils.ThaiClock(m.Time)),
		fmt.Sprintf("%s %3d%% %s", bar, p.Percent, p.Message),
	)
}
