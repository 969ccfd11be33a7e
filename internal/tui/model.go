// Package tui is the interactive front end: landing page, onboarding wizard
// and the main app with report, heatmap and morning-message tabs.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/hurryup/internal/report"
	"github.com/julianstephens/hurryup/internal/router"
	"github.com/julianstephens/hurryup/internal/session"
	"github.com/julianstephens/hurryup/internal/tui/components/calendar"
	"github.com/julianstephens/hurryup/internal/tui/components/header"
	"github.com/julianstephens/hurryup/internal/tui/components/projectlist"
)

type SessionState int

const (
	StateReport SessionState = iota
	StateHeatmap
	StateMorning
	StateLanding
	StateOnboarding
	StateSummary
	StateViewDay
	StateEditing
	StateConfirmation
)

const tabCount = 3

var tabTitles = [tabCount]string{"รายงาน", "ปฏิทิน", "ข้อความเช้า"}

// ConfirmationMsg opens a yes/no dialog and runs Action on yes.
type ConfirmationMsg struct {
	Message string
	Action  func(m *Model) tea.Cmd
}

// StatusMsg shows a one-line notice under the content.
type StatusMsg struct {
	Text string
	Err  bool
}

type improvedMsg struct {
	text string
	err  error
}

type Model struct {
	sess          *session.Session
	improver      session.Improver
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	header        header.Model
	projects      projectlist.Model
	calendar      calendar.Model
	viewport      viewport.Model
	form          *huh.Form
	onFormDone    func(m *Model) tea.Cmd
	onboarding    *OnboardingFormModel
	projectForm   *ProjectFormModel
	profileForm   *ProfileFormModel
	textForm      *TextFormModel
	confirmation  *ConfirmationFormModel
	pendingAction func(m *Model) tea.Cmd
	artifact      *report.Artifact
	status        string
	statusErr     bool
	improving     bool
	quitting      bool
	width         int
	height        int
}

// NewModel builds the UI over an open session. improver may be nil, in which
// case text improvement is unavailable.
func NewModel(sess *session.Session, improver session.Improver) Model {
	st := sess.State()
	now := sess.Now()

	m := Model{
		sess:       sess,
		improver:   improver,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		header:     header.New(st.User.Name, now),
		projects:   projectlist.New(st.Projects, st.SelectedProjects, 0, 0),
		calendar:   calendar.New(st.Reports, now),
		viewport:   viewport.New(0, 0),
		onboarding: &OnboardingFormModel{},
	}
	m.syncRoute()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case StateLanding:
		return []key.Binding{m.keys.Start, m.keys.Import, m.keys.Quit}
	case StateSummary:
		return []key.Binding{m.keys.Submit, m.keys.Copy, m.keys.Back}
	case StateViewDay:
		return []key.Binding{m.keys.Back}
	case StateReport:
		return []key.Binding{m.keys.Tab, m.keys.Write, m.keys.Compose, m.keys.Improve, m.keys.Quit, m.keys.Help}
	case StateMorning:
		return []key.Binding{m.keys.Tab, m.keys.Copy, m.keys.Template, m.keys.Reset, m.keys.Quit}
	}
	return []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.header.Init()}
	if m.form != nil {
		cmds = append(cmds, m.form.Init())
	}
	return tea.Batch(cmds...)
}

// syncRoute moves the UI to the view the router settled on.
func (m *Model) syncRoute() tea.Cmd {
	switch m.sess.Router().Current() {
	case router.Landing:
		m.form = nil
		m.state = StateLanding
	case router.Onboarding:
		m.state = StateOnboarding
		return m.showOnboardingStep()
	case router.App:
		if m.state >= tabCount {
			m.state = StateReport
		}
		m.refresh()
	}
	return nil
}

// refresh re-reads session state into the components.
func (m *Model) refresh() {
	st := m.sess.State()
	m.header.Name = st.User.Name
	m.projects.SetProjects(st.Projects, st.SelectedProjects)
	m.calendar.SetReports(st.Reports, m.sess.Now())
}

func (m *Model) setStatus(text string, err bool) {
	m.status, m.statusErr = text, err
}

func (m *Model) openForm(f *huh.Form, done func(m *Model) tea.Cmd) tea.Cmd {
	m.previousState = m.state
	m.form = f.WithWidth(m.formWidth())
	m.onFormDone = done
	m.state = StateEditing
	return m.form.Init()
}

func (m Model) formWidth() int {
	if m.width > 8 {
		return m.width - 8
	}
	return 60
}
