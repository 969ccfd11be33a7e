package tui

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/hurryup/internal/report"
	"github.com/julianstephens/hurryup/internal/router"
	"github.com/julianstephens/hurryup/internal/settings"
	"github.com/julianstephens/hurryup/internal/tui/components/calendar"
	"github.com/julianstephens/hurryup/internal/tui/components/header"
	"github.com/julianstephens/hurryup/internal/tui/components/projectlist"
)

const improveTimeout = 30 * time.Second

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case header.TickMsg:
		var cmd tea.Cmd
		m.header, cmd = m.header.Update(msg)
		return m, cmd

	case StatusMsg:
		m.setStatus(msg.Text, msg.Err)
		return m, nil

	case ConfirmationMsg:
		m.confirmation = &ConfirmationFormModel{Message: msg.Message}
		m.pendingAction = msg.Action
		m.previousState = m.state
		m.form = NewConfirmationForm(m.confirmation).WithWidth(m.formWidth())
		m.state = StateConfirmation
		return m, m.form.Init()

	case improvedMsg:
		m.improving = false
		if msg.err != nil {
			m.setStatus("ปรับปรุงข้อความไม่สำเร็จ: "+msg.err.Error(), true)
			return m, nil
		}
		m.sess.ApplyImproved(msg.text)
		m.setStatus("ปรับปรุงข้อความแล้ว", false)
		return m, nil
	}

	switch m.state {
	case StateOnboarding:
		return m.updateOnboarding(msg)
	case StateEditing, StateConfirmation:
		return m.updateForm(msg)
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(k, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(k, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	switch m.state {
	case StateLanding:
		return m.updateLanding(msg)
	case StateSummary:
		return m.updateSummary(msg)
	case StateViewDay:
		return m.updateViewDay(msg)
	}
	return m.updateApp(msg)
}

func (m *Model) resize() {
	headerHeight := 5
	footerHeight := 3
	h := m.height - headerHeight - footerHeight
	if h < 5 {
		h = 5
	}
	m.header.SetWidth(m.width)
	m.projects.SetSize(m.width/2, h)
	m.calendar.SetSize(m.width, h)
	m.viewport.Width = m.width - 4
	m.viewport.Height = h
}

func (m Model) updateOnboarding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case k.Type == tea.KeyEsc:
			m.sess.Router().Navigate(router.Landing.Path(), false)
			return m, m.syncRoute()
		case key.Matches(k, m.keys.Skip) && m.sess.Wizard().Step == router.StepProfile:
			return m, m.skipOnboarding()
		}
	}
	if m.form == nil {
		return m, m.showOnboardingStep()
	}
	return m.stepForm(msg)
}

// updateForm drives an open form or confirmation dialog.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		m.closeForm()
		return m, nil
	}
	return m.stepForm(msg)
}

func (m Model) stepForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if m.state == StateConfirmation {
			action := m.pendingAction
			confirmed := m.confirmation.Confirmed
			m.closeForm()
			if confirmed && action != nil {
				cmds = append(cmds, action(&m))
			}
			break
		}
		done := m.onFormDone
		if m.state == StateEditing {
			m.closeForm()
		}
		if done != nil {
			cmds = append(cmds, done(&m))
		}
	case huh.StateAborted:
		if m.state == StateOnboarding {
			m.form = nil
			m.sess.Router().Navigate(router.Landing.Path(), false)
			cmds = append(cmds, m.syncRoute())
			break
		}
		m.closeForm()
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) closeForm() {
	m.form = nil
	m.onFormDone = nil
	m.pendingAction = nil
	m.state = m.previousState
}

func (m Model) updateLanding(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, m.keys.Start):
		m.sess.Router().Navigate(router.Onboarding.Path(), false)
		return m, m.syncRoute()
	case key.Matches(k, m.keys.Import):
		m.textForm = &TextFormModel{}
		return m, m.openForm(NewTextForm(m.textForm, "นำเข้าข้อมูล", "path ของไฟล์สำรอง .json", 1), importFromForm)
	}
	return m, nil
}

func importFromForm(m *Model) tea.Cmd {
	path := strings.TrimSpace(m.textForm.Value)
	if err := m.sess.ImportFile(path); err != nil {
		m.setStatus("ไฟล์ไม่ถูกต้อง กรุณาใช้ไฟล์สำรองจาก HurryUp: "+err.Error(), true)
		return nil
	}
	m.setStatus("นำเข้าข้อมูลสำเร็จ!", false)
	return m.syncRoute()
}

func (m Model) updateApp(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectlist.ToggleProjectMsg:
		m.persistResult(m.sess.ToggleProject(msg.ID), "")
		m.refresh()
		return m, nil
	case projectlist.AddProjectMsg:
		m.projectForm = &ProjectFormModel{}
		return m, m.openForm(NewProjectForm(m.projectForm), saveProjectForm)
	case projectlist.EditProjectMsg:
		id := msg.Project.ID
		m.projectForm = &ProjectFormModel{ID: &id, Name: msg.Project.Name, TaigaURL: msg.Project.TaigaURL, Template: msg.Project.Template}
		return m, m.openForm(NewProjectForm(m.projectForm), saveProjectForm)
	case projectlist.DeleteProjectMsg:
		id := msg.ID
		return m, func() tea.Msg {
			return ConfirmationMsg{
				Message: "ลบโครงการนี้? รายงานเก่าจะยังคงอยู่",
				Action: func(m *Model) tea.Cmd {
					m.persistResult(m.sess.DeleteProject(id), "ลบโครงการแล้ว")
					m.refresh()
					return nil
				},
			}
		}
	case calendar.ViewDayMsg:
		v, err := m.sess.ViewDay(msg.Key)
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.viewport.SetContent(dayViewText(v))
		m.viewport.GotoTop()
		m.previousState = m.state
		m.state = StateViewDay
		return m, nil
	}

	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(k, m.keys.Tab):
		m.state = (m.state + 1) % tabCount
		return m, nil
	case key.Matches(k, m.keys.ShiftTab):
		m.state = (m.state - 1 + tabCount) % tabCount
		return m, nil
	case key.Matches(k, m.keys.Profile):
		return m, m.openProfileForm()
	case key.Matches(k, m.keys.Backup):
		path, err := m.sess.CreateBackup()
		if err != nil {
			m.setStatus(err.Error(), true)
		} else {
			m.setStatus("สำรองข้อมูลแล้ว: "+path, false)
		}
		return m, nil
	case key.Matches(k, m.keys.Wipe):
		return m, func() tea.Msg {
			return ConfirmationMsg{
				Message: "ลบข้อมูลทั้งหมด? การกระทำนี้ไม่สามารถย้อนกลับได้",
				Action: func(m *Model) tea.Cmd {
					if err := m.sess.ResetAll(); err != nil {
						m.setStatus(err.Error(), true)
					} else {
						m.setStatus("ลบข้อมูลทั้งหมดเรียบร้อยแล้ว", false)
					}
					m.refresh()
					return m.syncRoute()
				},
			}
		}
	}

	switch m.state {
	case StateReport:
		return m.updateReportTab(k)
	case StateHeatmap:
		var cmd tea.Cmd
		m.calendar, cmd = m.calendar.Update(k)
		return m, cmd
	case StateMorning:
		return m.updateMorningTab(k)
	}
	return m, nil
}

func (m Model) updateReportTab(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, m.keys.Write):
		m.textForm = &TextFormModel{Value: m.sess.Surface().Text()}
		return m, m.openForm(NewTextForm(m.textForm, "รายละเอียดงาน", "แก้ไขข้อความรายงาน", 12), saveDraftForm)
	case key.Matches(k, m.keys.Compose):
		a, err := m.sess.Compose()
		if err != nil {
			m.setStatus("เลือกอย่างน้อยหนึ่งโครงการ", true)
			return m, nil
		}
		m.artifact = &a
		m.viewport.SetContent(summaryViewText(a, m.sess.ProjectLinks()))
		m.viewport.GotoTop()
		m.previousState = m.state
		m.state = StateSummary
		return m, nil
	case key.Matches(k, m.keys.Improve):
		return m, m.improve()
	}
	var cmd tea.Cmd
	m.projects, cmd = m.projects.Update(k)
	return m, cmd
}

func (m *Model) improve() tea.Cmd {
	if m.improver == nil {
		m.setStatus("ยังไม่ได้ตั้งค่าบริการปรับปรุงข้อความ", true)
		return nil
	}
	if m.improving {
		return nil
	}
	text := m.sess.Surface().Text()
	if strings.TrimSpace(text) == "" {
		m.setStatus("ไม่มีข้อความให้ปรับปรุง", true)
		return nil
	}
	m.improving = true
	m.setStatus("กำลังปรับปรุงข้อความ...", false)
	improver := m.improver
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), improveTimeout)
		defer cancel()
		out, err := improver.Improve(ctx, text)
		return improvedMsg{text: out, err: err}
	}
}

func (m Model) updateMorningTab(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, m.keys.Copy):
		m.copyText(m.sess.Morning(), "คัดลอกข้อความแล้ว")
	case key.Matches(k, m.keys.Template):
		m.textForm = &TextFormModel{Value: m.sess.State().MorningTemplate}
		desc := "ตัวแปร: {name} {date} {role} {workplace}"
		return m, m.openForm(NewTextForm(m.textForm, "เทมเพลตข้อความเช้า", desc, 6), saveMorningForm)
	case key.Matches(k, m.keys.Reset):
		return m, func() tea.Msg {
			return ConfirmationMsg{
				Message: "รีเซ็ตเทมเพลตเป็นค่าเริ่มต้น?",
				Action: func(m *Model) tea.Cmd {
					m.persistResult(m.sess.ResetMorningTemplate(), "รีเซ็ตเทมเพลตแล้ว")
					return nil
				},
			}
		}
	}
	return m, nil
}

func (m Model) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	switch {
	case key.Matches(k, m.keys.Back):
		m.state = m.previousState
		return m, nil
	case key.Matches(k, m.keys.Copy):
		m.copyText(m.artifact.ClipboardText(), "คัดลอกแล้ว!")
		return m, nil
	case key.Matches(k, m.keys.Submit):
		if m.sess.Stats().ReportedToday {
			return m, func() tea.Msg {
				return ConfirmationMsg{
					Message: "คุณอัปบล็อกของวันนี้ไปแล้ว ต้องการยืนยันใหม่อีกครั้งหรือไม่?",
					Action:  func(m *Model) tea.Cmd { return m.submit(true) },
				}
			}
		}
		return m, m.submit(false)
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(k)
	return m, cmd
}

func (m *Model) submit(confirmed bool) tea.Cmd {
	out, err := m.sess.Submit(*m.artifact, func() bool { return confirmed })
	if errors.Is(err, report.ErrOverwriteDeclined) {
		return nil
	}
	m.artifact = nil
	m.state = StateReport
	m.refresh()
	if out.Updated {
		m.persistResult(err, "อัปเดตสำเร็จ! ✓")
	} else {
		m.persistResult(err, "บันทึกสำเร็จ! อัปบล็อกแล้ววันนี้ ✓")
	}
	return nil
}

func (m Model) updateViewDay(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Back) {
		m.state = m.previousState
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) openProfileForm() tea.Cmd {
	u := m.sess.State().User
	m.profileForm = &ProfileFormModel{Name: u.Name, Role: u.Role, Workplace: u.Workplace, ProjectLabel: u.ProjectLabel}
	return m.openForm(NewProfileForm(m.profileForm), saveProfileForm)
}

func saveProfileForm(m *Model) tea.Cmd {
	f := m.profileForm
	err := m.sess.SaveProfile(settings.ProfileInput{
		Name:         f.Name,
		Role:         f.Role,
		Workplace:    f.Workplace,
		ProjectLabel: f.ProjectLabel,
	})
	if path := strings.TrimSpace(f.ImagePath); path != "" && err == nil {
		var raw []byte
		if raw, err = os.ReadFile(path); err == nil {
			err = m.sess.SetProfileImage(context.Background(), raw)
		}
	}
	m.persistResult(err, "บันทึกข้อมูลแล้ว")
	m.refresh()
	return nil
}

func saveProjectForm(m *Model) tea.Cmd {
	f := m.projectForm
	p, err := m.sess.UpsertProject(settings.ProjectInput{ID: f.ID, Name: f.Name, TaigaURL: f.TaigaURL, Template: f.Template})
	m.persistResult(err, "บันทึกโครงการ "+p.Name+" แล้ว")
	m.refresh()
	return nil
}

func saveDraftForm(m *Model) tea.Cmd {
	m.sess.ApplyImproved(m.textForm.Value)
	return nil
}

func saveMorningForm(m *Model) tea.Cmd {
	m.persistResult(m.sess.SaveMorningTemplate(m.textForm.Value), "บันทึกเทมเพลตแล้ว")
	return nil
}

func (m *Model) persistResult(err error, ok string) {
	switch {
	case err != nil:
		m.setStatus(err.Error(), true)
	case m.sess.LastSave.Culled != 0:
		m.setStatus("พื้นที่เก็บข้อมูลเต็ม ลบรูปภาพเก่าแล้ว", true)
	case ok != "":
		m.setStatus(ok, false)
	}
}

func (m *Model) copyText(text, ok string) {
	if err := clipboard.WriteAll(text); err != nil {
		m.setStatus("คัดลอกไม่สำเร็จ: "+err.Error(), true)
		return
	}
	m.setStatus(ok, false)
}
