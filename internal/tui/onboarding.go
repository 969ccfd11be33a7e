package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/hurryup/internal/router"
)

func (m *Model) showOnboardingStep() tea.Cmd {
	w := m.sess.Wizard()
	switch w.Step {
	case router.StepProfile:
		m.onboarding.Name = w.Fields.Name
		m.onboarding.Role = w.Fields.Role
		m.onboarding.Workplace = w.Fields.Workplace
		m.onboarding.ProjectLabel = w.Fields.ProjectLabel
		m.form = NewProfileStepForm(m.onboarding)
		m.onFormDone = finishProfileStep
	case router.StepProjects:
		m.form = NewProjectsStepForm(m.onboarding)
		m.onFormDone = finishProjectsStep
	default:
		m.form = NewSummaryStepForm(m.onboarding, summaryText(w.Summary()))
		m.onFormDone = finishSummaryStep
	}
	m.form = m.form.WithWidth(m.formWidth())
	return m.form.Init()
}

func (m *Model) copyFieldsToWizard() {
	m.sess.Wizard().Fields = router.Fields{
		Name:         m.onboarding.Name,
		Role:         m.onboarding.Role,
		Workplace:    m.onboarding.Workplace,
		ProjectLabel: m.onboarding.ProjectLabel,
	}
}

func finishProfileStep(m *Model) tea.Cmd {
	m.copyFieldsToWizard()
	if path := strings.TrimSpace(m.onboarding.ImagePath); path != "" {
		raw, err := os.ReadFile(path)
		if err == nil {
			err = m.sess.SetWizardImage(context.Background(), raw)
		}
		if err != nil {
			m.setStatus(err.Error(), true)
		}
	}
	if err := m.sess.Wizard().GoTo(router.StepProjects); err != nil {
		m.setStatus(err.Error(), true)
	}
	return m.showOnboardingStep()
}

func finishProjectsStep(m *Model) tea.Cmd {
	w := m.sess.Wizard()
	if strings.TrimSpace(m.onboarding.ProjectName) != "" {
		if p, err := w.AddProject(m.onboarding.ProjectName, m.onboarding.ProjectURL); err == nil {
			m.setStatus("เพิ่มโครงการ "+p.Name+" แล้ว", false)
		}
	}
	switch m.onboarding.Next {
	case nextContinue:
		_ = w.GoTo(router.StepSummary)
	case nextBack:
		_ = w.GoTo(router.StepProfile)
	}
	return m.showOnboardingStep()
}

func finishSummaryStep(m *Model) tea.Cmd {
	if !m.onboarding.Confirmed {
		_ = m.sess.Wizard().GoTo(router.StepProjects)
		return m.showOnboardingStep()
	}
	if err := m.sess.CompleteOnboarding(); err != nil {
		m.setStatus(err.Error(), true)
	} else {
		m.setStatus("ยินดีต้อนรับสู่ HurryUp! 🎉", false)
	}
	m.form = nil
	return m.syncRoute()
}

// skipOnboarding jumps to the summary when the profile fields are complete.
func (m *Model) skipOnboarding() tea.Cmd {
	m.copyFieldsToWizard()
	if err := m.sess.Wizard().SkipToComplete(); err != nil {
		m.setStatus("กรุณากรอกข้อมูลให้ครบ: "+err.Error(), true)
	}
	return m.showOnboardingStep()
}

func summaryText(s router.Summary) string {
	avatar := "ไม่มี"
	if s.HasAvatar {
		avatar = "มี"
	}
	return fmt.Sprintf("ชื่อ: %s\nตำแหน่ง: %s\nจำนวนโครงการ: %d\nรูปโปรไฟล์: %s",
		s.Name, s.Role, s.ProjectCount, avatar)
}

func (m Model) draftProjectsView() string {
	projects := m.sess.Wizard().Projects
	if len(projects) == 0 {
		return subtleStyle.Render("ยังไม่มีโครงการ")
	}
	var b strings.Builder
	for _, p := range projects {
		fmt.Fprintf(&b, "• %s", p.Name)
		if p.TaigaURL != "" {
			b.WriteString(subtleStyle.Render("  " + p.TaigaURL))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
