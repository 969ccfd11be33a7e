package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/hurryup/internal/heatmap"
	"github.com/julianstephens/hurryup/internal/models"
	"github.com/julianstephens/hurryup/internal/report"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateLanding:
		return m.viewLanding()
	case StateOnboarding:
		return m.viewOnboarding()
	}

	var content string
	switch m.state {
	case StateReport:
		content = m.viewReport()
	case StateHeatmap:
		content = docStyle.Render(m.calendar.View())
	case StateMorning:
		content = m.viewMorning()
	case StateSummary:
		content = docStyle.Render(titleStyle.Render("สรุปรายงาน") + "\n\n" + m.viewport.View())
	case StateViewDay:
		content = docStyle.Render(m.viewport.View())
	case StateEditing:
		content = docStyle.Render(m.form.View())
	case StateConfirmation:
		content = docStyle.Render(panelStyle.Render(m.form.View()))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	switch {
	case m.status == "":
		return ""
	case m.statusErr:
		return dangerStyle.Render(m.status)
	}
	return statusStyle.Render(m.status)
}

func (m Model) viewLanding() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("HurryUp"),
		"",
		"สร้างรายงานประจำวันได้ในไม่กี่วินาที",
		"",
		subtleStyle.Render("[enter] เริ่มต้นใช้งาน   [i] นำเข้าข้อมูล   [q] ออก"),
		"",
		m.viewStatus(),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) viewOnboarding() string {
	step := m.sess.Wizard().Step
	title := titleStyle.Render(fmt.Sprintf("ตั้งค่าเริ่มต้น (%d/3)", step))

	parts := []string{title, ""}
	if m.form != nil {
		parts = append(parts, m.form.View())
	}
	if step == 2 {
		parts = append(parts, "", panelStyle.Render(m.draftProjectsView()))
	}
	parts = append(parts, "", m.viewStatus(),
		subtleStyle.Render("[esc] กลับหน้าแรก   [ctrl+s] ข้ามไปสรุป"))
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) viewReport() string {
	stats := m.sess.Stats()
	summary := fmt.Sprintf("โครงการ %d  ·  รายงานปีนี้ %d", stats.TotalProjects, stats.ReportsThisYear)
	if stats.ReportedToday {
		summary += "  ·  " + statusStyle.Render("อัปบล็อกแล้ววันนี้ ✓")
	}

	text := m.sess.Surface().Text()
	if strings.TrimSpace(text) == "" {
		text = subtleStyle.Render("ยังไม่มีรายละเอียดงาน กด [w] เพื่อเขียน")
	}
	if n := m.sess.Attachments().Len(); n > 0 {
		text += "\n\n" + subtleStyle.Render(fmt.Sprintf("รูปภาพแนบ %d รูป", n))
	}
	if m.improving {
		text += "\n\n" + subtleStyle.Render("กำลังปรับปรุงข้อความ...")
	}

	editorWidth := m.width - m.width/2 - 8
	if editorWidth < 20 {
		editorWidth = 40
	}
	draft := panelStyle.Width(editorWidth).Render(text)

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		subtleStyle.Render(summary),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, m.projects.View(), " ", draft),
	))
}

func (m Model) viewMorning() string {
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("ข้อความเช้า"),
		"",
		panelStyle.Render(m.sess.Morning()),
	))
}

func summaryViewText(a report.Artifact, links []models.Project) string {
	var b strings.Builder
	b.WriteString(a.ShareText())
	if len(links) > 0 {
		b.WriteString("\n\n")
		b.WriteString(titleStyle.Render("ลิงก์ Taiga"))
		for _, p := range links {
			fmt.Fprintf(&b, "\n• %s  %s", p.Name, subtleStyle.Render(p.TaigaURL))
		}
	}
	return b.String()
}

func dayViewText(v heatmap.View) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(v.Title))
	if len(v.ProjectNames) > 0 {
		b.WriteString("\n" + subtleStyle.Render(strings.Join(v.ProjectNames, ", ")))
	}
	b.WriteString("\n\n")
	b.WriteString(v.ContentText)
	if n := len(v.Images); n > 0 {
		fmt.Fprintf(&b, "\n\n%s", subtleStyle.Render(fmt.Sprintf("รูปภาพ %d รูป", n)))
	}
	return b.String()
}
