package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/hurryup/internal/constants"
)

// OnboardingFormModel backs the three onboarding forms.
type OnboardingFormModel struct {
	Name         string
	Role         string
	Workplace    string
	ProjectLabel string
	ImagePath    string
	ProjectName  string
	ProjectURL   string
	Next         string
	Confirmed    bool
}

type ProjectFormModel struct {
	ID       *int
	Name     string
	TaigaURL string
	Template string
}

type ProfileFormModel struct {
	Name         string
	Role         string
	Workplace    string
	ProjectLabel string
	ImagePath    string
}

// TextFormModel backs single-field forms: draft text, morning template and
// file paths.
type TextFormModel struct {
	Value string
}

type ConfirmationFormModel struct {
	Message   string
	Confirmed bool
}

const (
	nextAdd      = "add"
	nextContinue = "continue"
	nextBack     = "back"
)

func required(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("กรุณากรอก%s", label)
		}
		return nil
	}
}

// NewProfileStepForm is onboarding step one.
func NewProfileStepForm(fm *OnboardingFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("ชื่อ-นามสกุล").Value(&fm.Name).Validate(required("ชื่อ")),
			huh.NewInput().Title("ตำแหน่ง").Value(&fm.Role).Validate(required("ตำแหน่ง")),
			huh.NewInput().Title("สถานที่ปฏิบัติงาน").Value(&fm.Workplace).Validate(required("สถานที่ปฏิบัติงาน")),
			huh.NewInput().Title("ชื่อโครงการ (หัวรายงาน)").Value(&fm.ProjectLabel).Validate(required("ชื่อโครงการ")),
			huh.NewInput().Title("รูปโปรไฟล์").Description("path ของไฟล์รูป ไม่บังคับ").Value(&fm.ImagePath),
		).Title("ขั้นตอนที่ 1: ข้อมูลส่วนตัว"),
	).WithTheme(huh.ThemeDracula())
}

// NewProjectsStepForm is onboarding step two. It is shown once per project.
func NewProjectsStepForm(fm *OnboardingFormModel) *huh.Form {
	fm.ProjectName, fm.ProjectURL, fm.Next = "", "", nextAdd
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("ชื่อโครงการ").Description("เว้นว่างได้ถ้าไม่ต้องการเพิ่ม").Value(&fm.ProjectName),
			huh.NewInput().Title("ลิงก์ Taiga").Value(&fm.ProjectURL),
			huh.NewSelect[string]().
				Title("ต่อไป").
				Options(
					huh.NewOption("เพิ่มโครงการอื่น", nextAdd),
					huh.NewOption("ถัดไป", nextContinue),
					huh.NewOption("ย้อนกลับ", nextBack),
				).
				Value(&fm.Next),
		).Title("ขั้นตอนที่ 2: โครงการ"),
	).WithTheme(huh.ThemeDracula())
}

// NewSummaryStepForm is onboarding step three.
func NewSummaryStepForm(fm *OnboardingFormModel, summary string) *huh.Form {
	fm.Confirmed = true
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("ขั้นตอนที่ 3: สรุป").Description(summary),
			huh.NewConfirm().
				Title("เริ่มใช้งาน HurryUp?").
				Affirmative("เริ่มเลย").
				Negative("ย้อนกลับ").
				Value(&fm.Confirmed),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewProjectForm(fm *ProjectFormModel) *huh.Form {
	title := "เพิ่มโครงการ"
	if fm.ID != nil {
		title = "แก้ไขโครงการ"
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("ชื่อโครงการ").Value(&fm.Name).Validate(required("ชื่อโครงการ")),
			huh.NewInput().Title("ลิงก์ Taiga").Value(&fm.TaigaURL),
			huh.NewText().
				Title("เทมเพลต").
				Description("HTML ที่มี "+constants.ProjectPlaceholder+" เว้นว่างเพื่อใช้ค่าเริ่มต้น").
				Lines(6).
				Value(&fm.Template),
		).Title(title),
	).WithTheme(huh.ThemeDracula())
}

func NewProfileForm(fm *ProfileFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("ชื่อ-นามสกุล").Value(&fm.Name),
			huh.NewInput().Title("ตำแหน่ง").Value(&fm.Role),
			huh.NewInput().Title("สถานที่ปฏิบัติงาน").Value(&fm.Workplace),
			huh.NewInput().Title("ชื่อโครงการ (หัวรายงาน)").Value(&fm.ProjectLabel),
			huh.NewInput().Title("รูปโปรไฟล์").Description("path ของไฟล์รูป เว้นว่างเพื่อไม่เปลี่ยน").Value(&fm.ImagePath),
		).Title("ข้อมูลส่วนตัว"),
	).WithTheme(huh.ThemeDracula())
}

func NewTextForm(fm *TextFormModel, title, description string, lines int) *huh.Form {
	var field huh.Field
	if lines > 1 {
		field = huh.NewText().Title(title).Description(description).Lines(lines).Value(&fm.Value)
	} else {
		field = huh.NewInput().Title(title).Description(description).Value(&fm.Value)
	}
	return huh.NewForm(huh.NewGroup(field)).WithTheme(huh.ThemeDracula())
}

func NewConfirmationForm(fm *ConfirmationFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fm.Message).
				Affirmative("ยืนยัน").
				Negative("ยกเลิก").
				Value(&fm.Confirmed),
		),
	).WithTheme(huh.ThemeDracula())
}
