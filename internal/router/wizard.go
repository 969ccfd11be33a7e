package router

import (
	"strings"

	"github.com/julianstephens/hurryup/internal/constants"
	apperrors "github.com/julianstephens/hurryup/internal/errors"
	"github.com/julianstephens/hurryup/internal/models"
)

const (
	StepProfile  = 1
	StepProjects = 2
	StepSummary  = 3
)

// Fields is the profile form on the first onboarding step.
type Fields struct {
	Name         string
	Role         string
	Workplace    string
	ProjectLabel string
}

func (f Fields) trimmed() Fields {
	return Fields{
		Name:         strings.TrimSpace(f.Name),
		Role:         strings.TrimSpace(f.Role),
		Workplace:    strings.TrimSpace(f.Workplace),
		ProjectLabel: strings.TrimSpace(f.ProjectLabel),
	}
}

// Validate requires every field to be non-blank.
func (f Fields) Validate() error {
	t := f.trimmed()
	for _, c := range []struct{ field, value string }{
		{"name", t.Name},
		{"role", t.Role},
		{"workplace", t.Workplace},
		{"projectLabel", t.ProjectLabel},
	} {
		if c.value == "" {
			return apperrors.Required(c.field)
		}
	}
	return nil
}

type Summary struct {
	Name         string
	Role         string
	ProjectCount int
	HasAvatar    bool
}

// Wizard holds the transient onboarding state.
type Wizard struct {
	Step         int
	Fields       Fields
	Projects     []models.Project
	ProfileImage string
	summary      Summary
}

func NewWizard() *Wizard {
	w := &Wizard{}
	w.Reset()
	return w
}

// Reset returns to step one with empty fields and no draft projects.
func (w *Wizard) Reset() {
	w.Step = StepProfile
	w.Fields = Fields{}
	w.Projects = []models.Project{}
	w.ProfileImage = ""
	w.summary = Summary{}
}

// GoTo moves to step. Leaving the profile step forward requires valid fields.
func (w *Wizard) GoTo(step int) error {
	if step < StepProfile || step > StepSummary {
		return &apperrors.ValidationError{Field: "step", Message: "out of range"}
	}
	if step > w.Step && w.Step == StepProfile {
		if err := w.Fields.Validate(); err != nil {
			return err
		}
	}
	w.Step = step
	if step == StepSummary {
		w.summary = w.computeSummary()
	}
	return nil
}

// SkipToComplete jumps to the summary. With invalid fields it returns to the
// profile step instead.
func (w *Wizard) SkipToComplete() error {
	if err := w.Fields.Validate(); err != nil {
		w.Step = StepProfile
		return err
	}
	return w.GoTo(StepSummary)
}

// AddProject appends a draft project with the default template.
func (w *Wizard) AddProject(name, url string) (models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Project{}, apperrors.Required("name")
	}
	p := models.Project{
		ID:       models.NextProjectID(w.Projects),
		Name:     name,
		TaigaURL: strings.TrimSpace(url),
		Template: constants.DefaultTemplate,
	}
	w.Projects = append(w.Projects, p)
	return p, nil
}

// RemoveProject drops a draft project; unknown ids are ignored.
func (w *Wizard) RemoveProject(id int) {
	kept := w.Projects[:0]
	for _, p := range w.Projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	w.Projects = kept
}

// Summary returns the values computed when step three was last reached.
func (w *Wizard) Summary() Summary { return w.summary }

func (w *Wizard) computeSummary() Summary {
	t := w.Fields.trimmed()
	s := Summary{Name: t.Name, Role: t.Role, ProjectCount: len(w.Projects), HasAvatar: w.ProfileImage != ""}
	if s.Name == "" {
		s.Name = "-"
	}
	if s.Role == "" {
		s.Role = "-"
	}
	return s
}

// Complete copies the wizard into state and marks onboarding done. The
// caller persists and navigates to the app.
func (w *Wizard) Complete(state *models.AppState) {
	t := w.Fields.trimmed()
	state.User.Name = t.Name
	state.User.Role = t.Role
	state.User.Workplace = t.Workplace
	state.User.ProjectLabel = t.ProjectLabel
	if w.ProfileImage != "" {
		state.User.ProfileImage = w.ProfileImage
	}
	state.Projects = append([]models.Project{}, w.Projects...)
	state.OnboardingComplete = true
}
