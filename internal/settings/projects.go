// Package settings holds the profile and project editing operations. Each
// operation validates before it mutates; persisting is the caller's job.
package settings

import (
	"errors"
	"strings"

	"github.com/julianstephens/hurryup/internal/constants"
	apperrors "github.com/julianstephens/hurryup/internal/errors"
	"github.com/julianstephens/hurryup/internal/models"
	"github.com/julianstephens/hurryup/internal/report"
)

var ErrProjectNotFound = errors.New("project not found")

// ProjectInput is the project form. A nil ID, or one that names no existing
// project, creates a new project.
type ProjectInput struct {
	ID       *int
	Name     string
	TaigaURL string
	Template string
}

// UpsertProject replaces the project with in.ID in place or appends a new one
// with the next id. It returns the updated slice and the saved project.
func UpsertProject(projects []models.Project, in ProjectInput) ([]models.Project, models.Project, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return projects, models.Project{}, apperrors.Required("name")
	}

	p := models.Project{
		Name:     name,
		TaigaURL: strings.TrimSpace(in.TaigaURL),
		Template: strings.TrimSpace(in.Template),
	}
	if p.Template == "" {
		p.Template = constants.DefaultTemplate
	}

	if in.ID != nil {
		if i := models.FindProject(projects, *in.ID); i >= 0 {
			p.ID = *in.ID
			projects[i] = p
			return projects, p, nil
		}
	}

	p.ID = models.NextProjectID(projects)
	return append(projects, p), p, nil
}

// DeleteProject removes a project and drops it from the selection. Reports
// keep their references. The draft for the new selection is returned.
func DeleteProject(state *models.AppState, id int) (report.Draft, error) {
	i := models.FindProject(state.Projects, id)
	if i < 0 {
		return report.Draft{}, ErrProjectNotFound
	}

	state.Projects = append(state.Projects[:i:i], state.Projects[i+1:]...)

	kept := make([]int, 0, len(state.SelectedProjects))
	for _, sel := range state.SelectedProjects {
		if sel != id {
			kept = append(kept, sel)
		}
	}
	state.SelectedProjects = kept

	return report.UpdateDraft(state.Projects, state.SelectedProjects), nil
}

// ToggleProject adds id to the end of the selection or removes it, and
// returns the new draft.
func ToggleProject(state *models.AppState, id int) (report.Draft, error) {
	if models.FindProject(state.Projects, id) < 0 {
		return report.Draft{}, ErrProjectNotFound
	}
	removed := false
	kept := make([]int, 0, len(state.SelectedProjects)+1)
	for _, sel := range state.SelectedProjects {
		if sel == id {
			removed = true
			continue
		}
		kept = append(kept, sel)
	}
	if !removed {
		kept = append(kept, id)
	}
	state.SelectedProjects = kept
	return report.UpdateDraft(state.Projects, state.SelectedProjects), nil
}
