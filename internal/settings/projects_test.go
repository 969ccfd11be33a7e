package settings

import (
	"errors"
	"testing"

	"github.com/julianstephens/hurryup/internal/constants"
	apperrors "github.com/julianstephens/hurryup/internal/errors"
	"github.com/julianstephens/hurryup/internal/models"
)

func intPtr(i int) *int { return &i }

func TestUpsertProjectAssignsSequentialIDs(t *testing.T) {
	var projects []models.Project
	for i, name := range []string{"a", "b", "c", "d"} {
		var err error
		var p models.Project
		projects, p, err = UpsertProject(projects, ProjectInput{Name: name})
		if err != nil {
			t.Fatalf("UpsertProject(%q) error = %v", name, err)
		}
		if p.ID != i+1 {
			t.Errorf("id = %d, want %d", p.ID, i+1)
		}
	}
}

func TestUpsertProject(t *testing.T) {
	base := func() []models.Project {
		return []models.Project{
			{ID: 1, Name: "Alpha", Template: "<p>{project}</p>"},
			{ID: 5, Name: "Beta", Template: "<p>{project}</p>"},
		}
	}

	tests := []struct {
		name      string
		in        ProjectInput
		wantErr   bool
		wantLen   int
		wantIdx   int
		wantID    int
		wantName  string
		wantTmpl  string
		wantTaiga string
	}{
		{
			name: "create uses max plus one", in: ProjectInput{Name: "  Gamma  ", TaigaURL: " https://t "},
			wantLen: 3, wantIdx: 2, wantID: 6, wantName: "Gamma", wantTmpl: constants.DefaultTemplate, wantTaiga: "https://t",
		},
		{
			name: "update keeps position", in: ProjectInput{ID: intPtr(1), Name: "Alpha2", Template: "<p>x</p>"},
			wantLen: 2, wantIdx: 0, wantID: 1, wantName: "Alpha2", wantTmpl: "<p>x</p>",
		},
		{
			name: "unknown id creates", in: ProjectInput{ID: intPtr(42), Name: "New"},
			wantLen: 3, wantIdx: 2, wantID: 6, wantName: "New", wantTmpl: constants.DefaultTemplate,
		},
		{name: "blank name rejected", in: ProjectInput{Name: "   "}, wantErr: true, wantLen: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects, p, err := UpsertProject(base(), tt.in)
			if len(projects) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(projects), tt.wantLen)
			}
			if tt.wantErr {
				var ve *apperrors.ValidationError
				if !errors.As(err, &ve) || ve.Field != "name" {
					t.Errorf("error = %v, want name ValidationError", err)
				}
				if projects[0].Name != "Alpha" {
					t.Error("failed validation mutated projects")
				}
				return
			}
			if err != nil {
				t.Fatalf("UpsertProject() error = %v", err)
			}
			got := projects[tt.wantIdx]
			if got != p || got.ID != tt.wantID || got.Name != tt.wantName || got.Template != tt.wantTmpl || got.TaigaURL != tt.wantTaiga {
				t.Errorf("project = %+v", got)
			}
		})
	}
}

func stateWithProjects() *models.AppState {
	st := models.NewAppState()
	st.Projects = []models.Project{
		{ID: 1, Name: "Alpha", Template: "<p>{project}</p>"},
		{ID: 2, Name: "Beta", Template: "<p>{project}</p>"},
		{ID: 3, Name: "Gamma", Template: "<p>{project}</p>"},
	}
	st.SelectedProjects = []int{3, 2}
	st.Reports = []models.Report{{Projects: []int{2}}}
	return st
}

func TestDeleteProject(t *testing.T) {
	st := stateWithProjects()

	draft, err := DeleteProject(st, 2)
	if err != nil {
		t.Fatalf("DeleteProject() error = %v", err)
	}
	if len(st.Projects) != 2 || st.Projects[1].ID != 3 {
		t.Errorf("projects = %+v", st.Projects)
	}
	if len(st.SelectedProjects) != 1 || st.SelectedProjects[0] != 3 {
		t.Errorf("selection = %v", st.SelectedProjects)
	}
	if st.Reports[0].Projects[0] != 2 {
		t.Error("history reference was modified")
	}
	if draft.HTML != "<p>Gamma</p>" {
		t.Errorf("draft = %q", draft.HTML)
	}

	if _, err := DeleteProject(st, 2); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("second delete error = %v", err)
	}

	// ids are never reused after a delete of a non-max project
	projects, p, _ := UpsertProject(st.Projects, ProjectInput{Name: "Delta"})
	if p.ID != 4 || len(projects) != 3 {
		t.Errorf("new id after delete = %d", p.ID)
	}
}

func TestToggleProject(t *testing.T) {
	st := stateWithProjects()

	if _, err := ToggleProject(st, 1); err != nil {
		t.Fatalf("ToggleProject() error = %v", err)
	}
	if got := st.SelectedProjects; len(got) != 3 || got[2] != 1 {
		t.Errorf("after add: %v", got)
	}

	draft, err := ToggleProject(st, 3)
	if err != nil {
		t.Fatalf("ToggleProject() error = %v", err)
	}
	if got := st.SelectedProjects; len(got) != 2 || got[0] != 2 || got[1] != 1 {
		t.Errorf("after remove: %v", got)
	}
	if draft.HTML != "<p>Beta</p><p><br></p><p>Alpha</p>" {
		t.Errorf("draft = %q", draft.HTML)
	}

	if _, err := ToggleProject(st, 99); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("toggle unknown error = %v", err)
	}
}
