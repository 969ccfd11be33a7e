package router

import (
	"errors"
	"testing"

	"github.com/julianstephens/hurryup/internal/constants"
	apperrors "github.com/julianstephens/hurryup/internal/errors"
	"github.com/julianstephens/hurryup/internal/models"
)

func validFields() Fields {
	return Fields{Name: " Ann ", Role: "dev", Workplace: "HQ", ProjectLabel: "Ops"}
}

func TestWizardGoTo(t *testing.T) {
	tests := []struct {
		name      string
		fields    Fields
		from      int
		to        int
		wantErr   bool
		wantStep  int
		wantField string
	}{
		{"forward with all fields", validFields(), 1, 2, false, 2, ""},
		{"forward missing label", Fields{Name: "a", Role: "b", Workplace: "c"}, 1, 2, true, 1, "projectLabel"},
		{"forward blank name", Fields{Name: "  ", Role: "b", Workplace: "c", ProjectLabel: "d"}, 1, 3, true, 1, "name"},
		{"backward unguarded", Fields{}, 2, 1, false, 1, ""},
		{"forward from step two unguarded", Fields{}, 2, 3, false, 3, ""},
		{"out of range", validFields(), 1, 4, true, 1, "step"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWizard()
			w.Fields = tt.fields
			w.Step = tt.from

			err := w.GoTo(tt.to)
			if tt.wantErr {
				var ve *apperrors.ValidationError
				if !errors.As(err, &ve) || ve.Field != tt.wantField {
					t.Errorf("GoTo() error = %v, want field %q", err, tt.wantField)
				}
			} else if err != nil {
				t.Fatalf("GoTo() error = %v", err)
			}
			if w.Step != tt.wantStep {
				t.Errorf("Step = %d, want %d", w.Step, tt.wantStep)
			}
		})
	}
}

func TestWizardSummary(t *testing.T) {
	w := NewWizard()
	w.Step = 2
	w.AddProject("Alpha", "")
	if err := w.GoTo(3); err != nil {
		t.Fatalf("GoTo(3) error = %v", err)
	}
	got := w.Summary()
	if got.Name != "-" || got.Role != "-" || got.ProjectCount != 1 || got.HasAvatar {
		t.Errorf("Summary() = %+v", got)
	}

	// summary is only recomputed on reaching step three
	w.AddProject("Beta", "")
	if w.Summary().ProjectCount != 1 {
		t.Error("summary recomputed before reaching step three again")
	}
}

func TestWizardSkipToComplete(t *testing.T) {
	w := NewWizard()
	w.Step = 2
	if err := w.SkipToComplete(); err == nil || w.Step != 1 {
		t.Errorf("SkipToComplete() with blank fields: err=%v step=%d", err, w.Step)
	}

	w.Fields = validFields()
	w.ProfileImage = "data:image/jpeg;base64,AA"
	if err := w.SkipToComplete(); err != nil || w.Step != 3 {
		t.Fatalf("SkipToComplete() err=%v step=%d", err, w.Step)
	}
	if s := w.Summary(); s.Name != "Ann" || !s.HasAvatar {
		t.Errorf("Summary() = %+v", s)
	}
}

func TestWizardProjects(t *testing.T) {
	w := NewWizard()
	if _, err := w.AddProject("  ", "x"); err == nil {
		t.Error("AddProject with blank name should fail")
	}

	a, _ := w.AddProject("Alpha", " https://taiga/a ")
	b, _ := w.AddProject("Beta", "")
	if a.ID != 1 || b.ID != 2 || a.TaigaURL != "https://taiga/a" || a.Template != constants.DefaultTemplate {
		t.Errorf("projects = %+v, %+v", a, b)
	}

	w.RemoveProject(1)
	c, _ := w.AddProject("Gamma", "")
	if len(w.Projects) != 2 || c.ID != 3 {
		t.Errorf("after remove: %+v", w.Projects)
	}
	w.RemoveProject(99)
	if len(w.Projects) != 2 {
		t.Error("removing unknown id changed the list")
	}
}

func TestWizardComplete(t *testing.T) {
	w := NewWizard()
	w.Fields = validFields()
	w.AddProject("Alpha", "")

	st := models.NewAppState()
	w.Complete(st)

	if !st.OnboardingComplete || st.User.Name != "Ann" || st.User.ProjectLabel != "Ops" {
		t.Errorf("state = %+v", st)
	}
	if len(st.Projects) != 1 || st.Projects[0].Name != "Alpha" {
		t.Errorf("projects = %+v", st.Projects)
	}

	w.Reset()
	if len(st.Projects) != 1 {
		t.Error("Reset() affected completed state")
	}
	if w.Step != 1 || len(w.Projects) != 0 || w.Fields != (Fields{}) {
		t.Errorf("Reset() left %+v", w)
	}
}
