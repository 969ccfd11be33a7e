package backup

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/hurryup/internal/constants"
	apperrors "github.com/julianstephens/hurryup/internal/errors"
	"github.com/julianstephens/hurryup/internal/models"
)

func sampleState() *models.AppState {
	st := models.NewAppState()
	st.User = models.User{Name: "Ann", Role: "dev", Workplace: "HQ"}
	st.Projects = []models.Project{{ID: 1, Name: "Alpha", Template: constants.DefaultTemplate}}
	st.SelectedProjects = []int{1}
	st.OnboardingComplete = true
	return st
}

func TestFileName(t *testing.T) {
	now := time.Date(2025, time.March, 4, 5, 6, 7, 0, time.Local)
	want := "hurryup-backup-2025-03-04_05-06-07.json"
	if got := FileName(now); got != want {
		t.Errorf("FileName() = %q, want %q", got, want)
	}
}

func TestExport(t *testing.T) {
	now := time.Date(2025, time.March, 4, 5, 6, 7, 0, time.UTC)
	data, err := Export(sampleState(), now)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.Contains(string(data), "\n  \"appVersion\": \"1.0\"") {
		t.Errorf("export not pretty-printed with appVersion: %s", data)
	}

	var env models.ExportEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if !env.ExportDate.Equal(now) || env.Data.User.Name != "Ann" {
		t.Errorf("envelope = %+v", env)
	}
}

func TestImport(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		wantReason string
	}{
		{"malformed json", "{", "not a JSON document"},
		{"missing data", `{"exportDate":"2025-01-01T00:00:00Z"}`, "missing data"},
		{"missing user", `{"data":{"projects":[]}}`, "missing data.user"},
		{"null user", `{"data":{"user":null}}`, "missing data.user"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := sampleState()
			_, err := Import(current, []byte(tt.doc))
			var ife *apperrors.ImportFormatError
			if !errors.As(err, &ife) {
				t.Fatalf("Import() error = %v, want ImportFormatError", err)
			}
			if ife.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", ife.Reason, tt.wantReason)
			}
			if current.User.Name != "Ann" {
				t.Error("current state mutated on rejected import")
			}
		})
	}
}

func TestImportShallowMerge(t *testing.T) {
	current := sampleState()
	current.OnboardingComplete = false
	current.MorningTemplate = "custom"

	doc := `{
		"exportDate": "2025-01-01T00:00:00Z",
		"appVersion": "1.0",
		"data": {
			"user": {"name": "Bee", "role": "qa"},
			"projects": [{"id": 9, "name": "Imported"}],
			"onboardingComplete": false
		}
	}`

	next, err := Import(current, []byte(doc))
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if next.User.Name != "Bee" || next.User.Workplace != "" {
		t.Errorf("user not replaced wholesale: %+v", next.User)
	}
	if len(next.Projects) != 1 || next.Projects[0].ID != 9 {
		t.Errorf("projects = %+v", next.Projects)
	}
	if next.Projects[0].Template != constants.DefaultTemplate {
		t.Error("imported project template not defaulted")
	}
	// keys absent from the document keep current values
	if next.MorningTemplate != "custom" || len(next.SelectedProjects) != 1 {
		t.Errorf("absent keys not preserved: template=%q selected=%v", next.MorningTemplate, next.SelectedProjects)
	}
	if !next.OnboardingComplete {
		t.Error("import must mark onboarding complete")
	}
	if current.User.Name != "Ann" {
		t.Error("Import mutated current state")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	st := sampleState()
	day := "2025-03-04"
	st.LastReportDate = &day
	st.Reports = []models.Report{{
		Date:        time.Date(2025, time.March, 4, 9, 0, 0, 0, time.UTC),
		Projects:    []int{1},
		ContentHTML: "<p>x</p>",
		ContentText: "x",
		Images:      []string{},
	}}

	data, err := Export(st, time.Now())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	got, err := Import(models.NewAppState(), data)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if len(got.Reports) != 1 || !got.Reports[0].Date.Equal(st.Reports[0].Date) || !got.SavedOn(day) {
		t.Errorf("round trip lost data: %+v", got)
	}
}
