package report

import (
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/hurryup/internal/models"
)

func yes() bool { return true }
func no() bool  { return false }

func newState() *models.AppState {
	st := models.NewAppState()
	st.Projects = testProjects()
	st.SelectedProjects = []int{1, 2}
	return st
}

func TestSubmitAppends(t *testing.T) {
	st := newState()
	now := time.Date(2025, time.April, 10, 17, 0, 0, 0, time.Local)

	out, err := Submit(st, Artifact{HTML: "<p>h</p>", Text: "h", Images: []string{"img"}}, now, nil)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if out.Updated || out.Index != 0 || len(st.Reports) != 1 {
		t.Fatalf("outcome = %+v, reports = %d", out, len(st.Reports))
	}

	r := st.Reports[0]
	if !r.Date.Equal(now) || r.ContentText != "h" || len(r.Images) != 1 {
		t.Errorf("report = %+v", r)
	}
	if len(r.Projects) != 2 || r.Projects[0] != 1 {
		t.Errorf("projects snapshot = %v", r.Projects)
	}
	if !st.SavedOn("2025-04-10") {
		t.Errorf("LastReportDate = %v", st.LastReportDate)
	}
	if len(st.SelectedProjects) != 0 {
		t.Error("selection not cleared")
	}
}

func TestSubmitTwiceSameDay(t *testing.T) {
	st := newState()
	morning := time.Date(2025, time.April, 10, 9, 0, 0, 0, time.Local)
	evening := time.Date(2025, time.April, 10, 18, 0, 0, 0, time.Local)

	if _, err := Submit(st, Artifact{HTML: "first", Text: "first"}, morning, nil); err != nil {
		t.Fatalf("first Submit() error = %v", err)
	}

	st.SelectedProjects = []int{2}
	_, err := Submit(st, Artifact{HTML: "second"}, evening, no)
	if !errors.Is(err, ErrOverwriteDeclined) {
		t.Fatalf("declined Submit() error = %v", err)
	}
	if st.Reports[0].ContentHTML != "first" || len(st.SelectedProjects) != 1 {
		t.Error("declined overwrite mutated state")
	}

	out, err := Submit(st, Artifact{HTML: "second", Text: "second", Images: []string{"i"}}, evening, yes)
	if err != nil {
		t.Fatalf("confirmed Submit() error = %v", err)
	}
	if !out.Updated || out.Index != 0 {
		t.Errorf("outcome = %+v", out)
	}
	if len(st.Reports) != 1 {
		t.Fatalf("reports = %d, want 1", len(st.Reports))
	}
	r := st.Reports[0]
	if r.ContentHTML != "second" || len(r.Images) != 1 || len(r.Projects) != 1 || r.Projects[0] != 2 {
		t.Errorf("report not overwritten: %+v", r)
	}
	if !r.Date.Equal(morning) {
		t.Error("report date must not change on overwrite")
	}
	if len(st.SelectedProjects) != 0 {
		t.Error("selection not cleared after overwrite")
	}
}

func TestSubmitOverwriteWithoutTodaysReport(t *testing.T) {
	st := newState()
	today := "2025-04-10"
	st.LastReportDate = &today
	now := time.Date(2025, time.April, 10, 12, 0, 0, 0, time.Local)

	out, err := Submit(st, Artifact{HTML: "x"}, now, yes)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if out.Index != -1 || len(st.Reports) != 0 {
		t.Errorf("outcome = %+v, reports = %d", out, len(st.Reports))
	}
	if len(st.SelectedProjects) != 0 {
		t.Error("selection should clear even when nothing was written")
	}
}

func TestSubmitNextDayAppends(t *testing.T) {
	st := newState()
	day1 := time.Date(2025, time.April, 10, 12, 0, 0, 0, time.Local)
	Submit(st, Artifact{HTML: "a"}, day1, nil)
	st.SelectedProjects = []int{1}
	out, err := Submit(st, Artifact{HTML: "b"}, day1.AddDate(0, 0, 1), nil)
	if err != nil || out.Updated || len(st.Reports) != 2 {
		t.Errorf("next-day submit: out=%+v err=%v reports=%d", out, err, len(st.Reports))
	}
}
