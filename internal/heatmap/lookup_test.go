package heatmap

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/hurryup/internal/constants"
	"github.com/julianstephens/hurryup/internal/models"
)

func TestFindReportForDay(t *testing.T) {
	reports := []models.Report{
		{Date: time.Date(2025, time.May, 1, 9, 0, 0, 0, time.Local), ContentText: "may1"},
		{Date: time.Date(2025, time.May, 2, 23, 30, 0, 0, time.Local), ContentText: "may2"},
	}

	r, ok := FindReportForDay(reports, time.Date(2025, time.May, 2, 0, 0, 0, 0, time.Local))
	if !ok || r.ContentText != "may2" {
		t.Errorf("FindReportForDay(May 2) = %+v, %v", r, ok)
	}
	if _, ok := FindReportForDay(reports, time.Date(2025, time.May, 3, 12, 0, 0, 0, time.Local)); ok {
		t.Error("FindReportForDay(May 3) should not match")
	}
}

func TestReportViewDeletedProject(t *testing.T) {
	st := models.NewAppState()
	st.Projects = []models.Project{{ID: 1, Name: "Alpha"}}
	r := models.Report{Date: time.Date(2025, time.May, 1, 9, 0, 0, 0, time.Local), Projects: []int{1, 2}}

	v := ReportView(st, &r, time.Local)
	if len(v.ProjectNames) != 2 || v.ProjectNames[0] != "Alpha" || v.ProjectNames[1] != constants.DeletedProjectName {
		t.Errorf("ProjectNames = %v", v.ProjectNames)
	}
	if len(r.Projects) != 2 {
		t.Error("ReportView must not touch history references")
	}
	if !strings.Contains(v.Title, "1 พฤษภาคม 2568") {
		t.Errorf("Title = %q", v.Title)
	}
}

func TestReportViewTitleLocation(t *testing.T) {
	st := models.NewAppState()
	r := models.Report{Date: time.Date(2025, time.May, 1, 20, 0, 0, 0, time.UTC)}

	bangkok := time.FixedZone("ICT", 7*60*60)
	if v := ReportView(st, &r, bangkok); !strings.Contains(v.Title, "2 พฤษภาคม 2568") {
		t.Errorf("Title in ICT = %q, want 2 May", v.Title)
	}
	if v := ReportView(st, &r, time.UTC); !strings.Contains(v.Title, "1 พฤษภาคม 2568") {
		t.Errorf("Title in UTC = %q, want 1 May", v.Title)
	}
}
