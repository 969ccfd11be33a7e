package report

import (
	"time"

	"github.com/julianstephens/hurryup/internal/models"
	"github.com/julianstephens/hurryup/internal/utils"
)

type Stats struct {
	TotalProjects   int
	ReportsThisYear int
	ReportedToday   bool
}

func ComputeStats(state *models.AppState, now time.Time) Stats {
	s := Stats{
		TotalProjects: len(state.Projects),
		ReportedToday: state.SavedOn(utils.DayKey(now)),
	}
	for _, r := range state.Reports {
		if r.Date.In(now.Location()).Year() == now.Year() {
			s.ReportsThisYear++
		}
	}
	return s
}

// ProjectLinks returns the selected projects that link to an external tracker,
// in selection order.
func ProjectLinks(state *models.AppState) []models.Project {
	var out []models.Project
	for _, id := range state.SelectedProjects {
		if p, ok := state.ProjectByID(id); ok && p.TaigaURL != "" {
			out = append(out, p)
		}
	}
	return out
}
