package report

import (
	"errors"
	"time"

	"github.com/julianstephens/hurryup/internal/models"
	"github.com/julianstephens/hurryup/internal/utils"
)

// ErrOverwriteDeclined is returned when today's report exists and the caller
// did not confirm replacing it.
var ErrOverwriteDeclined = errors.New("today's report already saved, overwrite not confirmed")

// ConfirmFunc asks the user to approve overwriting today's report.
type ConfirmFunc func() bool

// SaveOutcome describes what Submit did to the report history.
type SaveOutcome struct {
	// Updated is true when today's report was overwritten instead of appended.
	Updated bool
	// Index is the position of the affected report, -1 if none was written.
	Index int
}

// Submit records the artifact for today. A second submission on the same day
// overwrites that day's report after confirm approves it. On success the
// selection is cleared; the caller clears its attachment buffer and persists.
func Submit(state *models.AppState, a Artifact, now time.Time, confirm ConfirmFunc) (SaveOutcome, error) {
	today := utils.DayKey(now)

	if state.SavedOn(today) {
		if confirm == nil || !confirm() {
			return SaveOutcome{Index: -1}, ErrOverwriteDeclined
		}
		out := SaveOutcome{Updated: true, Index: -1}
		for i := range state.Reports {
			r := &state.Reports[i]
			if utils.SameDay(now, r.Date) {
				r.ContentHTML = a.HTML
				r.ContentText = a.Text
				r.Images = append([]string{}, a.Images...)
				r.Projects = append([]int{}, state.SelectedProjects...)
				out.Index = i
				break
			}
		}
		state.SelectedProjects = []int{}
		return out, nil
	}

	state.LastReportDate = &today
	state.Reports = append(state.Reports, models.Report{
		Date:        now,
		Projects:    append([]int{}, state.SelectedProjects...),
		ContentHTML: a.HTML,
		ContentText: a.Text,
		Images:      append([]string{}, a.Images...),
	})
	state.SelectedProjects = []int{}
	return SaveOutcome{Index: len(state.Reports) - 1}, nil
}
