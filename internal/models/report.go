package models

import "time"

// Report is the saved snapshot of one day's work. Everything except the content
// of today's report is immutable once written.
type Report struct {
	Date        time.Time `json:"date"`
	Projects    []int     `json:"projects"`
	ContentHTML string    `json:"contentHtml"`
	ContentText string    `json:"contentText"`
	Images      []string  `json:"images"`
}

// ProjectCount is the report's weight in the activity heatmap. A report with
// no recorded projects still counts once.
func (r Report) ProjectCount() int {
	if len(r.Projects) == 0 {
		return 1
	}
	return len(r.Projects)
}
