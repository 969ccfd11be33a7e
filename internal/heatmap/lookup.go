package heatmap

import (
	"time"

	"github.com/julianstephens/hurryup/internal/constants"
	"github.com/julianstephens/hurryup/internal/models"
	"github.com/julianstephens/hurryup/internal/utils"
)

// FindReportForDay returns the first report saved on day's calendar date.
func FindReportForDay(reports []models.Report, day time.Time) (*models.Report, bool) {
	for i := range reports {
		if utils.SameDay(day, reports[i].Date) {
			return &reports[i], true
		}
	}
	return nil, false
}

// View is a report resolved for display.
type View struct {
	Title        string
	ProjectNames []string
	ContentHTML  string
	ContentText  string
	Images       []string
}

// ReportView resolves project ids to names. Ids of deleted projects render
// as a placeholder. The title date is shown in loc.
func ReportView(state *models.AppState, r *models.Report, loc *time.Location) View {
	v := View{
		Title:       "รายงานวันที่ " + utils.ThaiLongDate(r.Date.In(loc)),
		ContentHTML: r.ContentHTML,
		ContentText: r.ContentText,
		Images:      r.Images,
	}
	for _, id := range r.Projects {
		if p, ok := state.ProjectByID(id); ok {
			v.ProjectNames = append(v.ProjectNames, p.Name)
		} else {
			v.ProjectNames = append(v.ProjectNames, constants.DeletedProjectName)
		}
	}
	return v
}
