// Package report composes the daily report from project templates and the
// user profile, and records submitted reports in the application state.
package report

import (
	"strings"

	"github.com/julianstephens/hurryup/internal/constants"
	"github.com/julianstephens/hurryup/internal/editor"
	"github.com/julianstephens/hurryup/internal/htmltext"
	"github.com/julianstephens/hurryup/internal/models"
)

// Draft is the editable body built from the selected projects.
type Draft struct {
	HTML string
	Text string
}

// Empty reports whether no project contributed to the draft.
func (d Draft) Empty() bool { return d.HTML == "" }

// UpdateDraft renders each selected project's template in selection order.
// Ids that no longer name a project are skipped.
func UpdateDraft(projects []models.Project, selected []int) Draft {
	var htmlParts, textParts []string
	for _, id := range selected {
		i := models.FindProject(projects, id)
		if i < 0 {
			continue
		}
		rendered := Render(projects[i])
		htmlParts = append(htmlParts, rendered)
		textParts = append(textParts, htmltext.ToPlainText(rendered))
	}
	return Draft{
		HTML: strings.Join(htmlParts, constants.DraftSeparatorHTML),
		Text: strings.Join(textParts, constants.DraftSeparatorText),
	}
}

// Render substitutes the project name into its template.
func Render(p models.Project) string {
	tmpl := p.Template
	if tmpl == "" {
		tmpl = constants.DefaultTemplate
	}
	return strings.ReplaceAll(tmpl, constants.ProjectPlaceholder, p.Name)
}

// Fill loads a draft into an editing surface in the form it expects.
func Fill(s editor.Surface, d Draft) {
	if fb, ok := s.(*editor.PlainTextFallback); ok {
		fb.SetText(d.Text)
		return
	}
	s.SetContent(d.HTML)
}
