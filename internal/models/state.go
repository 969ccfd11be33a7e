package models

import "github.com/julianstephens/hurryup/internal/constants"

// AppState is the whole persisted document.
type AppState struct {
	User               User      `json:"user"`
	Projects           []Project `json:"projects"`
	SelectedProjects   []int     `json:"selectedProjects"`
	Reports            []Report  `json:"reports"`
	LastReportDate     *string   `json:"lastReportDate"` // day key of the latest save
	OnboardingComplete bool      `json:"onboardingComplete"`
	MorningTemplate    string    `json:"morningTemplate"`
}

// NewAppState returns the first-run defaults.
func NewAppState() *AppState {
	return &AppState{
		Projects:         []Project{},
		SelectedProjects: []int{},
		Reports:          []Report{},
		MorningTemplate:  constants.DefaultMorningTemplate,
	}
}

// ProjectByID looks up a live project.
func (s *AppState) ProjectByID(id int) (Project, bool) {
	if i := FindProject(s.Projects, id); i >= 0 {
		return s.Projects[i], true
	}
	return Project{}, false
}

// IsSelected reports whether the project is part of the in-progress draft.
func (s *AppState) IsSelected(id int) bool {
	for _, sel := range s.SelectedProjects {
		if sel == id {
			return true
		}
	}
	return false
}

// SavedOn reports whether the last save happened on the given day key.
func (s *AppState) SavedOn(dayKey string) bool {
	return s.LastReportDate != nil && *s.LastReportDate == dayKey
}

// Clone returns a deep copy, used to snapshot state for export and tests.
func (s *AppState) Clone() *AppState {
	c := *s
	c.Projects = append([]Project{}, s.Projects...)
	c.SelectedProjects = append([]int{}, s.SelectedProjects...)
	c.Reports = make([]Report, len(s.Reports))
	for i, r := range s.Reports {
		r.Projects = append([]int{}, r.Projects...)
		r.Images = append([]string{}, r.Images...)
		c.Reports[i] = r
	}
	if s.LastReportDate != nil {
		d := *s.LastReportDate
		c.LastReportDate = &d
	}
	return &c
}
