package models

// Project is a unit of work a report can cover. Template is an HTML document
// containing the {project} placeholder.
type Project struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	TaigaURL string `json:"taigaUrl"`
	Template string `json:"template"`
}

// NextProjectID returns max(existing ids)+1, or 1 when there are no projects.
func NextProjectID(projects []Project) int {
	next := 1
	for _, p := range projects {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return next
}

// FindProject returns the index of the project with the given id, or -1.
func FindProject(projects []Project, id int) int {
	for i, p := range projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}
