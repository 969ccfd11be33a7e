package models

// User is the profile printed in every report header.
type User struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	Workplace    string `json:"workplace"`
	ProfileImage string `json:"profileImage"` // encoded image (data URL) or empty
	ProjectLabel string `json:"projectLabel"` // free-text label used in the report header
}
