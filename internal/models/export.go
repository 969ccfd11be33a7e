package models

import "time"

// ExportEnvelope is the backup file wrapper.
type ExportEnvelope struct {
	ExportDate time.Time `json:"exportDate"`
	AppVersion string    `json:"appVersion"`
	Data       *AppState `json:"data"`
}
