package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/hurryup/internal/constants"
	apperrors "github.com/julianstephens/hurryup/internal/errors"
	"github.com/julianstephens/hurryup/internal/models"
	"github.com/julianstephens/hurryup/internal/storage"
)

// timestampFormat is the local time embedded in backup file names.
const timestampFormat = "2006-01-02_15-04-05"

// FileName returns the export file name for a backup taken at now.
func FileName(now time.Time) string {
	return constants.BackupFilePrefix + now.Format(timestampFormat) + constants.BackupFileSuffix
}

// Export serializes state in the pretty-printed export envelope.
func Export(state *models.AppState, now time.Time) ([]byte, error) {
	env := models.ExportEnvelope{
		ExportDate: now.UTC(),
		AppVersion: constants.AppVersion,
		Data:       state,
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize export: %w", err)
	}
	return data, nil
}

// Import validates an export document and merges its data over current.
// Only the top-level keys present in the document replace current values.
// The result is always marked as onboarded; current is never modified.
func Import(current *models.AppState, doc []byte) (*models.AppState, error) {
	var env struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(doc, &env); err != nil {
		return nil, &apperrors.ImportFormatError{Reason: "not a JSON document", Err: err}
	}
	if env.Data == nil {
		return nil, &apperrors.ImportFormatError{Reason: "missing data"}
	}
	if user, ok := env.Data["user"]; !ok || isNull(user) {
		return nil, &apperrors.ImportFormatError{Reason: "missing data.user"}
	}

	base, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize current state: %w", err)
	}
	merged := map[string]json.RawMessage{}
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, fmt.Errorf("failed to serialize current state: %w", err)
	}
	for k, v := range env.Data {
		merged[k] = v
	}

	out, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to merge import: %w", err)
	}
	next := models.NewAppState()
	if err := json.Unmarshal(out, next); err != nil {
		return nil, &apperrors.ImportFormatError{Reason: "data does not match the expected shape", Err: err}
	}
	storage.Normalize(next)
	next.OnboardingComplete = true
	return next, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
