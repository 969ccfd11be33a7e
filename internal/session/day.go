package session

import (
	"time"

	apperrors "github.com/julianstephens/hurryup/internal/errors"
	"github.com/julianstephens/hurryup/internal/utils"
)

// parseDay accepts a day key, or "today" and "yesterday".
func parseDay(key string, now time.Time) (time.Time, error) {
	switch key {
	case "", "today":
		return now, nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	}
	day, err := utils.ParseDayKey(key, now.Location())
	if err != nil {
		return time.Time{}, &apperrors.ValidationError{Field: "date", Message: "expected YYYY-MM-DD"}
	}
	return day, nil
}
