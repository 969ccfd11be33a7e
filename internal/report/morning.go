package report

import (
	"strings"
	"time"

	"github.com/julianstephens/hurryup/internal/constants"
	"github.com/julianstephens/hurryup/internal/models"
	"github.com/julianstephens/hurryup/internal/utils"
)

// Morning fills the stand-up message template. Empty profile fields are left
// as visible placeholders.
func Morning(template string, user models.User, now time.Time) string {
	return fillMorning(template, now,
		or(user.Name, constants.MorningNamePlaceholder),
		or(user.Role, constants.MorningRolePlaceholder),
		or(user.Workplace, constants.MorningWorkplacePlaceholder))
}

// MorningPreview fills the template for the editor preview, using sample
// values for empty profile fields.
func MorningPreview(template string, user models.User, now time.Time) string {
	return fillMorning(template, now,
		or(user.Name, constants.MorningSampleName),
		or(user.Role, constants.MorningSampleRole),
		or(user.Workplace, constants.MorningSampleWorkplace))
}

func fillMorning(template string, now time.Time, name, role, workplace string) string {
	if template == "" {
		template = constants.DefaultMorningTemplate
	}
	return strings.NewReplacer(
		"{name}", name,
		"{date}", utils.ThaiLongDate(now),
		"{role}", role,
		"{workplace}", workplace,
	).Replace(template)
}

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
