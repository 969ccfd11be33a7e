package settings

import (
	"strings"

	"github.com/julianstephens/hurryup/internal/constants"
	"github.com/julianstephens/hurryup/internal/models"
)

type ProfileInput struct {
	Name         string
	Role         string
	Workplace    string
	ProjectLabel string
}

// SaveProfile applies the profile form. Blank name, role and workplace fall
// back to generic values; the project label may be blank.
func SaveProfile(user *models.User, in ProfileInput) {
	user.Name = fallback(in.Name, constants.DefaultUserName)
	user.Role = fallback(in.Role, constants.DefaultUserRole)
	user.Workplace = fallback(in.Workplace, constants.DefaultWorkplace)
	user.ProjectLabel = strings.TrimSpace(in.ProjectLabel)
}

// SetProfileImage stores an already compressed image; empty clears it.
func SetProfileImage(user *models.User, image string) {
	user.ProfileImage = image
}

// SaveMorningTemplate stores the stand-up template as typed.
func SaveMorningTemplate(state *models.AppState, template string) {
	state.MorningTemplate = template
}

// ResetMorningTemplate restores the default stand-up template.
func ResetMorningTemplate(state *models.AppState) {
	state.MorningTemplate = constants.DefaultMorningTemplate
}

// ResetAll returns first-run state.
func ResetAll() *models.AppState {
	return models.NewAppState()
}

func fallback(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}
