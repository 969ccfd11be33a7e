package system

import (
	"context"
	"fmt"
	"os"

	"github.com/julianstephens/hurryup/internal/cli"
	"github.com/julianstephens/hurryup/internal/settings"
)

// ProfileCmd shows or edits the report header profile. Flags left out keep
// their current value.
type ProfileCmd struct {
	Name       *string `help:"Your name."`
	Role       *string `help:"Your role or position."`
	Workplace  *string `help:"Where you work."`
	Label      *string `help:"Label printed before the project list."`
	Image      string  `help:"New profile picture file." type:"existingfile"`
	ClearImage bool    `help:"Remove the profile picture."`
}

func (c *ProfileCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Onboarded()
	if err != nil {
		return err
	}
	u := s.State().User

	if c.Name == nil && c.Role == nil && c.Workplace == nil && c.Label == nil && c.Image == "" && !c.ClearImage {
		fmt.Printf("Name:      %s\n", u.Name)
		fmt.Printf("Role:      %s\n", u.Role)
		fmt.Printf("Workplace: %s\n", u.Workplace)
		fmt.Printf("Label:     %s\n", u.ProjectLabel)
		fmt.Printf("Picture:   %v\n", u.ProfileImage != "")
		return nil
	}

	in := settings.ProfileInput{Name: u.Name, Role: u.Role, Workplace: u.Workplace, ProjectLabel: u.ProjectLabel}
	if c.Name != nil {
		in.Name = *c.Name
	}
	if c.Role != nil {
		in.Role = *c.Role
	}
	if c.Workplace != nil {
		in.Workplace = *c.Workplace
	}
	if c.Label != nil {
		in.ProjectLabel = *c.Label
	}
	if err := s.SaveProfile(in); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	switch {
	case c.ClearImage:
		if err := s.ClearProfileImage(); err != nil {
			return err
		}
	case c.Image != "":
		raw, err := os.ReadFile(c.Image)
		if err != nil {
			return fmt.Errorf("failed to read image: %w", err)
		}
		if err := s.SetProfileImage(context.Background(), raw); err != nil {
			return err
		}
	}

	fmt.Println("✓ Profile saved")
	return nil
}
