package system

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/hurryup/internal/cli"
	"github.com/julianstephens/hurryup/internal/router"
)

// InitCmd runs onboarding without the interactive wizard.
type InitCmd struct {
	Name      string   `help:"Your name." required:""`
	Role      string   `help:"Your role or position." required:""`
	Workplace string   `help:"Where you work." required:""`
	Label     string   `help:"Label printed before the project list in reports." required:""`
	Project   []string `help:"Project to add, as NAME or NAME=TAIGA_URL. Repeatable." short:"p"`
	Image     string   `help:"Profile picture file." type:"existingfile"`
	Force     bool     `help:"Run again even when setup was already completed."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Session()
	if err != nil {
		return err
	}
	if s.State().OnboardingComplete && !c.Force {
		return fmt.Errorf("hurryup is already set up. Use --force to run setup again")
	}

	s.Router().Navigate(router.Onboarding.Path(), false)
	w := s.Wizard()
	w.Fields = router.Fields{
		Name:         c.Name,
		Role:         c.Role,
		Workplace:    c.Workplace,
		ProjectLabel: c.Label,
	}

	for _, spec := range c.Project {
		name, url, _ := strings.Cut(spec, "=")
		if _, err := w.AddProject(name, url); err != nil {
			return fmt.Errorf("invalid project %q: %w", spec, err)
		}
	}

	if c.Image != "" {
		raw, err := os.ReadFile(c.Image)
		if err != nil {
			return fmt.Errorf("failed to read image: %w", err)
		}
		if err := s.SetWizardImage(context.Background(), raw); err != nil {
			return err
		}
	}

	if err := s.CompleteOnboarding(); err != nil {
		return err
	}

	fmt.Printf("✓ Welcome, %s! %d project(s) ready.\n", c.Name, len(s.State().Projects))
	return nil
}
