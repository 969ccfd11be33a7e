package projects

import (
	"fmt"
	"slices"
	"strings"

	"github.com/julianstephens/hurryup/internal/cli"
	"github.com/julianstephens/hurryup/internal/settings"
)

type ProjectAddCmd struct {
	Name     string `arg:"" help:"Project name."`
	TaigaURL string `help:"Link to the project's Taiga board." name:"taiga-url"`
	Template string `help:"Report template file; {project} is replaced by the name." type:"existingfile"`
}

func (c *ProjectAddCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Onboarded()
	if err != nil {
		return err
	}
	template, err := cli.ReadInput("", c.Template)
	if err != nil {
		return err
	}
	p, err := s.UpsertProject(settings.ProjectInput{Name: c.Name, TaigaURL: c.TaigaURL, Template: template})
	if err != nil {
		return err
	}
	fmt.Printf("✓ Added project %d: %s\n", p.ID, p.Name)
	return nil
}

// ProjectEditCmd updates a project. Flags left out keep their value.
type ProjectEditCmd struct {
	ID       int     `arg:"" help:"Project id."`
	Name     *string `help:"New name."`
	TaigaURL *string `help:"New Taiga link." name:"taiga-url"`
	Template string  `help:"New report template file." type:"existingfile"`
}

func (c *ProjectEditCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Onboarded()
	if err != nil {
		return err
	}
	existing, ok := s.State().ProjectByID(c.ID)
	if !ok {
		return fmt.Errorf("project %d not found", c.ID)
	}

	in := settings.ProjectInput{ID: &c.ID, Name: existing.Name, TaigaURL: existing.TaigaURL, Template: existing.Template}
	if c.Name != nil {
		in.Name = *c.Name
	}
	if c.TaigaURL != nil {
		in.TaigaURL = *c.TaigaURL
	}
	if c.Template != "" {
		if in.Template, err = cli.ReadInput("", c.Template); err != nil {
			return err
		}
	}

	p, err := s.UpsertProject(in)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Updated project %d: %s\n", p.ID, p.Name)
	return nil
}

type ProjectDeleteCmd struct {
	ID  int  `arg:"" help:"Project id."`
	Yes bool `help:"Skip the confirmation prompt." short:"y"`
}

func (c *ProjectDeleteCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Onboarded()
	if err != nil {
		return err
	}
	p, ok := s.State().ProjectByID(c.ID)
	if !ok {
		return fmt.Errorf("project %d not found", c.ID)
	}
	if !c.Yes && !cli.Confirm(fmt.Sprintf("Delete project %q? Past reports are kept.", p.Name)) {
		fmt.Println("Delete cancelled.")
		return nil
	}
	if err := s.DeleteProject(c.ID); err != nil {
		return err
	}
	fmt.Printf("✓ Deleted project %d: %s\n", p.ID, p.Name)
	return nil
}

type ProjectListCmd struct{}

func (c *ProjectListCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Onboarded()
	if err != nil {
		return err
	}
	st := s.State()
	if len(st.Projects) == 0 {
		fmt.Println("No projects yet. Add one with 'hurryup project add'.")
		return nil
	}
	for _, p := range st.Projects {
		mark := " "
		if st.IsSelected(p.ID) {
			mark = "x"
		}
		fmt.Printf("[%s] %3d  %s", mark, p.ID, p.Name)
		if p.TaigaURL != "" {
			fmt.Printf("  (%s)", p.TaigaURL)
		}
		fmt.Println()
	}
	return nil
}

// ProjectSelectCmd toggles projects in or out of today's report.
type ProjectSelectCmd struct {
	IDs   []int `arg:"" optional:"" help:"Project ids to toggle."`
	Clear bool  `help:"Deselect every project first."`
}

func (c *ProjectSelectCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Onboarded()
	if err != nil {
		return err
	}
	if c.Clear {
		for _, id := range slices.Clone(s.State().SelectedProjects) {
			if err := s.ToggleProject(id); err != nil {
				return err
			}
		}
	}
	for _, id := range c.IDs {
		if err := s.ToggleProject(id); err != nil {
			return fmt.Errorf("project %d: %w", id, err)
		}
	}

	st := s.State()
	var names []string
	for _, id := range st.SelectedProjects {
		if p, ok := st.ProjectByID(id); ok {
			names = append(names, p.Name)
		}
	}
	if len(names) == 0 {
		fmt.Println("No projects selected.")
		return nil
	}
	fmt.Printf("Selected: %s\n", strings.Join(names, ", "))
	return nil
}
