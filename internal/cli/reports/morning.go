package reports

import (
	"fmt"

	"github.com/julianstephens/hurryup/internal/cli"
)

type MorningShowCmd struct{}

func (c *MorningShowCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Onboarded()
	if err != nil {
		return err
	}
	fmt.Println(s.Morning())
	return nil
}

type MorningCopyCmd struct{}

func (c *MorningCopyCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Onboarded()
	if err != nil {
		return err
	}
	return copyText(s.Morning())
}

// MorningEditCmd replaces the template. Placeholders: {name} {date} {role} {workplace}.
type MorningEditCmd struct {
	Template string `arg:"" optional:"" help:"New template text."`
	File     string `help:"Read the template from a file, or - for stdin." short:"f"`
	Preview  bool   `help:"Print the rendered message without saving."`
}

func (c *MorningEditCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Onboarded()
	if err != nil {
		return err
	}
	tmpl, err := cli.ReadInput(c.Template, c.File)
	if err != nil {
		return err
	}
	if c.Preview {
		fmt.Println(s.MorningPreview(tmpl))
		return nil
	}
	if err := s.SaveMorningTemplate(tmpl); err != nil {
		return err
	}
	fmt.Println("✓ Morning template saved")
	return nil
}

type MorningResetCmd struct {
	Yes bool `help:"Skip the confirmation prompt." short:"y"`
}

func (c *MorningResetCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Onboarded()
	if err != nil {
		return err
	}
	if !c.Yes && !cli.Confirm("Reset the morning template to the default?") {
		fmt.Println("Reset cancelled.")
		return nil
	}
	if err := s.ResetMorningTemplate(); err != nil {
		return err
	}
	fmt.Println("✓ Morning template reset")
	return nil
}
