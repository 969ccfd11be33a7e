package system

import (
	"fmt"

	"github.com/julianstephens/hurryup/internal/cli"
)

// ExportCmd writes a hurryup-backup-<timestamp>.json file.
type ExportCmd struct {
	Dir string `arg:"" optional:"" help:"Directory to write into." type:"path" default:"."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Session()
	if err != nil {
		return err
	}
	path, err := s.ExportTo(c.Dir)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	fmt.Printf("✓ Exported to %s\n", path)
	return nil
}

// ImportCmd replaces the stored state with an exported file.
type ImportCmd struct {
	File string `arg:"" help:"Exported JSON file." type:"existingfile"`
	Yes  bool   `help:"Skip the confirmation prompt." short:"y"`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Session()
	if err != nil {
		return err
	}
	if s.State().OnboardingComplete && !c.Yes &&
		!cli.Confirm("Importing replaces your current data. Continue?") {
		fmt.Println("Import cancelled.")
		return nil
	}
	if err := s.ImportFile(c.File); err != nil {
		return err
	}
	st := s.State()
	fmt.Printf("✓ Imported %d project(s) and %d report(s)\n", len(st.Projects), len(st.Reports))
	return nil
}
