package system

import (
	"fmt"

	"github.com/julianstephens/hurryup/internal/cli"
)

// ResetCmd erases every project, report and profile field.
type ResetCmd struct {
	Yes bool `help:"Skip the confirmation prompt." short:"y"`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Session()
	if err != nil {
		return err
	}
	if !c.Yes && !cli.Confirm("⚠️  Delete all hurryup data? This cannot be undone.") {
		fmt.Println("Reset cancelled.")
		return nil
	}
	if err := s.ResetAll(); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}
	fmt.Println("✓ All data deleted")
	return nil
}
