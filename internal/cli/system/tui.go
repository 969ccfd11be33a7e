package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/hurryup/internal/cli"
	"github.com/julianstephens/hurryup/internal/session"
	"github.com/julianstephens/hurryup/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	lock, err := session.AcquireLock(ctx.Config.DataDir)
	if err != nil {
		return err
	}
	defer func() { _ = lock.Release() }()

	s, err := ctx.Session()
	if err != nil {
		return err
	}

	if s.State().OnboardingComplete {
		ctx.PerformAutomaticBackup()
	}

	p := tea.NewProgram(tui.NewModel(s, ctx.Improver()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}
