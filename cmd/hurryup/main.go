package main

import (
	"github.com/alecthomas/kong"

	"github.com/julianstephens/hurryup/internal/cli"
	"github.com/julianstephens/hurryup/internal/cli/backups"
	"github.com/julianstephens/hurryup/internal/cli/projects"
	"github.com/julianstephens/hurryup/internal/cli/reports"
	"github.com/julianstephens/hurryup/internal/cli/server"
	"github.com/julianstephens/hurryup/internal/cli/system"
	"github.com/julianstephens/hurryup/internal/config"
	"github.com/julianstephens/hurryup/internal/constants"
	apperrors "github.com/julianstephens/hurryup/internal/errors"
	"github.com/julianstephens/hurryup/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path. Defaults to ~/.config/hurryup/config.yaml." type:"path"`
	DataDir string `help:"Directory holding reports, backups and logs." type:"path"`
	Backend string `help:"Storage backend: file, sqlite, diskv or memory."`
	Debug   bool   `help:"Log debug output to stderr."`

	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Init    system.InitCmd    `cmd:"" help:"Set up your profile and projects."`
	Profile system.ProfileCmd `cmd:"" help:"Show or edit your profile."`
	Stats   system.StatsCmd   `cmd:"" help:"Show today's progress and report counts."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Export  system.ExportCmd  `cmd:"" help:"Export all data to a JSON file."`
	Import  system.ImportCmd  `cmd:"" help:"Import data from an exported JSON file."`
	Reset   system.ResetCmd   `cmd:"" help:"Delete all data."`
	Project struct {
		Add    projects.ProjectAddCmd    `cmd:"" help:"Add a project."`
		Edit   projects.ProjectEditCmd   `cmd:"" help:"Edit a project."`
		Delete projects.ProjectDeleteCmd `cmd:"" help:"Delete a project."`
		List   projects.ProjectListCmd   `cmd:"" help:"List projects." default:"1"`
		Select projects.ProjectSelectCmd `cmd:"" help:"Toggle projects for today's report."`
	} `cmd:"" help:"Manage projects."`
	Report struct {
		Draft   reports.ReportDraftCmd   `cmd:"" help:"Print the draft built from selected projects." default:"1"`
		Compose reports.ReportComposeCmd `cmd:"" help:"Preview the full report."`
		Submit  reports.ReportSubmitCmd  `cmd:"" help:"Save today's report."`
		Copy    reports.ReportCopyCmd    `cmd:"" help:"Copy the report to the clipboard."`
	} `cmd:"" help:"Build and submit the daily report."`
	Improve reports.ImproveCmd `cmd:"" help:"Polish text with the improvement proxy."`
	Morning struct {
		Show  reports.MorningShowCmd  `cmd:"" help:"Print the morning message." default:"1"`
		Copy  reports.MorningCopyCmd  `cmd:"" help:"Copy the morning message."`
		Edit  reports.MorningEditCmd  `cmd:"" help:"Change the morning template."`
		Reset reports.MorningResetCmd `cmd:"" help:"Restore the default morning template."`
	} `cmd:"" help:"Morning stand-up message."`
	Heatmap reports.HeatmapCmd `cmd:"" help:"Show the yearly report heatmap."`
	View    reports.ViewCmd    `cmd:"" help:"Show the report saved on a day."`
	Backup  struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage backups."`
	Proxy struct {
		Serve server.ServeCmd `cmd:"" help:"Run the text-improvement proxy."`
		Key   struct {
			Set    server.KeySetCmd    `cmd:"" help:"Store the Anthropic API key in the OS keyring."`
			Delete server.KeyDeleteCmd `cmd:"" help:"Remove the API key from the OS keyring."`
			Status server.KeyStatusCmd `cmd:"" help:"Show where the API key comes from." default:"1"`
		} `cmd:"" help:"Manage the proxy API key."`
	} `cmd:"" help:"Text-improvement proxy server."`
}

func options() []kong.Option {
	return []kong.Option{
		kong.Name("hurryup"),
		kong.Description("Daily work report builder"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	}
}

func main() {
	ctx := kong.Parse(&CLI, options()...)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		apperrors.Fatal(err)
	}
	if CLI.DataDir != "" {
		cfg.DataDir = CLI.DataDir
	}
	if CLI.Backend != "" {
		cfg.Storage.Backend = CLI.Backend
	}
	cfg.Log.Debug = cfg.Log.Debug || CLI.Debug
	if err := cfg.Validate(); err != nil {
		apperrors.Fatal(err)
	}

	if err := logger.Init(logger.Config{
		Debug:   cfg.Log.Debug,
		DataDir: cfg.DataDir,
		Console: ctx.Command() == "proxy serve",
	}); err != nil {
		apperrors.Fatalf("failed to initialize logger: %v", err)
	}

	appCtx := &cli.Context{Config: cfg}
	err = ctx.Run(appCtx)
	appCtx.Close()
	apperrors.Fatal(err)
}
