package main

import (
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/minqiz/ddlnote/internal/autostart"
	"github.com/minqiz/ddlnote/internal/cli"
	"github.com/minqiz/ddlnote/internal/cli/deadlines"
	"github.com/minqiz/ddlnote/internal/cli/settings"
	"github.com/minqiz/ddlnote/internal/cli/system"
	"github.com/minqiz/ddlnote/internal/constants"
	"github.com/minqiz/ddlnote/internal/errors"
	"github.com/minqiz/ddlnote/internal/logger"
	"github.com/minqiz/ddlnote/internal/storage"
)

var CLI struct {
	Version   kong.VersionFlag
	Debug     bool   `help:"Enable debug logging to stderr."`
	ConfigDir string `help:"Config directory." type:"path" default:"~/.config/ddlnote"`

	Widget    system.WidgetCmd     `cmd:"" help:"Launch the sticky-note widget." default:"1"`
	Show      deadlines.ShowCmd    `cmd:"" help:"Print the countdown block once."`
	Add       deadlines.AddCmd     `cmd:"" help:"Add a deadline."`
	Edit      deadlines.EditCmd    `cmd:"" help:"Edit a deadline."`
	Delete    deadlines.DeleteCmd  `cmd:"" help:"Delete a deadline."`
	List      deadlines.ListCmd    `cmd:"" help:"List deadlines with their ids."`
	Settings  settings.SettingsCmd `cmd:"" help:"View or change settings."`
	Autostart system.AutostartCmd  `cmd:"" help:"Manage launch-at-login registration."`
	Doctor    system.DoctorCmd     `cmd:"" help:"Run health checks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Sticky-note widget for project deadlines"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.2.0"},
	)

	// Logging is best-effort: the helpers no-op when init failed, and the
	// app must not refuse to run because the log file is unavailable.
	_ = logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: CLI.ConfigDir})

	// Resolved once here so every registration site agrees on the command.
	startupCommand, err := autostart.ResolveCommand()
	if err != nil {
		logger.Warn("Failed to resolve startup command, auto-start unavailable", "error", err)
	}

	backend := storage.FileBackend{}
	appCtx := &cli.Context{
		Records:        storage.NewRecordStore(backend, filepath.Join(CLI.ConfigDir, constants.RecordsFile)),
		Settings:       storage.NewSettingsStore(backend, filepath.Join(CLI.ConfigDir, constants.SettingsFile)),
		Clock:          time.Now,
		StartupCommand: startupCommand,
	}

	errors.Fatal(ctx.Run(appCtx))
}
