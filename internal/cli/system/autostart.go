package system

import (
	"fmt"

	"github.com/minqiz/ddlnote/internal/autostart"
	"github.com/minqiz/ddlnote/internal/cli"
	"github.com/minqiz/ddlnote/internal/constants"
)

type AutostartCmd struct {
	Enable  AutostartEnableCmd  `cmd:"" help:"Register the widget to launch at login."`
	Disable AutostartDisableCmd `cmd:"" help:"Remove the login registration."`
	Status  AutostartStatusCmd  `cmd:"" help:"Show the current registration state." default:"1"`
}

func entry(ctx *cli.Context) autostart.Entry {
	return autostart.Entry{
		AppName: constants.AppName,
		Command: ctx.StartupCommand,
	}
}

type AutostartEnableCmd struct{}

func (c *AutostartEnableCmd) Run(ctx *cli.Context) error {
	if err := autostart.Enable(entry(ctx)); err != nil {
		return err
	}

	// Keep the persisted setting in step with the OS registration so the
	// widget's settings form shows the real state.
	doc := ctx.LoadSettings()
	doc[constants.SettingAutoStart] = true
	ctx.SaveSettings(doc)

	fmt.Printf("Auto-start enabled: %s\n", ctx.StartupCommand)
	return nil
}

type AutostartDisableCmd struct{}

func (c *AutostartDisableCmd) Run(ctx *cli.Context) error {
	if err := autostart.Disable(entry(ctx)); err != nil {
		return err
	}

	doc := ctx.LoadSettings()
	doc[constants.SettingAutoStart] = false
	ctx.SaveSettings(doc)

	fmt.Println("Auto-start disabled.")
	return nil
}

type AutostartStatusCmd struct{}

func (c *AutostartStatusCmd) Run(ctx *cli.Context) error {
	enabled, err := autostart.IsEnabled(entry(ctx))
	if err != nil {
		return err
	}
	if enabled {
		fmt.Printf("Auto-start is enabled: %s\n", ctx.StartupCommand)
	} else {
		fmt.Println("Auto-start is disabled.")
	}
	return nil
}
