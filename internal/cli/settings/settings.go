package settings

import (
	"fmt"
	"strings"

	"github.com/minqiz/ddlnote/internal/cli"
	"github.com/minqiz/ddlnote/internal/config"
	"github.com/minqiz/ddlnote/internal/constants"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	WindowX      *int     `help:"Widget x position."`
	WindowY      *int     `help:"Widget y position."`
	WindowWidth  *int     `help:"Widget width."`
	WindowHeight *int     `help:"Widget height."`
	FontFamily   *string  `help:"Label font family."`
	FontSize     *int     `help:"Label font size (must be > 0)."`
	FontWeight   *string  `help:"Label font weight (normal|bold)."`
	FgColor      *string  `help:"Text color."`
	BgColor      *string  `help:"Background color."`
	Alpha        *float64 `help:"Window opacity, clamped to [0, 1]."`
	Theme        *string  `help:"Visual theme."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	doc := ctx.LoadSettings()

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Position:     %d, %d\n",
			doc.Int(constants.SettingWindowX, constants.DefaultWindowX),
			doc.Int(constants.SettingWindowY, constants.DefaultWindowY))
		fmt.Printf("  Size:         %dx%d\n",
			doc.Int(constants.SettingWindowWidth, constants.DefaultWindowWidth),
			doc.Int(constants.SettingWindowHeight, constants.DefaultWindowHeight))
		fmt.Printf("  Font:         %s %d (%s)\n",
			doc.String(constants.SettingFontFamily, constants.DefaultFontFamily),
			doc.Int(constants.SettingFontSize, constants.DefaultFontSize),
			doc.String(constants.SettingFontWeight, constants.DefaultFontWeight))
		fmt.Printf("  Colors:       fg=%s bg=%s\n",
			doc.String(constants.SettingFgColor, constants.DefaultFgColor),
			doc.String(constants.SettingBgColor, constants.DefaultBgColor))
		fmt.Printf("  Alpha:        %.2f\n", doc.Float(constants.SettingAlpha, constants.DefaultAlpha))
		fmt.Printf("  Theme:        %s (available: %s)\n",
			doc.String(constants.SettingTheme, constants.DefaultTheme),
			strings.Join(ctx.Themes.Available(), ", "))
		fmt.Printf("  Auto-start:   %v\n", doc.Bool(constants.SettingAutoStart, constants.DefaultAutoStart))
		return nil
	}

	update := config.Update{
		WindowX:      c.WindowX,
		WindowY:      c.WindowY,
		WindowWidth:  c.WindowWidth,
		WindowHeight: c.WindowHeight,
		FontFamily:   c.FontFamily,
		FontSize:     c.FontSize,
		FontWeight:   c.FontWeight,
		FgColor:      c.FgColor,
		BgColor:      c.BgColor,
		Alpha:        c.Alpha,
		Theme:        c.Theme,
	}
	if update.Empty() {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := update.Apply(doc, ctx.Themes); err != nil {
		return err
	}
	if err := ctx.Settings.Save(doc); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println("Settings updated successfully.")
	return nil
}
