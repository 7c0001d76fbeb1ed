package constants

const (
	// Settings document keys
	SettingWindowX      = "window_x"
	SettingWindowY      = "window_y"
	SettingWindowWidth  = "window_width"
	SettingWindowHeight = "window_height"
	SettingFontFamily   = "font_family"
	SettingFontSize     = "font_size"
	SettingFontWeight   = "font_weight"
	SettingFgColor      = "fg_color"
	SettingBgColor      = "bg_color"
	SettingAlpha        = "alpha"
	SettingTheme        = "theme"
	SettingAutoStart    = "auto_start"

	// Default settings values
	DefaultWindowX      = 100
	DefaultWindowY      = 50
	DefaultWindowWidth  = 300
	DefaultWindowHeight = 150
	DefaultFontFamily   = "Arial"
	DefaultFontSize     = 10
	DefaultFontWeight   = "normal"
	DefaultFgColor      = "white"
	DefaultBgColor      = "black"
	DefaultAlpha        = 1.0
	DefaultTheme        = "arc"
	DefaultAutoStart    = false

	// Font weight values
	FontWeightNormal = "normal"
	FontWeightBold   = "bold"
)
