package constants

const (
	// AppName is used for the autostart registration entry and the log
	// prefix.
	AppName = "ddlnote"

	// RecordsFile and SettingsFile are the document names inside the
	// config directory.
	RecordsFile  = "ddl_items.json"
	SettingsFile = "settings.json"
)
