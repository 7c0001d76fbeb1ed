package constants

const (
	// DateTimeFormat is the canonical due-date form stored in the records
	// document (YYYY-MM-DD HH:MM, 24-hour clock, minute precision).
	DateTimeFormat = "2006-01-02 15:04"

	// DateFormat and TimeFormat are the two halves of DateTimeFormat, used
	// by the add/edit forms which collect date and time separately.
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"

	// ShortDateTimeFormat is used for display when the due date falls in
	// the same year as the reference instant.
	ShortDateTimeFormat = "01-02 15:04"

	// RefreshInterval is the display refresh cadence in seconds.
	RefreshIntervalSec = 60
)
