// Package deadline implements the countdown display engine: it validates a
// collection of deadline records against the canonical date format, sorts
// the valid ones by due instant and renders a single text block with
// remaining/overdue durations. The formatter is a total function; malformed
// records degrade to diagnostic lines instead of errors so a refresh tick
// can never fail.
package deadline

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/minqiz/ddlnote/internal/constants"
	"github.com/minqiz/ddlnote/internal/models"
)

const (
	// Header is the first line of every rendered block.
	Header = "--- Project Deadlines ---"

	// SectionSeparator sits between the countdown section and the
	// diagnostic section when malformed records exist.
	SectionSeparator = "---"

	// BadDataText replaces the whole block when the records document
	// itself could not be decoded into a record sequence.
	BadDataText = Header + "\nerror: deadline data is malformed"
)

type dueItem struct {
	record models.Deadline
	due    time.Time
}

// Format renders the display text for records relative to now: a header,
// one countdown line per valid record in ascending due order, then a
// separator and one diagnostic line per invalid record.
func Format(records []models.Deadline, now time.Time) string {
	valid := make([]dueItem, 0, len(records))
	var invalid []string

	for _, rec := range records {
		name := rec.Name
		if name == "" {
			name = "unnamed"
		}
		if !rec.HasDate() {
			invalid = append(invalid, fmt.Sprintf("- %s: no date set", name))
			continue
		}
		due, err := rec.DueAt()
		if err != nil {
			invalid = append(invalid, fmt.Sprintf("- %s: invalid date format '%s'", name, rec.Date))
			continue
		}
		valid = append(valid, dueItem{record: rec, due: due})
	}

	// Stable keeps original order for identical due instants.
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].due.Before(valid[j].due)
	})

	var b strings.Builder
	b.WriteString(Header)
	for _, item := range valid {
		name := item.record.Name
		if name == "" {
			name = "unnamed"
		}
		b.WriteString(fmt.Sprintf("\n- %s (%s) : %s",
			name, displayDate(item.due, now), relativeText(item.due.Sub(now))))
	}
	if len(invalid) > 0 {
		b.WriteString("\n" + SectionSeparator)
		for _, line := range invalid {
			b.WriteString("\n" + line)
		}
	}
	return b.String()
}

// displayDate abbreviates the due date to MM-DD HH:MM when it falls in the
// same year as the reference instant.
func displayDate(due, now time.Time) string {
	if due.Year() != now.Year() {
		return due.Format(constants.DateTimeFormat)
	}
	return due.Format(constants.ShortDateTimeFormat)
}

// relativeText renders the signed distance to the due instant with a
// "remaining" or "overdue" prefix and at most two units.
func relativeText(diff time.Duration) string {
	prefix := "remaining"
	if diff < 0 {
		prefix = "overdue"
		diff = -diff
	}
	return prefix + " " + durationText(diff)
}

// durationText applies the two-level unit rule to a non-negative duration:
// days then hours, or hours then minutes, or minutes alone. A second unit
// is only appended when non-zero, and minutes are never shown once days
// are.
func durationText(diff time.Duration) string {
	days := int(diff / (24 * time.Hour))
	hours := int((diff % (24 * time.Hour)) / time.Hour)
	minutes := int((diff % time.Hour) / time.Minute)

	switch {
	case days > 0:
		if hours > 0 {
			return fmt.Sprintf("%ddays %dhours", days, hours)
		}
		return fmt.Sprintf("%ddays", days)
	case hours > 0:
		if minutes > 0 {
			return fmt.Sprintf("%dhours %dminutes", hours, minutes)
		}
		return fmt.Sprintf("%dhours", hours)
	case minutes > 0:
		return fmt.Sprintf("%dminutes", minutes)
	default:
		return "less than a minute"
	}
}
