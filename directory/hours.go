package directory

import (
	"strings"
	"time"

	"github.com/Kent-Taylor/Tree-services-directory/models"
)

// Status classes attached to the hours line on a card.
const (
	STATUS_OPEN_GREEN = "open-green"
	STATUS_CLOSED_RED = "closed-red"
)

// canonicalDays maps full day names and common abbreviations to one of the
// seven canonical lowercase identifiers. Unrecognized spellings pass through
// unchanged and simply never match today.
var canonicalDays = map[string]string{
	"sun": "sunday", "sunday": "sunday",
	"mon": "monday", "monday": "monday",
	"tue": "tuesday", "tues": "tuesday", "tuesday": "tuesday",
	"wed": "wednesday", "weds": "wednesday", "wednesday": "wednesday",
	"thu": "thursday", "thur": "thursday", "thurs": "thursday", "thursday": "thursday",
	"fri": "friday", "friday": "friday",
	"sat": "saturday", "saturday": "saturday",
}

func canonicalDay(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := canonicalDays[key]; ok {
		return canonical
	}
	return key
}

// cleanHoursText collapses Unicode whitespace variants scraped pages like to
// use (narrow no-break space U+202F, no-break space U+00A0) and runs of
// whitespace into single ASCII spaces.
func cleanHoursText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}

// TodayHours returns the schedule text for now's weekday, cleaned and with
// the two special cases applied: any "open 24" text becomes the literal
// "Open 24 hours" and a bare "closed" becomes "Closed". It returns "" when
// no row matches today; callers fall back to FirstScheduleRow.
//
// "Today" is the evaluating machine's local calendar day, not the business's
// own timezone. That is a known limitation carried over from the source data.
func TodayHours(rows []models.OpeningHoursRow, now time.Time) string {
	today := strings.ToLower(now.Weekday().String())
	for _, row := range rows {
		if canonicalDay(row.Day) != today {
			continue
		}
		cleaned := cleanHoursText(row.Hours)
		lower := strings.ToLower(cleaned)
		if strings.Contains(lower, "open 24") {
			return "Open 24 hours"
		}
		if lower == "closed" {
			return "Closed"
		}
		return cleaned
	}
	return ""
}

// FirstScheduleRow formats the first row with non-empty hours as
// "<day>: <hours>", the fallback display when today has no schedule entry.
func FirstScheduleRow(rows []models.OpeningHoursRow) string {
	for _, row := range rows {
		hours := cleanHoursText(row.Hours)
		if hours == "" {
			continue
		}
		day := strings.TrimSpace(row.Day)
		if day == "" {
			return hours
		}
		return day + ": " + hours
	}
	return ""
}

// StatusClass classifies an hours line as open or closed for today. The
// basis is today's resolved hours text, with an optional leading "Today: "
// prefix stripped. This is a schedule heuristic, not a live open-now check:
// a time range (" to ", "-", or an en-dash) counts as open.
func StatusClass(basis string) string {
	basis = strings.TrimSpace(basis)
	basis = strings.TrimPrefix(basis, "Today: ")
	lower := strings.ToLower(basis)

	switch {
	case lower == "":
		return ""
	case strings.Contains(lower, "closed"):
		return STATUS_CLOSED_RED
	case strings.Contains(lower, "open 24"):
		return STATUS_OPEN_GREEN
	case strings.Contains(lower, " to "),
		strings.Contains(lower, "-"),
		strings.Contains(lower, "–"):
		return STATUS_OPEN_GREEN
	default:
		return ""
	}
}
